package i18n

import (
	"time"

	"golang.org/x/text/language"
)

// Catalog - набор сообщений для одного языка.
type Catalog struct {
	tag      language.Tag
	messages map[string]string
	layout   string
	loc      *time.Location
}

// New выбирает лучший поддерживаемый язык по предпочтениям (теги BCP 47 вроде
// "de-CH" или значение Accept-Language), по умолчанию английский.
func New(loc *time.Location, preferred ...string) *Catalog {
	tags := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if p == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}

	_, idx, _ := matcher.Match(tags...)
	base := supported[idx]

	if loc == nil {
		loc = time.Local
	}

	return &Catalog{
		tag:      base,
		messages: catalogs[base],
		layout:   layouts[base],
		loc:      loc,
	}
}

// Tag возвращает выбранный язык.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// T возвращает сообщение для key, иначе английское, иначе сам ключ.
func (c *Catalog) T(key string) string {
	if m, ok := c.messages[key]; ok {
		return m
	}
	if m, ok := catalogs[language.English][key]; ok {
		return m
	}
	return key
}

// FormatMillis форматирует время в миллисекундах в поясе и формате каталога.
func (c *Catalog) FormatMillis(ms int64) string {
	return time.UnixMilli(ms).In(c.loc).Format(c.layout)
}

// Location - пояс, в котором выводится время.
func (c *Catalog) Location() *time.Location {
	return c.loc
}
