package export

import (
	"fmt"
	"strings"
	"time"

	"ciao/internal/domain/visitor"
	"ciao/internal/i18n"
)

type Schema int

const (
	// SchemaV1 - восемь исходных колонок.
	SchemaV1 Schema = 1
	// SchemaV2 добавляет email и дату рождения.
	SchemaV2 Schema = 2
)

// Formatter превращает список посетителей в CSV.
type Formatter struct {
	catalog *i18n.Catalog
	schema  Schema
}

func NewFormatter(catalog *i18n.Catalog, schema Schema) *Formatter {
	if schema != SchemaV1 {
		schema = SchemaV2
	}
	return &Formatter{catalog: catalog, schema: schema}
}

func (f *Formatter) header() []string {
	keys := []string{
		i18n.CheckIn, i18n.CheckOut, i18n.FirstName, i18n.LastName,
		i18n.Street, i18n.PostalCode, i18n.City, i18n.PhoneNumber,
	}
	if f.schema == SchemaV2 {
		keys = append(keys, i18n.Email, i18n.DateOfBirth)
	}
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = f.catalog.T(k)
	}
	return labels
}

func (f *Formatter) row(r visitor.Record) []string {
	checkout := ""
	if r.Checkout != nil {
		checkout = f.catalog.FormatMillis(*r.Checkout)
	}
	fields := []string{
		f.catalog.FormatMillis(r.Timestamp),
		checkout,
		r.FirstName,
		r.LastName,
		r.Street,
		r.PostalCode,
		r.City,
		r.PhoneNumber,
	}
	if f.schema == SchemaV2 {
		fields = append(fields, r.Email, r.DateOfBirth)
	}
	return fields
}

// Encode возвращает строку заголовка и по строке на запись в порядке списка,
// через "\n", без завершающего перевода строки. Каждое поле в кавычках,
// кавычки внутри удваиваются. Переводы строк внутри поля остаются как есть:
// CSV остается корректным, но строк в нем тогда больше len(records)+1.
func (f *Formatter) Encode(records []visitor.Record) string {
	var b strings.Builder
	writeLine(&b, f.header())
	for _, r := range records {
		b.WriteByte('\n')
		writeLine(&b, f.row(r))
	}
	return b.String()
}

func writeLine(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
}

// BaseName - "<appPrefix>-export-<год>-<месяц>-<день>" для t, без ведущих нулей.
func BaseName(appPrefix string, t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%s-export-%d-%d-%d", appPrefix, y, int(m), d)
}
