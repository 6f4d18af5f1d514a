package visitor

import (
	"strings"
	"time"
)

// Record - одна регистрация посетителя. Checkout равен nil, пока визит открыт.
type Record struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Street      string `json:"street"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Timestamp   int64  `json:"timestamp"`
	Checkout    *int64 `json:"checkout,omitempty"`
}

// Open сообщает, что посетитель еще не ушел.
func (r Record) Open() bool {
	return r.Checkout == nil
}

// CheckedInAt возвращает время прихода.
func (r Record) CheckedInAt() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// CheckedOutAt возвращает время ухода; для открытых записей false.
func (r Record) CheckedOutAt() (time.Time, bool) {
	if r.Checkout == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*r.Checkout), true
}

// FullName - "<имя> <фамилия>".
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

// Address - "<улица> <индекс> <город>".
func (r Record) Address() string {
	return r.Street + " " + r.PostalCode + " " + r.City
}

// Entry - запись вместе с ее позицией в сохраненном списке.
// По Index запись обновляют и удаляют.
type Entry struct {
	Index  int    `json:"index"`
	Record Record `json:"record"`
}

// Filter сужает выборку. Нулевое значение пропускает все.
type Filter struct {
	OpenOnly bool
	Query    string
	// Day оставляет записи за этот календарный день (в поясе Day).
	Day *time.Time
}

func (f Filter) match(r Record) bool {
	if f.OpenOnly && !r.Open() {
		return false
	}
	if f.Day != nil {
		in := r.CheckedInAt().In(f.Day.Location())
		y1, m1, d1 := in.Date()
		y2, m2, d2 := f.Day.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		haystack := strings.ToLower(strings.Join([]string{
			r.FirstName, r.LastName, r.Street, r.PostalCode, r.City, r.PhoneNumber, r.Email,
		}, " "))
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	return true
}
