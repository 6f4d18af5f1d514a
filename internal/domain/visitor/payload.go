package visitor

import (
	"encoding/json"
	"strings"
)

// RequiredKeys должны быть непустыми строками в скане прихода.
var RequiredKeys = []string{"firstName", "lastName", "street", "postalCode", "city", "phoneNumber"}

// Payload - проверенный скан. Значения хранятся как отсканированы, без обрезки.
type Payload struct {
	FirstName   string
	LastName    string
	Street      string
	PostalCode  string
	City        string
	PhoneNumber string
	Email       string
	DateOfBirth string
}

// ParsePayload проверяет сырой скан прихода.
func ParsePayload(raw string) (Payload, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return Payload{}, err
	}

	values := make(map[string]string, len(RequiredKeys))
	for _, key := range RequiredKeys {
		v, ok := stringField(fields, key)
		if !ok || strings.TrimSpace(v) == "" {
			return Payload{}, &FieldError{Field: key, Err: ErrIncompleteData}
		}
		values[key] = v
	}

	p := Payload{
		FirstName:   values["firstName"],
		LastName:    values["lastName"],
		Street:      values["street"],
		PostalCode:  values["postalCode"],
		City:        values["city"],
		PhoneNumber: values["phoneNumber"],
	}
	p.Email, _ = stringField(fields, "email")
	p.DateOfBirth, _ = stringField(fields, "dateOfBirth")

	return p, nil
}

// ParsePhoneNumber проверяет скан ухода, которому нужен только phoneNumber.
func ParsePhoneNumber(raw string) (string, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return "", err
	}
	v, ok := stringField(fields, "phoneNumber")
	if !ok || strings.TrimSpace(v) == "" {
		return "", &FieldError{Field: "phoneNumber", Err: ErrIncompleteData}
	}
	return v, nil
}

func (p Payload) record(ts int64) Record {
	return Record{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Street:      p.Street,
		PostalCode:  p.PostalCode,
		City:        p.City,
		PhoneNumber: p.PhoneNumber,
		Email:       p.Email,
		DateOfBirth: p.DateOfBirth,
		Timestamp:   ts,
	}
}

func decodeObject(raw string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, ErrInvalidFormat
	}
	// "null" без ошибки декодируется в nil map
	if fields == nil {
		return nil, ErrInvalidFormat
	}
	return fields, nil
}

func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// validateRecord применяет правила скана к отредактированной записи.
func validateRecord(r Record) error {
	required := map[string]string{
		"firstName":   r.FirstName,
		"lastName":    r.LastName,
		"street":      r.Street,
		"postalCode":  r.PostalCode,
		"city":        r.City,
		"phoneNumber": r.PhoneNumber,
	}
	for _, key := range RequiredKeys {
		if strings.TrimSpace(required[key]) == "" {
			return &FieldError{Field: key, Err: ErrIncompleteData}
		}
	}
	if r.Checkout != nil && *r.Checkout < r.Timestamp {
		return &FieldError{Field: "checkout", Err: ErrIncompleteData}
	}
	return nil
}
