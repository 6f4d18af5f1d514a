package visitor

import "ciao/internal/domain/visitor"

type listInput struct {
	Open bool   `query:"open" doc:"Only visitors that have not checked out"`
	Q    string `query:"q" doc:"Case-insensitive search over name, address and phone"`
	Day  string `query:"day" doc:"Check-in day, YYYY-MM-DD in the configured time zone"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Count   int             `json:"count"`
	Entries []visitor.Entry `json:"entries"`
}

type indexInput struct {
	Index int `path:"index" minimum:"0" doc:"Stored position as returned by the list"`
}

type updateInput struct {
	Index int `path:"index" minimum:"0" doc:"Stored position as returned by the list"`
	Body  updateRequest
}

type updateRequest struct {
	FirstName   string `json:"firstName" minLength:"1"`
	LastName    string `json:"lastName" minLength:"1"`
	Street      string `json:"street" minLength:"1"`
	PostalCode  string `json:"postalCode" minLength:"1"`
	City        string `json:"city" minLength:"1"`
	PhoneNumber string `json:"phoneNumber" minLength:"1"`
	Email       string `json:"email,omitempty" required:"false"`
	DateOfBirth string `json:"dateOfBirth,omitempty" required:"false"`
	Timestamp   int64  `json:"timestamp" doc:"Check-in time, milliseconds since epoch"`
	Checkout    *int64 `json:"checkout,omitempty" required:"false" doc:"Check-out time, absent while open"`
}

func (r updateRequest) record() visitor.Record {
	return visitor.Record{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Street:      r.Street,
		PostalCode:  r.PostalCode,
		City:        r.City,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		DateOfBirth: r.DateOfBirth,
		Timestamp:   r.Timestamp,
		Checkout:    r.Checkout,
	}
}

type entryOutput struct {
	Body visitor.Entry
}
