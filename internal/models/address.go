package models

import "fmt"

// ShippingAddress is the address collected in the first checkout step.
// address_line2 is the only optional field.
type ShippingAddress struct {
	FullName     string `json:"full_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

// MissingFieldError reports the first empty required address field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("please fill %s", e.Field)
}

// Validate checks that every required field is non-empty and returns a
// MissingFieldError naming the first missing one.
func (a *ShippingAddress) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"full_name", a.FullName},
		{"address_line1", a.AddressLine1},
		{"city", a.City},
		{"state", a.State},
		{"postal_code", a.PostalCode},
		{"country", a.Country},
		{"phone", a.Phone},
	}
	for _, f := range required {
		if f.value == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}
