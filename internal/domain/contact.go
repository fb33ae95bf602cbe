package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// Contact form field names. They double as the HTML input names.
const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// ContactForm is the state of one visit to the contact page.
// A fresh value is created for every page view and discarded afterwards;
// nothing in it is persisted or sent anywhere.
type ContactForm struct {
	Name    string
	Phone   string
	Email   string
	Message string

	// Submitted flips to true on the first accepted Submit and stays true.
	Submitted bool

	// Errors maps field name to a message for the last rejected Submit.
	Errors map[string]string
}

// NewContactForm returns a form with every field empty and Submitted false.
func NewContactForm() *ContactForm {
	return &ContactForm{}
}

// Set updates exactly one field. The other fields are left untouched.
// Returns ErrValidation for an unknown field name.
func (f *ContactForm) Set(field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldPhone:
		f.Phone = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("%w: unknown field %q", ErrValidation, field)
	}
	return nil
}

// Submit accepts the form when name, email and message are filled in and the
// email is a well-formed address. Phone is optional.
// On rejection Submitted is unchanged and Errors lists the offending fields.
func (f *ContactForm) Submit() error {
	if f.Submitted {
		return nil
	}

	errs := map[string]string{}
	if f.Name == "" {
		errs[FieldName] = "Name is required."
	}
	switch {
	case f.Email == "":
		errs[FieldEmail] = "Email is required."
	case !validEmail(f.Email):
		errs[FieldEmail] = "Enter a valid email address."
	}
	if f.Message == "" {
		errs[FieldMessage] = "Project details are required."
	}

	if len(errs) > 0 {
		f.Errors = errs
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(sortedKeys(errs), ", "))
	}

	f.Errors = nil
	f.Submitted = true
	return nil
}

// validEmail mirrors the browser's type=email check: a bare addr-spec, no
// display name.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s, "@")
}

// sortedKeys returns the error field names in form order.
func sortedKeys(errs map[string]string) []string {
	var out []string
	for _, k := range []string{FieldName, FieldPhone, FieldEmail, FieldMessage} {
		if _, ok := errs[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
