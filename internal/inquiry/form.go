package inquiry

import (
	"errors"
	"regexp"
	"strings"

	"caid/internal/content"
)

// Field names, matching the JSON keys of content.InquiryCreate.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldCompany = "company"
	FieldMessage = "message"
	FieldType    = "inquiry_type"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Option is a selectable inquiry type.
type Option struct {
	Label string
	Value string
}

// TypeOptions lists the inquiry types in display order.
func TypeOptions() []Option {
	return []Option{
		{Label: "Seed Funding", Value: content.InquiryFunding},
		{Label: "Product Demo", Value: content.InquiryDemo},
		{Label: "General Inquiry", Value: content.InquiryGeneral},
	}
}

// Form holds the contact form state together with its field errors.
type Form struct {
	Name    string
	Email   string
	Company string
	Message string
	Type    string

	errs Errors
}

// NewForm returns an empty form preset to a funding inquiry.
func NewForm() *Form {
	return &Form{Type: content.InquiryFunding}
}

// FromRequest wraps an API request body for validation.
func FromRequest(r content.InquiryCreate) *Form {
	return &Form{Name: r.Name, Email: r.Email, Company: r.Company, Message: r.Message, Type: r.InquiryType}
}

// Validate checks required fields and the email shape. The result is also
// kept on the form until fields are edited.
func (f *Form) Validate() Errors {
	errs := Errors{}
	for _, fv := range []struct{ field, value string }{
		{FieldName, f.Name},
		{FieldEmail, f.Email},
		{FieldMessage, f.Message},
	} {
		if err := ValidateField(fv.field, fv.value); err != nil {
			errs[fv.field] = err.Error()
		}
	}
	f.errs = errs
	return errs
}

// ValidateField checks one field on its own. Fields without rules always pass.
func ValidateField(field, value string) error {
	switch field {
	case FieldName:
		if strings.TrimSpace(value) == "" {
			return errors.New("Name is required")
		}
	case FieldEmail:
		if msg := ValidateEmail(value); msg != "" {
			return errors.New(msg)
		}
	case FieldMessage:
		if strings.TrimSpace(value) == "" {
			return errors.New("Message is required")
		}
	}
	return nil
}

// ValidateEmail returns the email error message, or "" when valid.
func ValidateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(email) {
		return "Email is invalid"
	}
	return ""
}

// Errors returns the field errors from the last Validate call.
func (f *Form) Errors() Errors { return f.errs }

// Clear drops the error for a field once the user edits it.
func (f *Form) Clear(field string) {
	delete(f.errs, field)
}

// Request builds the API body. Unknown types fall back to funding.
func (f *Form) Request() content.InquiryCreate {
	t := strings.TrimSpace(f.Type)
	if !ValidType(t) {
		t = content.InquiryFunding
	}
	return content.InquiryCreate{
		Name:        strings.TrimSpace(f.Name),
		Email:       strings.TrimSpace(f.Email),
		Company:     strings.TrimSpace(f.Company),
		Message:     strings.TrimSpace(f.Message),
		InquiryType: t,
	}
}

// Reset restores an empty form after a successful submit.
func (f *Form) Reset() {
	*f = Form{Type: content.InquiryFunding}
}

// ValidType reports whether t is a known inquiry type.
func ValidType(t string) bool {
	for _, o := range TypeOptions() {
		if o.Value == t {
			return true
		}
	}
	return false
}
