package ui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"caid/internal/client"
	"caid/internal/content"
	"caid/internal/inquiry"
)

// contactTheme tweaks the Charm theme to the Vitesse accent.
func contactTheme() *huh.Theme {
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n")
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(Vitesse.Secondary)
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(Vitesse.Primary).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(Vitesse.Muted)
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(Vitesse.Primary)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(Vitesse.Primary)
	theme.Focused.ErrorMessage = theme.Focused.ErrorMessage.Foreground(Vitesse.Red)
	theme.Focused.ErrorIndicator = theme.Focused.ErrorIndicator.Foreground(Vitesse.Red)
	return theme
}

// validator checks one field and drops its stale error from vals once the
// edited value passes.
func validator(vals *inquiry.Form, field string) func(string) error {
	return func(s string) error {
		if err := inquiry.ValidateField(field, s); err != nil {
			return err
		}
		vals.Clear(field)
		return nil
	}
}

// formIntro lists the errors left from the previous attempt, if any.
func formIntro(vals *inquiry.Form) string {
	if errs := vals.Errors(); !errs.OK() {
		return "Please fix: " + errs.Error()
	}
	return "Tell us about your interest in CAID."
}

// newContactForm binds a huh form to vals. Esc cancels the form.
func newContactForm(vals *inquiry.Form, width int) *huh.Form {
	opts := make([]huh.Option[string], 0, len(inquiry.TypeOptions()))
	for _, o := range inquiry.TypeOptions() {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}
	if width <= 0 || width > 72 {
		width = 72
	}

	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Investment Inquiry").Description(formIntro(vals)),
			huh.NewInput().Title("Name *").Placeholder("Your Name").Value(&vals.Name).Validate(validator(vals, inquiry.FieldName)),
			huh.NewInput().Title("Email *").Placeholder("Email Address").Value(&vals.Email).Validate(validator(vals, inquiry.FieldEmail)),
			huh.NewInput().Title("Company").Placeholder("Company/Organization").Value(&vals.Company),
			huh.NewSelect[string]().Title("Inquiry Type").Options(opts...).Value(&vals.Type),
			huh.NewText().Title("Message *").Placeholder("Tell us about your interest in CAID...").
				Lines(4).Value(&vals.Message).Validate(validator(vals, inquiry.FieldMessage)),
		),
	).WithTheme(contactTheme()).WithWidth(width).WithKeyMap(km).WithShowHelp(true)
}

// Submitter sends inquiries; *client.Client and client.Offline implement it.
type Submitter interface {
	CreateInquiry(ctx context.Context, in content.InquiryCreate) (content.InquiryReceipt, error)
}

// RunContactForm runs the contact form as a standalone program and submits
// the result.
func RunContactForm(ctx context.Context, sub Submitter) (content.InquiryReceipt, error) {
	vals := inquiry.NewForm()
	form := newContactForm(vals, 72)
	if err := form.RunWithContext(ctx); err != nil {
		return content.InquiryReceipt{}, err
	}
	if errs := vals.Validate(); !errs.OK() {
		return content.InquiryReceipt{}, errs
	}
	receipt, err := sub.CreateInquiry(ctx, vals.Request())
	if err != nil {
		return receipt, fmt.Errorf("submit inquiry: %w", err)
	}
	return receipt, nil
}

// submitError is the text shown after "Error:" when a submit fails.
func submitError(err error) error {
	var apiErr *client.APIError
	if client.IsAPIError(err, http.StatusUnprocessableEntity) && errors.As(err, &apiErr) {
		// field errors arrive as a JSON object keyed by field
		var fields inquiry.Errors
		if json.Unmarshal([]byte(apiErr.Detail), &fields) == nil && !fields.OK() {
			return fields
		}
	}
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return errors.New(apiErr.Detail)
	}
	return err
}
