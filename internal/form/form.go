// Package form validates report form state before it reaches the repository.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bryan-cox/reportledger/internal/model"
)

// Form is the state of the create/edit report form.
type Form struct {
	Title       string       `validate:"required,max=200"`
	Description string       `validate:"required"`
	Category    string       `validate:"required,report_category"`
	Content     string       `validate:"required"`
	Status      model.Status `validate:"required,report_status"`
	Author      string
	Date        model.Date
}

// New returns an empty form with the default status.
func New() Form {
	return Form{Status: model.StatusPending}
}

// FromReport returns a form prefilled with r, as the edit screen shows it.
func FromReport(r model.Report) Form {
	return Form{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Content:     r.Content,
		Status:      r.Status,
		Author:      r.Author,
		Date:        r.Date,
	}
}

// Apply returns base with every form field replacing the stored value. The
// id is kept.
func (f Form) Apply(base model.Report) model.Report {
	return model.Report{
		ID:          base.ID,
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Content:     f.Content,
		Status:      f.Status,
		Author:      strings.TrimSpace(f.Author),
		Date:        f.Date,
		Category:    f.Category,
	}
}

// Validator checks forms against the report rules.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the report status and category rules
// registered.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterValidation("report_status", validateStatus)
	v.RegisterValidation("report_category", validateCategory)
	return &Validator{validate: v}
}

func validateStatus(fl validator.FieldLevel) bool {
	return model.Status(fl.Field().String()).Valid()
}

func validateCategory(fl validator.FieldLevel) bool {
	return model.ValidCategory(fl.Field().String())
}

// FieldError describes why one form field was rejected.
type FieldError struct {
	Field   string
	Message string
}

// Error lists every rejected field of a form.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "invalid report: " + strings.Join(msgs, "; ")
}

// Validate returns a *Error naming each invalid field, or nil.
func (v *Validator) Validate(f Form) error {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	if strings.TrimSpace(f.Content) == "" {
		f.Content = ""
	}

	err := v.validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate report form: %w", err)
	}

	out := &Error{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "report_status":
		return fmt.Sprintf("unknown status %q", fe.Value())
	case "report_category":
		return fmt.Sprintf("unknown category %q", fe.Value())
	default:
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
