package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailShape accepts anything shaped like x@y.z with no whitespace. The
// server does the real check.
var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	return v
}

// LoginForm is validated before any network call. Field order is the order
// in which violations are reported.
type LoginForm struct {
	Email    string `validate:"required,emailshape"`
	Password string `validate:"required,min=6"`
}

type SignupForm struct {
	Email           string `validate:"required,emailshape"`
	Password        string `validate:"required,min=6"`
	FullName        string `validate:"required"`
	Username        string `validate:"required,min=3"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

// Violation is one failed rule of a form.
type Violation struct {
	Field   string
	Message string
}

// ValidationError carries every violated rule of a form, in priority order.
// Error returns the first one, which is the message shown to the user.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "invalid input"
	}
	return e.Violations[0].Message
}

// Messages lists every violation message.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.Message)
	}
	return out
}

const msgReviewNeedsTwo = "Literature review requires at least 2 papers"

var messages = map[string]string{
	"Email.required":          "Email is required",
	"Email.emailshape":        "Email is invalid",
	"Password.required":       "Password is required",
	"Password.min":            "Password must be at least 6 characters",
	"FullName.required":       "Full name is required",
	"Username.required":       "Username is required",
	"Username.min":            "Username must be at least 3 characters",
	"ConfirmPassword.eqfield": "Passwords do not match",
	"Query.required":          "Please enter a search query",
	"Name.required":           "Workspace name is required",
	"Title.required":          "Document title is required",
	"Type.oneof":              "Analysis type must be summary, insights or literature_review",
	"PaperIDs.min":            "Please select at least one paper",
}

func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = strings.ToLower(fe.Field()) + " is invalid"
		}
		ve.Violations = append(ve.Violations, Violation{Field: fe.Field(), Message: msg})
	}
	return ve
}
