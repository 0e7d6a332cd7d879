package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Generation Errors.

	// ErrProfileIncomplete indicates the user has no nutrition profile,
	// or one of its four daily targets is missing.
	ErrProfileIncomplete = errors.New("nutrition profile missing or incomplete: complete onboarding first")

	// ErrNoProteinFoods indicates filtering left the protein bucket empty.
	ErrNoProteinFoods = errors.New("no protein foods available matching your preferences")

	// ErrNoCarbFoods indicates filtering left the carb bucket empty.
	ErrNoCarbFoods = errors.New("no carb foods available matching your preferences")

	// ErrNoProduceFoods indicates filtering left both the vegetable and fruit buckets empty.
	ErrNoProduceFoods = errors.New("no vegetables or fruits available matching your preferences")
)

// IsCatalogInsufficient reports whether err means the filtered catalog
// cannot fill a required meal slot.
func IsCatalogInsufficient(err error) bool {
	return errors.Is(err, ErrNoProteinFoods) ||
		errors.Is(err, ErrNoCarbFoods) ||
		errors.Is(err, ErrNoProduceFoods)
}

// IsUserFacing reports whether err carries a message that can be shown to
// the caller verbatim. Anything else should be logged and replaced by a
// generic message.
func IsUserFacing(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrProfileIncomplete) ||
		IsCatalogInsufficient(err)
}

// Messages shown to callers by driving adapters.
const (
	MsgCompleteOnboarding = "please complete onboarding before generating menus"
	MsgGenerationFailed   = "failed to generate menu, please try again"
)

// PublicMessage returns the text a driving adapter may show for err.
// The second return is false for internal failures, whose details must be
// logged rather than shown; the text is then MsgGenerationFailed.
func PublicMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrProfileIncomplete):
		return MsgCompleteOnboarding, true
	case IsUserFacing(err), errors.Is(err, ErrNotFound):
		return err.Error(), true
	default:
		return MsgGenerationFailed, false
	}
}

// ValidationError describes one invalid input field.
type ValidationError struct {
	// Field is the name of the offending input field.
	Field string `json:"field"`

	// Message explains what is wrong with the field.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap makes every validation error match ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ValidationErrors collects field-level failures for one input.
type ValidationErrors []ValidationError

// Add appends a field failure.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns nil when no failures were collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for i := range v {
		parts = append(parts, v[i].Error())
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Unwrap makes the collection match ErrInvalidInput.
func (v ValidationErrors) Unwrap() error {
	return ErrInvalidInput
}
