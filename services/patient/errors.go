package patient

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPatientNotFound is returned when a patient ID or email does not resolve.
var ErrPatientNotFound = errors.New("patient not found")

// ErrInvalidCredentials is returned on a failed email/password check.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError enumerates every field that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}
