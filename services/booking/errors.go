package booking

import (
	"fmt"
	"strings"
)

// MissingFieldError reports every required field that was empty, not just the
// first one found.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// UnknownProviderError reports a provider ID that did not resolve through the
// directory.
type UnknownProviderError struct {
	ID string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider: %s", e.ID)
}

// SlotNotOfferedError reports a requested time that is not in the provider's
// offered slot list for the date.
type SlotNotOfferedError struct {
	ProviderID string
	Date       string
	Time       string
}

func (e *SlotNotOfferedError) Error() string {
	return fmt.Sprintf("provider %s does not offer %s on %s", e.ProviderID, e.Time, e.Date)
}
