package booking

import (
	"errors"
	"fmt"
)

// FlowError is a typed booking-flow error carrying a machine-readable code.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeSessionNotFound  = "sessionNotFound"
	CodeInvalidSelection = "invalidSelection"
	CodeFlowIncomplete   = "flowIncomplete"
)

// ErrSessionNotFound is returned when a caller expects an active session but
// the store has no record for the id (missing, cleared or expired).
func ErrSessionNotFound() error {
	return &FlowError{Code: CodeSessionNotFound, Message: "booking session not found or expired"}
}

func NewInvalidSelectionError(msg string) error {
	return &FlowError{Code: CodeInvalidSelection, Message: msg}
}

func NewFlowIncompleteError(msg string) error {
	return &FlowError{Code: CodeFlowIncomplete, Message: msg}
}

// CodeOf extracts the flow error code, or "" for other errors.
func CodeOf(err error) string {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}
