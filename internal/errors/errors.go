package errors

import "fmt"

const (
	ErrNotFound     = "NOT_FOUND"
	ErrValidation   = "VALIDATION"
	ErrConflict     = "CONFLICT"
	ErrUnauthorized = "UNAUTHORIZED"
	ErrForbidden    = "FORBIDDEN"
	ErrInternal     = "INTERNAL"
)

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// --- Generic ---

func NewNotFound(entity, id string) *DomainError {
	return &DomainError{Code: ErrNotFound, Message: fmt.Sprintf("%s with id %s not found", entity, id)}
}

func NewValidation(msg string) *DomainError {
	return &DomainError{Code: ErrValidation, Message: msg}
}

func NewConflict(msg string) *DomainError {
	return &DomainError{Code: ErrConflict, Message: msg}
}

func NewUnauthorized(msg string) *DomainError {
	return &DomainError{Code: ErrUnauthorized, Message: msg}
}

func NewForbidden(msg string) *DomainError {
	return &DomainError{Code: ErrForbidden, Message: msg}
}

func NewInternal(msg string, err error) *DomainError {
	return &DomainError{Code: ErrInternal, Message: msg, Err: err}
}

// --- Pilot ---

func PilotNotFound(id string) *DomainError {
	return NewNotFound("pilot", id)
}

func InvalidPilotStatus(status string) *DomainError {
	return NewValidation(fmt.Sprintf("invalid pilot status %q: must be one of Available, On Leave, Unavailable, Assigned", status))
}

func DuplicatePilot(id string) *DomainError {
	return NewConflict(fmt.Sprintf("pilot %s already exists", id))
}

// --- Drone ---

func DroneNotFound(id string) *DomainError {
	return NewNotFound("drone", id)
}

func InvalidDroneStatus(status string) *DomainError {
	return NewValidation(fmt.Sprintf("invalid drone status %q: must be one of Available, Maintenance, Deployed", status))
}

func DuplicateDrone(id string) *DomainError {
	return NewConflict(fmt.Sprintf("drone %s already exists", id))
}

// --- Project ---

func ProjectNotFound(id string) *DomainError {
	return NewNotFound("project", id)
}

// DoubleBooking rejects an assignment that would overlap the pilot's current
// project. Nothing is persisted when this is returned.
func DoubleBooking(pilotID, currentProject string) *DomainError {
	return NewConflict(fmt.Sprintf(
		"double-booking: %s is already on %s with overlapping dates; unassign first or choose a different pilot",
		pilotID, currentProject))
}
