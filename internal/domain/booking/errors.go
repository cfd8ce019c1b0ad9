package booking

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindInvalidRequest     Kind = "InvalidRequest"
	KindBookingUnavailable Kind = "BookingUnavailable"
)

var (
	ErrInvalidRequest     = errors.New("invalid booking request")
	ErrBookingUnavailable = errors.New("booking unavailable")
)

// Error is returned by Admission for every failed request. It matches
// ErrInvalidRequest or ErrBookingUnavailable under errors.Is.
type Error struct {
	Kind    Kind   `json:"errorKind"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidRequest:
		return e.Kind == KindInvalidRequest
	case ErrBookingUnavailable:
		return e.Kind == KindBookingUnavailable
	}
	return false
}

func invalidRequest(msg string) error {
	return &Error{Kind: KindInvalidRequest, Message: msg}
}

func unavailable(reason string) error {
	if reason == "" {
		reason = DefaultRejectReason
	}
	return &Error{Kind: KindBookingUnavailable, Message: reason}
}

// KindOf returns the booking error kind carried by err, or "" if err is not
// a booking error.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}
