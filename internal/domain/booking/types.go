package booking

import "time"

type Request struct {
	PickupLocation string
}

// Booking is a confirmed ride reservation. Only Admission creates one.
type Booking struct {
	ID             string    `json:"bookingId"`
	PickupLocation string    `json:"pickupLocation"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Decision is the outcome of an admission policy. Reason is only set on reject.
type Decision struct {
	Accept bool
	Reason string
}

func Accept() Decision { return Decision{Accept: true} }

func Reject(reason string) Decision { return Decision{Reason: reason} }
