package models

import "time"

// Booking statuses. A booking is created as confirmed; cancellation is
// terminal for the customer-facing cancel flow, while admins may set any
// status via the dashboard.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// BookingRequest is the intake payload from the booking form or the assistant.
type BookingRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=10"`
	Postcode string `json:"postcode" binding:"required,min=5"`
	Service  string `json:"service" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Notes    string `json:"notes"`
}

// Booking is the persisted appointment record.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	BookingNumber string    `bson:"bookingNumber" json:"bookingNumber"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone" json:"phone"`
	Postcode      string    `bson:"postcode" json:"postcode"`
	Service       string    `bson:"service" json:"service"`
	Date          string    `bson:"date" json:"date"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingResponse is returned to the caller after a successful creation.
type BookingResponse struct {
	BookingNumber string `json:"bookingNumber"`
	EmailSubject  string `json:"emailSubject"`
	EmailBody     string `json:"emailBody"`
}
