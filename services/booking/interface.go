package booking

import (
	"context"

	bookingRepo "lashstudio/database/repository/booking"
	"lashstudio/models"
	"lashstudio/services/notification"

	"go.uber.org/zap"
)

// BookingService owns the booking lifecycle: number generation, status
// transitions, and confirmation/cancellation email content.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)
	// GetBookingDetails returns (nil, nil) when no booking matches; a miss is
	// not an error.
	GetBookingDetails(ctx context.Context, bookingNumber string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingNumber string) error
	UpdateBookingStatus(ctx context.Context, id, status string) error
	ListBookings(ctx context.Context) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	DeleteAllBookings(ctx context.Context) error
}

// Business carries the identity fields woven into email content.
type Business struct {
	Name            string
	Address         string
	Contact         string
	InstagramHandle string
	TikTokHandle    string
	SiteURL         string
	AdminEmail      string
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Sender   notification.Sender
	Business Business
	Logger   *zap.Logger
}
