package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	bookingRepo "lashstudio/database/repository/booking"
	"lashstudio/models"
	"lashstudio/services/notification"

	"go.uber.org/zap"
)

// maxNumberAttempts bounds the collision re-roll loop; the unique index on
// bookingNumber catches the pathological case.
const maxNumberAttempts = 5

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CreateBooking validates the request, persists a confirmed booking under a
// fresh booking number, and fires best-effort confirmation emails. The
// returned subject/body mirror what was (or would have been) sent to the
// customer.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	number, err := s.generateBookingNumber(ctx)
	if err != nil {
		return nil, err
	}

	b := models.Booking{
		ID:            s.Repo.NewDocumentID(),
		BookingNumber: number,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Postcode:      req.Postcode,
		Service:       req.Service,
		Date:          req.Date,
		Notes:         req.Notes,
		Status:        models.StatusConfirmed,
		CreatedAt:     time.Now(),
	}

	if err := s.Repo.Insert(ctx, b); err != nil {
		return nil, &StorageError{Op: "create booking", Err: err}
	}
	s.Logger.Info("Booking created",
		zap.String("bookingNumber", number),
		zap.String("service", b.Service),
	)

	subject, body := s.confirmationEmail(b)
	s.sendBestEffort(ctx, notification.Email{To: b.Email, Subject: subject, HTMLBody: body})

	adminSubject, adminBody := s.adminNewBookingEmail(b)
	if s.Business.AdminEmail != "" {
		s.sendBestEffort(ctx, notification.Email{To: s.Business.AdminEmail, Subject: adminSubject, HTMLBody: adminBody})
	}

	return &models.BookingResponse{
		BookingNumber: number,
		EmailSubject:  subject,
		EmailBody:     body,
	}, nil
}

// GetBookingDetails looks a booking up by number. A miss returns (nil, nil).
func (s *DefaultBookingService) GetBookingDetails(ctx context.Context, bookingNumber string) (*models.Booking, error) {
	b, err := s.Repo.GetByNumber(ctx, bookingNumber)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, nil
		}
		return nil, &StorageError{Op: "get booking", Err: err}
	}
	return b, nil
}

// CancelBooking transitions a booking to cancelled. Re-cancelling fails with
// AlreadyCancelledError; the underlying update is conditional, so two racing
// cancellations get exactly one success.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingNumber string) error {
	b, err := s.Repo.CancelByNumber(ctx, bookingNumber)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return &NotFoundError{BookingNumber: bookingNumber}
		case errors.Is(err, bookingRepo.ErrAlreadyCancelled):
			return &AlreadyCancelledError{BookingNumber: bookingNumber}
		default:
			return &StorageError{Op: "cancel booking", Err: err}
		}
	}
	s.Logger.Info("Booking cancelled", zap.String("bookingNumber", bookingNumber))

	subject, body := s.cancellationEmail(*b)
	s.sendBestEffort(ctx, notification.Email{To: b.Email, Subject: subject, HTMLBody: body})

	if s.Business.AdminEmail != "" {
		adminSubject, adminBody := s.adminCancellationEmail(*b)
		s.sendBestEffort(ctx, notification.Email{To: s.Business.AdminEmail, Subject: adminSubject, HTMLBody: adminBody})
	}
	return nil
}

// UpdateBookingStatus is the admin override: any status from any status.
func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, id, status string) error {
	if status != models.StatusConfirmed && status != models.StatusCancelled && status != models.StatusCompleted {
		return &ValidationError{Field: "status", Message: "must be confirmed, cancelled or completed"}
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return &NotFoundError{BookingNumber: id}
		}
		return &StorageError{Op: "update booking status", Err: err}
	}
	return nil
}

// ListBookings returns all bookings, most recent first.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByCreatedDesc(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list bookings", Err: err}
	}
	return bookings, nil
}

// DeleteBooking hard-deletes a single booking by document ID.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return &NotFoundError{BookingNumber: id}
		}
		return &StorageError{Op: "delete booking", Err: err}
	}
	return nil
}

// DeleteAllBookings wipes the collection in a single batch.
func (s *DefaultBookingService) DeleteAllBookings(ctx context.Context) error {
	if err := s.Repo.DeleteAll(ctx); err != nil {
		return &StorageError{Op: "delete all bookings", Err: err}
	}
	return nil
}

// generateBookingNumber draws a random 5-digit numeral and re-rolls on
// collision.
func (s *DefaultBookingService) generateBookingNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		candidate := fmt.Sprintf("%05d", 10000+rand.Intn(90000))
		_, err := s.Repo.GetByNumber(ctx, candidate)
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", &StorageError{Op: "generate booking number", Err: err}
		}
	}
	return "", &StorageError{Op: "generate booking number", Err: errors.New("exhausted booking number attempts")}
}

// sendBestEffort delivers an email without ever failing the booking mutation
// that triggered it.
func (s *DefaultBookingService) sendBestEffort(ctx context.Context, msg notification.Email) {
	if s.Sender == nil {
		return
	}
	if err := s.Sender.Send(ctx, msg); err != nil {
		s.Logger.Warn("Failed to send booking email",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Error(err),
		)
	}
}

func validateRequest(req models.BookingRequest) error {
	if len(strings.TrimSpace(req.Name)) < 2 {
		return &ValidationError{Field: "name", Message: "please enter your name"}
	}
	if !emailPattern.MatchString(req.Email) {
		return &ValidationError{Field: "email", Message: "please enter a valid email address"}
	}
	if len(strings.TrimSpace(req.Phone)) < 10 {
		return &ValidationError{Field: "phone", Message: "please enter a valid phone number"}
	}
	if len(strings.TrimSpace(req.Postcode)) < 5 {
		return &ValidationError{Field: "postcode", Message: "please enter a valid postcode"}
	}
	if strings.TrimSpace(req.Service) == "" {
		return &ValidationError{Field: "service", Message: "please select a service"}
	}
	if strings.TrimSpace(req.Date) == "" {
		return &ValidationError{Field: "date", Message: "a booking date is required"}
	}
	return nil
}
