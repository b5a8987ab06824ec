package cron

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lashstudio/models"
	"lashstudio/services/booking"
	"lashstudio/services/notification"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// digestSchedule fires every morning at 07:00 server time.
const digestSchedule = "0 7 * * *"

// DigestWorker emails the business owner a daily summary of new bookings.
type DigestWorker struct {
	Bookings   booking.BookingService
	Sender     notification.Sender
	AdminEmail string
	Logger     *zap.Logger

	runner *cron.Cron
}

func NewDigestWorker(bookings booking.BookingService, sender notification.Sender, adminEmail string, logger *zap.Logger) *DigestWorker {
	return &DigestWorker{
		Bookings:   bookings,
		Sender:     sender,
		AdminEmail: adminEmail,
		Logger:     logger,
	}
}

// Start schedules the daily digest. No-op when no admin email is configured.
func (w *DigestWorker) Start() {
	if w.AdminEmail == "" {
		w.Logger.Info("No admin email configured, skipping daily digest worker")
		return
	}

	w.runner = cron.New()
	if _, err := w.runner.AddFunc(digestSchedule, w.sendDigest); err != nil {
		w.Logger.Error("Failed to schedule daily digest", zap.Error(err))
		return
	}
	w.runner.Start()
	w.Logger.Info("Daily digest worker started", zap.String("schedule", digestSchedule))
}

// Stop halts the scheduler, waiting for a running job to finish.
func (w *DigestWorker) Stop() {
	if w.runner != nil {
		<-w.runner.Stop().Done()
	}
}

func (w *DigestWorker) sendDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	all, err := w.Bookings.ListBookings(ctx)
	if err != nil {
		w.Logger.Error("Digest: failed to list bookings", zap.Error(err))
		return
	}

	recent := bookingsSince(all, time.Now().Add(-24*time.Hour))
	if len(recent) == 0 {
		w.Logger.Info("Digest: no new bookings in the last 24 hours")
		return
	}

	subject := fmt.Sprintf("Daily digest: %d new booking(s)", len(recent))
	if err := w.Sender.Send(ctx, notification.Email{
		To:       w.AdminEmail,
		Subject:  subject,
		HTMLBody: digestBody(recent),
	}); err != nil {
		w.Logger.Warn("Digest: failed to send email", zap.Error(err))
	}
}

// bookingsSince filters the (already newest-first) list down to bookings
// created after the cutoff.
func bookingsSince(all []models.Booking, cutoff time.Time) []models.Booking {
	var recent []models.Booking
	for _, b := range all {
		if b.CreatedAt.After(cutoff) {
			recent = append(recent, b)
		}
	}
	return recent
}

func digestBody(bookings []models.Booking) string {
	var sb strings.Builder
	sb.WriteString("<h2>New bookings in the last 24 hours</h2><ul>")
	for _, b := range bookings {
		sb.WriteString(fmt.Sprintf("<li><strong>#%s</strong> — %s, %s on %s (%s)</li>",
			b.BookingNumber, b.Name, b.Service, b.Date, b.Status))
	}
	sb.WriteString("</ul>")
	return sb.String()
}
