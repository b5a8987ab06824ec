package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"lashstudio/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors surfaced by the repository. The booking service translates
// these into its caller-facing error types.
var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)

// BookingRepository is the persistence boundary for booking records.
type BookingRepository interface {
	Insert(ctx context.Context, b models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByNumber(ctx context.Context, bookingNumber string) (*models.Booking, error)
	// CancelByNumber flips the status to cancelled as a single conditional
	// update, so concurrent cancellations resolve to exactly one winner.
	// Returns the cancelled booking, ErrBookingNotFound, or ErrAlreadyCancelled.
	CancelByNumber(ctx context.Context, bookingNumber string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	ListByCreatedDesc(ctx context.Context) ([]models.Booking, error)
	NewDocumentID() string
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo(client *mongo.Client) BookingRepository {
	repo := &mongoBookingRepo{
		coll: client.Database("lashstudio").Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}
