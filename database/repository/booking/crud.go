package bookingRepo

import (
	"context"
	"errors"
	"time"

	"lashstudio/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Insert persists a new booking. The caller is expected to have set the
// booking number; ID and CreatedAt are filled in here if missing.
func (r *mongoBookingRepo) Insert(ctx context.Context, b models.Booking) error {
	if b.ID == "" {
		b.ID = r.NewDocumentID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, b)
	return err
}

// GetByID returns a booking by its document ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// GetByNumber returns a booking by its customer-facing booking number.
func (r *mongoBookingRepo) GetByNumber(ctx context.Context, bookingNumber string) (*models.Booking, error) {
	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"bookingNumber": bookingNumber}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// CancelByNumber transitions a booking to cancelled. The status guard lives
// in the filter, so two racing cancellations cannot both match.
func (r *mongoBookingRepo) CancelByNumber(ctx context.Context, bookingNumber string) (*models.Booking, error) {
	filter := bson.M{
		"bookingNumber": bookingNumber,
		"status":        bson.M{"$ne": models.StatusCancelled},
	}
	update := bson.M{"$set": bson.M{"status": models.StatusCancelled}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&b)
	if err == nil {
		return &b, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	// No match: either the booking doesn't exist or it was already cancelled.
	if _, lookupErr := r.GetByNumber(ctx, bookingNumber); lookupErr != nil {
		return nil, lookupErr
	}
	return nil, ErrAlreadyCancelled
}

// UpdateStatus sets an arbitrary status by document ID. Admin-only path with
// no transition guard.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete removes a booking by document ID.
func (r *mongoBookingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// DeleteAll removes every booking in the collection.
func (r *mongoBookingRepo) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}

// ListByCreatedDesc returns all bookings, most recent first.
func (r *mongoBookingRepo) ListByCreatedDesc(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// NewDocumentID mints a storage key for a new booking document.
func (r *mongoBookingRepo) NewDocumentID() string {
	return uuid.New().String()
}
