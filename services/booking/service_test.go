package booking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	bookingRepo "lashstudio/database/repository/booking"
	"lashstudio/models"
	"lashstudio/services/booking"
	"lashstudio/services/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBookingRepo is an in-memory BookingRepository. CancelByNumber performs
// its check-and-set under the lock, matching the atomicity of the Mongo
// conditional update.
type fakeBookingRepo struct {
	mu       sync.Mutex
	byNumber map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byNumber: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Insert(ctx context.Context, b models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byNumber[b.BookingNumber] = &b
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.byNumber {
		if b.ID == id {
			copy := *b
			return &copy, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) GetByNumber(ctx context.Context, number string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byNumber[number]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copy := *b
	return &copy, nil
}

func (r *fakeBookingRepo) CancelByNumber(ctx context.Context, number string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byNumber[number]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	if b.Status == models.StatusCancelled {
		return nil, bookingRepo.ErrAlreadyCancelled
	}
	b.Status = models.StatusCancelled
	copy := *b
	return &copy, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.byNumber {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for number, b := range r.byNumber {
		if b.ID == id {
			delete(r.byNumber, number)
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byNumber = make(map[string]*models.Booking)
	return nil
}

func (r *fakeBookingRepo) ListByCreatedDesc(ctx context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.byNumber {
		out = append(out, *b)
	}
	// Simple insertion sort, newest first.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].CreatedAt.After(out[j-1].CreatedAt); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) NewDocumentID() string {
	return uuid.New().String()
}

// recordingSender captures every email handed to it.
type recordingSender struct {
	mu   sync.Mutex
	sent []notification.Email
	fail bool
}

func (s *recordingSender) Send(ctx context.Context, msg notification.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return assert.AnError
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func newTestService(repo bookingRepo.BookingRepository, sender notification.Sender) *booking.DefaultBookingService {
	return &booking.DefaultBookingService{
		Repo:   repo,
		Sender: sender,
		Business: booking.Business{
			Name:       "Lash Studio",
			Address:    "1 Studio Lane",
			Contact:    "447438289674",
			SiteURL:    "https://lashstudio.example.com/",
			AdminEmail: "owner@lashstudio.example.com",
		},
		Logger: zap.NewNop(),
	}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "07700900123",
		Postcode: "SW1A 1AA",
		Service:  "Hybrid Lashes",
		Date:     "Dec 25, 2025",
		Notes:    "First visit",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeBookingRepo()
	sender := &recordingSender{}
	svc := newTestService(repo, sender)

	resp, err := svc.CreateBooking(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Len(t, resp.BookingNumber, 5)
	assert.NotEmpty(t, resp.EmailSubject)
	assert.NotEmpty(t, resp.EmailBody)

	// Immediately looking the booking up returns the stored record.
	b, err := svc.GetBookingDetails(context.Background(), resp.BookingNumber)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "Jane Doe", b.Name)
	assert.Equal(t, "jane@example.com", b.Email)
	assert.Equal(t, "Hybrid Lashes", b.Service)
	assert.Equal(t, models.StatusConfirmed, b.Status)
	assert.False(t, b.CreatedAt.IsZero())

	// Customer confirmation plus admin copy.
	assert.Equal(t, 2, sender.count())
}

func TestCreateBooking_ValidationError(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &recordingSender{})

	req := validRequest()
	req.Email = "not-an-email"

	resp, err := svc.CreateBooking(context.Background(), req)

	assert.Nil(t, resp)
	var vErr *booking.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)

	// Nothing was persisted.
	bookings, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCreateBooking_SenderFailureDoesNotAbort(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &recordingSender{fail: true})

	resp, err := svc.CreateBooking(context.Background(), validRequest())

	require.NoError(t, err)
	b, err := svc.GetBookingDetails(context.Background(), resp.BookingNumber)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, models.StatusConfirmed, b.Status)
}

func TestCreateBooking_NumberCollisionReRolls(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &recordingSender{})

	// Occupy the space lightly; successive creations must still all succeed
	// with distinct numbers.
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		resp, err := svc.CreateBooking(context.Background(), validRequest())
		require.NoError(t, err)
		assert.False(t, seen[resp.BookingNumber], "booking number %s reused", resp.BookingNumber)
		seen[resp.BookingNumber] = true
	}
}

func TestGetBookingDetails_NotFoundIsNotAnError(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &recordingSender{})

	b, err := svc.GetBookingDetails(context.Background(), "00000")

	assert.NoError(t, err)
	assert.Nil(t, b)
}

func TestCancelBooking_TransitionsAndGuards(t *testing.T) {
	repo := newFakeBookingRepo()
	sender := &recordingSender{}
	svc := newTestService(repo, sender)

	resp, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(context.Background(), resp.BookingNumber))

	b, err := svc.GetBookingDetails(context.Background(), resp.BookingNumber)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, b.Status)

	// Re-cancelling must diverge after the first call.
	err = svc.CancelBooking(context.Background(), resp.BookingNumber)
	var cancelled *booking.AlreadyCancelledError
	assert.ErrorAs(t, err, &cancelled)
}

func TestCancelBooking_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &recordingSender{})

	err := svc.CancelBooking(context.Background(), "99999")

	var notFound *booking.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCancelBooking_ConcurrentExactlyOneWinner(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &recordingSender{})

	resp, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	const callers = 2
	results := make(chan error, callers)
	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < callers; i++ {
		go func() {
			start.Wait()
			results <- svc.CancelBooking(context.Background(), resp.BookingNumber)
		}()
	}
	start.Done()

	var successes, alreadyCancelled int
	for i := 0; i < callers; i++ {
		err := <-results
		if err == nil {
			successes++
			continue
		}
		var cErr *booking.AlreadyCancelledError
		if assert.ErrorAs(t, err, &cErr) {
			alreadyCancelled++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, alreadyCancelled)
}

func TestUpdateBookingStatus_NoTransitionGuard(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &recordingSender{})

	resp, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	require.NoError(t, svc.CancelBooking(context.Background(), resp.BookingNumber))

	b, err := svc.GetBookingDetails(context.Background(), resp.BookingNumber)
	require.NoError(t, err)

	// The admin override may resurrect a cancelled booking.
	require.NoError(t, svc.UpdateBookingStatus(context.Background(), b.ID, models.StatusConfirmed))

	b, err = svc.GetBookingDetails(context.Background(), resp.BookingNumber)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, b.Status)
}

func TestUpdateBookingStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &recordingSender{})

	err := svc.UpdateBookingStatus(context.Background(), "some-id", "archived")

	var vErr *booking.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestListBookings_NewestFirst(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &recordingSender{})

	older := models.Booking{
		ID: repo.NewDocumentID(), BookingNumber: "11111",
		Name: "First", Status: models.StatusConfirmed,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := models.Booking{
		ID: repo.NewDocumentID(), BookingNumber: "22222",
		Name: "Second", Status: models.StatusConfirmed,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Insert(context.Background(), older))
	require.NoError(t, repo.Insert(context.Background(), newer))

	bookings, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "22222", bookings[0].BookingNumber)
	assert.Equal(t, "11111", bookings[1].BookingNumber)
}

func TestDeleteAllBookings_LeavesEmptyList(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &recordingSender{})

	for i := 0; i < 3; i++ {
		_, err := svc.CreateBooking(context.Background(), validRequest())
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteAllBookings(context.Background()))

	bookings, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestDeleteBooking_ByID(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &recordingSender{})

	resp, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	b, err := svc.GetBookingDetails(context.Background(), resp.BookingNumber)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(context.Background(), b.ID))

	gone, err := svc.GetBookingDetails(context.Background(), resp.BookingNumber)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var notFound *booking.NotFoundError
	assert.ErrorAs(t, svc.DeleteBooking(context.Background(), b.ID), &notFound)
}
