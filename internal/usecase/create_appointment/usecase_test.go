package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millynails/MN-BookingService/internal/domain"
	storageAppointment "github.com/millynails/MN-BookingService/internal/infra/storage/appointment"
	"github.com/millynails/MN-BookingService/pkg/types"
)

// fakeRepo keeps appointments in memory. The mutex makes it safe for the
// concurrency test; the serial transaction manager below guarantees the
// read-check-insert sequences never interleave, mirroring serializable
// isolation.
type fakeRepo struct {
	mu       sync.Mutex
	nextID   int64
	appts    []*domain.Appointment
	loadErr  error
	saveErr  error
	hideLoad bool
}

func (f *fakeRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.hideLoad {
		return nil, nil
	}
	out := make([]*domain.Appointment, 0, len(f.appts))
	for _, a := range f.appts {
		if a.Date.Equal(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	for _, a := range f.appts {
		if a.Date.Equal(appt.Date) && a.StartTime == appt.StartTime {
			return nil, storageAppointment.ErrSlotTaken
		}
	}
	f.nextID++
	stored := *appt
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.appts = append(f.appts, &stored)
	return &stored, nil
}

// serialTxManager runs transaction bodies one at a time.
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeNotifier struct {
	mu     sync.Mutex
	sent   []int64
	err    error
	doneCh chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{doneCh: make(chan struct{}, 16)}
}

func (f *fakeNotifier) AppointmentCreated(_ context.Context, appt *domain.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doneCh <- struct{}{}
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, appt.ID)
	return nil
}

func (f *fakeNotifier) wait(t *testing.T) {
	t.Helper()
	select {
	case <-f.doneCh:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never called")
	}
}

func (f *fakeNotifier) sentIDs() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.sent...)
}

type countingMetrics struct {
	mu        sync.Mutex
	created   int
	conflicts int
}

func (c *countingMetrics) IncAppointmentsCreated() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.created++
}

func (c *countingMetrics) IncSlotConflicts() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conflicts++
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		ClientName:  "Ana",
		ClientPhone: "11987654321",
		ServiceName: "Manicure",
		// 2026-09-01 is a Tuesday.
		Date:      mustDate(t, "2026-09-01"),
		StartTime: "09:00",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	notifier := newFakeNotifier()
	metrics := &countingMetrics{}
	uc := NewUseCase(repo, &serialTxManager{}, notifier, metrics, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)

	notifier.wait(t)
	assert.Equal(t, []int64{1}, notifier.sentIDs())
	assert.Equal(t, 1, metrics.created)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &serialTxManager{}, newFakeNotifier(), nil, noopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
		want   error
	}{
		{"missing name", func(r *Request) { r.ClientName = "" }, ErrMissingField},
		{"missing phone", func(r *Request) { r.ClientPhone = "" }, ErrMissingField},
		{"missing service", func(r *Request) { r.ServiceName = "" }, ErrMissingField},
		{"missing date", func(r *Request) { r.Date = time.Time{} }, ErrMissingField},
		{"missing start time", func(r *Request) { r.StartTime = "" }, ErrMissingField},
		{"malformed start time", func(r *Request) { r.StartTime = "9h30" }, ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &serialTxManager{}, newFakeNotifier(), nil, noopLogger{})

	// 2026-08-30 is a Sunday, 2026-08-31 a Monday.
	for _, date := range []string{"2026-08-30", "2026-08-31"} {
		req := validRequest(t)
		req.Date = mustDate(t, date)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrClosedDay, "date %s", date)
	}
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &serialTxManager{}, newFakeNotifier(), nil, noopLogger{})

	tests := []struct {
		name    string
		service string
		start   types.TimeString
	}{
		{"before opening", "Manicure", "08:00"},
		{"too close to closing", "Manicure", "17:00"},
		{"long service late start", "Aplicação de alongamento em gel", "15:00"},
		{"at closing", "Adesivo (par)", "18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			req.ServiceName = tt.service
			req.StartTime = tt.start
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrOutsideBusinessHours)
		})
	}
}

func TestExecute_LastSlotOfTheDay(t *testing.T) {
	// 16:40 + 60 + 20 lands exactly on the 18:00 close.
	uc := NewUseCase(&fakeRepo{}, &serialTxManager{}, newFakeNotifier(), nil, noopLogger{})

	req := validRequest(t)
	req.StartTime = "16:40"
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &fakeRepo{}
	metrics := &countingMetrics{}
	uc := NewUseCase(repo, &serialTxManager{}, newFakeNotifier(), metrics, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	// The buffer after the 09:00 appointment runs until 10:20, so a 10:00
	// request collides even though the service itself ends at 10:00.
	req := validRequest(t)
	req.ClientName = "Beatriz"
	req.StartTime = "10:00"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, metrics.conflicts)
}

func TestExecute_BoundaryTouchIsBookable(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, &serialTxManager{}, newFakeNotifier(), nil, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	// 10:20 starts exactly where the previous buffer ends.
	req := validRequest(t)
	req.ClientName = "Beatriz"
	req.StartTime = "10:20"
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_DuplicateInsertMapsToSlotTaken(t *testing.T) {
	// The overlap check sees an empty day, but the insert itself reports a
	// duplicate. Simulates the unique index firing under a race the
	// transaction-level check could not observe.
	repo := &fakeRepo{
		hideLoad: true,
		appts: []*domain.Appointment{{
			ID:              1,
			ClientName:      "Ana",
			ClientPhone:     "11987654321",
			ServiceName:     "Manicure",
			Date:            mustDate(t, "2026-09-01"),
			StartTime:       "09:00",
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		}},
	}
	uc := NewUseCase(repo, &serialTxManager{}, newFakeNotifier(), nil, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_StorageFailures(t *testing.T) {
	t.Run("load", func(t *testing.T) {
		repo := &fakeRepo{loadErr: errors.New("connection reset")}
		uc := NewUseCase(repo, &serialTxManager{}, newFakeNotifier(), nil, noopLogger{})
		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrStorage)
	})

	t.Run("insert", func(t *testing.T) {
		repo := &fakeRepo{saveErr: errors.New("connection reset")}
		uc := NewUseCase(repo, &serialTxManager{}, newFakeNotifier(), nil, noopLogger{})
		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrStorage)
	})
}

func TestExecute_NotifierFailureDoesNotFailBooking(t *testing.T) {
	repo := &fakeRepo{}
	notifier := newFakeNotifier()
	notifier.err = errors.New("twilio unavailable")
	uc := NewUseCase(repo, &serialTxManager{}, notifier, nil, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)

	notifier.wait(t)

	appts, err := repo.GetByDate(context.Background(), mustDate(t, "2026-09-01"))
	require.NoError(t, err)
	assert.Len(t, appts, 1, "the booking survives the failed notification")
}

func TestExecute_ConcurrentCommitsSingleWinner(t *testing.T) {
	const attempts = 8

	repo := &fakeRepo{}
	notifier := newFakeNotifier()
	uc := NewUseCase(repo, &serialTxManager{}, notifier, nil, noopLogger{})

	req := validRequest(t)

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), req)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins, "exactly one commit wins the slot")
	assert.Equal(t, attempts-1, conflicts)

	appts, err := repo.GetByDate(context.Background(), mustDate(t, "2026-09-01"))
	require.NoError(t, err)
	assert.Len(t, appts, 1)
}
