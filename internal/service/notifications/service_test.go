package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millynails/MN-BookingService/internal/domain"
	"github.com/millynails/MN-BookingService/pkg/types"
)

type sentMessage struct {
	to   string
	body string
}

type fakeClient struct {
	sent    []sentMessage
	failFor map[string]error // keyed by destination address
}

func (f *fakeClient) SendMessage(_ context.Context, to, body string) error {
	if err := f.failFor[to]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentMessage{to: to, body: body})
	return nil
}

type fakeRepo struct {
	appts         []*domain.Appointment
	loadErr       error
	statuses      map[int64]domain.AppointmentStatus
	notifications []*domain.Notification
}

func (f *fakeRepo) GetByDateAndStatus(_ context.Context, _ time.Time, _ domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return f.appts, f.loadErr
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if f.statuses == nil {
		f.statuses = make(map[int64]domain.AppointmentStatus)
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeRepo) CreateNotification(_ context.Context, n *domain.Notification) error {
	f.notifications = append(f.notifications, n)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const adminPhone = "whatsapp:+5511999999999"

func testAppointment(id int64, name, phone string, start string) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		ClientName:      name,
		ClientPhone:     phone,
		ServiceName:     "Manicure",
		Date:            time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString(start),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}
}

func TestAppointmentCreated(t *testing.T) {
	client := &fakeClient{}
	repo := &fakeRepo{}
	svc := NewService(client, repo, adminPhone, nil, noopLogger{})

	appt := testAppointment(7, "Ana", "11987654321", "09:00")
	require.NoError(t, svc.AppointmentCreated(context.Background(), appt))

	require.Len(t, client.sent, 2)
	assert.Equal(t, "whatsapp:+5511987654321", client.sent[0].to)
	assert.Contains(t, client.sent[0].body, "Seu agendamento foi confirmado")
	assert.Equal(t, adminPhone, client.sent[1].to)
	assert.Contains(t, client.sent[1].body, "Novo Agendamento")

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, domain.NotificationConfirmation, repo.notifications[0].Kind)
	assert.Equal(t, domain.NotificationSent, repo.notifications[0].Status)
}

func TestAppointmentCreated_ClientSendFails(t *testing.T) {
	client := &fakeClient{failFor: map[string]error{
		"whatsapp:+5511987654321": errors.New("unreachable"),
	}}
	repo := &fakeRepo{}
	svc := NewService(client, repo, adminPhone, nil, noopLogger{})

	err := svc.AppointmentCreated(context.Background(), testAppointment(7, "Ana", "11987654321", "09:00"))
	assert.ErrorIs(t, err, ErrSendFailed)

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, domain.NotificationFailed, repo.notifications[0].Status)
}

func TestSendDailyReminders(t *testing.T) {
	client := &fakeClient{}
	repo := &fakeRepo{appts: []*domain.Appointment{
		testAppointment(1, "Ana", "11987654321", "09:00"),
		testAppointment(2, "Beatriz", "11912345678", "11:00"),
	}}
	svc := NewService(client, repo, adminPhone, nil, noopLogger{})

	sent, err := svc.SendDailyReminders(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	// Two client reminders plus the admin digest.
	require.Len(t, client.sent, 3)
	assert.Contains(t, client.sent[0].body, "Lembrete")
	assert.Equal(t, adminPhone, client.sent[2].to)
	assert.Contains(t, client.sent[2].body, "Agendamentos de hoje (2)")

	assert.Equal(t, domain.StatusNotified, repo.statuses[1])
	assert.Equal(t, domain.StatusNotified, repo.statuses[2])
}

func TestSendDailyReminders_PartialFailure(t *testing.T) {
	client := &fakeClient{failFor: map[string]error{
		"whatsapp:+5511987654321": errors.New("unreachable"),
	}}
	repo := &fakeRepo{appts: []*domain.Appointment{
		testAppointment(1, "Ana", "11987654321", "09:00"),
		testAppointment(2, "Beatriz", "11912345678", "11:00"),
	}}
	svc := NewService(client, repo, adminPhone, nil, noopLogger{})

	sent, err := svc.SendDailyReminders(context.Background(), time.Now())
	require.NoError(t, err, "one failed reminder does not abort the run")
	assert.Equal(t, 1, sent)

	// Ana keeps her confirmed status for a later retry.
	_, updated := repo.statuses[1]
	assert.False(t, updated)
	assert.Equal(t, domain.StatusNotified, repo.statuses[2])

	require.Len(t, repo.notifications, 2)
	assert.Equal(t, domain.NotificationFailed, repo.notifications[0].Status)
	assert.Equal(t, domain.NotificationSent, repo.notifications[1].Status)
}

func TestSendDailyReminders_EmptyDay(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, &fakeRepo{}, adminPhone, nil, noopLogger{})

	sent, err := svc.SendDailyReminders(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, client.sent, "no digest for an empty day")
}

func TestSendDailyReminders_LoadFailure(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("connection reset")}
	svc := NewService(&fakeClient{}, repo, adminPhone, nil, noopLogger{})

	_, err := svc.SendDailyReminders(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrInternal)
}
