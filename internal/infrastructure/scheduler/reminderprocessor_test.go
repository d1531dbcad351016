package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	vo "github.com/gestio-app/gestio/internal/domain/client/valueobjects"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

// Fakes embed the interface and implement only what the processor calls.

type stubClientRepo struct {
	client.Repository
	clients []*client.Client
}

func (r *stubClientRepo) ListAll(_ context.Context) ([]*client.Client, error) {
	return r.clients, nil
}

type stubProductRepo struct {
	catalog.ProductRepository
	products []*catalog.Product
}

func (r *stubProductRepo) ListAll(_ context.Context) ([]*catalog.Product, error) {
	return r.products, nil
}

type countingSender struct {
	sent []string
}

func (s *countingSender) SendReminder(_ context.Context, to, _, _ string) error {
	s.sent = append(s.sent, to)
	return nil
}

func expiringClient(t *testing.T, clientID uint, email string, daysLeft int) *client.Client {
	t.Helper()
	now := time.Now().UTC()
	sub, err := client.NewSubscription(now.AddDate(0, -6, 0), now.Add(time.Duration(daysLeft)*24*time.Hour))
	require.NoError(t, err)
	c, err := client.NewClient(client.NewClientParams{
		Name:             "Anna",
		Surname:          "Rossi",
		Email:            email,
		Subscription:     sub,
		SubscriptionType: vo.TypeAnnual,
	})
	require.NoError(t, err)
	require.NoError(t, c.SetID(clientID))
	return c
}

func TestProcessReminders_SendsOncePerPeriod(t *testing.T) {
	clientRepo := &stubClientRepo{clients: []*client.Client{
		expiringClient(t, 1, "anna@example.com", 10),
	}}
	sender := &countingSender{}
	p := NewExpiryReminderProcessor(clientRepo, &stubProductRepo{}, sender, logger.NewLogger())

	require.NoError(t, p.ProcessReminders(context.Background()))
	require.NoError(t, p.ProcessReminders(context.Background()))

	assert.Equal(t, []string{"anna@example.com"}, sender.sent)
}

func TestProcessReminders_SkipsHealthyAndExpired(t *testing.T) {
	clientRepo := &stubClientRepo{clients: []*client.Client{
		expiringClient(t, 1, "healthy@example.com", 90),
		expiringClient(t, 2, "expired@example.com", -3),
		expiringClient(t, 3, "urgent@example.com", 2),
	}}
	sender := &countingSender{}
	p := NewExpiryReminderProcessor(clientRepo, &stubProductRepo{}, sender, logger.NewLogger())

	require.NoError(t, p.ProcessReminders(context.Background()))

	assert.Equal(t, []string{"urgent@example.com"}, sender.sent)
}

func TestProcessReminders_ResendsForNewPeriod(t *testing.T) {
	c := expiringClient(t, 1, "anna@example.com", 10)
	clientRepo := &stubClientRepo{clients: []*client.Client{c}}
	sender := &countingSender{}
	p := NewExpiryReminderProcessor(clientRepo, &stubProductRepo{}, sender, logger.NewLogger())

	require.NoError(t, p.ProcessReminders(context.Background()))

	// Renewal moves the end date, which makes a fresh dedup key.
	now := time.Now().UTC()
	sub, err := client.NewSubscription(now.AddDate(0, -1, 0), now.Add(20*24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, c.UpdateSubscription(sub, vo.TypeAnnual))

	require.NoError(t, p.ProcessReminders(context.Background()))

	assert.Equal(t, []string{"anna@example.com", "anna@example.com"}, sender.sent)
}

func TestProcessReminders_UsesProductName(t *testing.T) {
	product, err := catalog.NewProduct("Premium", decimal.NewFromFloat(50))
	require.NoError(t, err)
	require.NoError(t, product.SetID(9))

	c := expiringClient(t, 1, "anna@example.com", 10)
	pid := uint(9)
	c.AssignProduct(&pid)

	bodies := &bodyRecorder{}
	p := NewExpiryReminderProcessor(
		&stubClientRepo{clients: []*client.Client{c}},
		&stubProductRepo{products: []*catalog.Product{product}},
		bodies,
		logger.NewLogger(),
	)

	require.NoError(t, p.ProcessReminders(context.Background()))
	require.Len(t, bodies.bodies, 1)
	assert.Contains(t, bodies.bodies[0], `"Premium"`)
}

type bodyRecorder struct {
	bodies []string
}

func (s *bodyRecorder) SendReminder(_ context.Context, _, _, body string) error {
	s.bodies = append(s.bodies, body)
	return nil
}

type tickProcessor struct {
	runs atomic.Int32
}

func (p *tickProcessor) ProcessReminders(_ context.Context) error {
	p.runs.Add(1)
	return nil
}

func TestReminderScheduler_RunsImmediatelyAndStops(t *testing.T) {
	processor := &tickProcessor{}
	s := NewReminderScheduler(processor, 1, logger.NewLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return processor.runs.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	s.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
