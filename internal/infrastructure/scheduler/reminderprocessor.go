package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gestio-app/gestio/internal/application/report/usecases"
	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	"github.com/gestio-app/gestio/internal/domain/report"
	"github.com/gestio-app/gestio/internal/shared/biztime"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

// ExpiryReminderProcessor scans for subscriptions inside the expiry
// window and emails each affected client once per subscription period.
// Dedup state is in memory, so a restart may resend at most one
// reminder per client.
type ExpiryReminderProcessor struct {
	clientRepo  client.Repository
	productRepo catalog.ProductRepository
	sender      usecases.ReminderSender
	logger      logger.Interface

	mu   sync.Mutex
	sent map[string]struct{}
}

func NewExpiryReminderProcessor(
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sender usecases.ReminderSender,
	logger logger.Interface,
) *ExpiryReminderProcessor {
	return &ExpiryReminderProcessor{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		sender:      sender,
		logger:      logger,
		sent:        map[string]struct{}{},
	}
}

// ProcessReminders sends a reminder to every client whose subscription
// is expiring soon and has not been reminded for the current period.
func (p *ExpiryReminderProcessor) ProcessReminders(ctx context.Context) error {
	clients, err := p.clientRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list clients: %w", err)
	}
	products, err := p.productRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	productByID := make(map[uint]*catalog.Product, len(products))
	for _, prod := range products {
		productByID[prod.ID()] = prod
	}

	now := biztime.NowUTC()
	expiring := report.ExpiringSoon(clients, now)

	var sent int
	for _, e := range expiring {
		c := e.Client
		if c.Email() == "" {
			continue
		}

		key := dedupKey(c.ID(), c.Subscription().End())
		p.mu.Lock()
		_, already := p.sent[key]
		p.mu.Unlock()
		if already {
			continue
		}

		productLabel := "il nostro servizio"
		if c.ProductID() != nil {
			if prod, ok := productByID[*c.ProductID()]; ok {
				productLabel = fmt.Sprintf("%q", prod.Name())
			}
		}

		body := usecases.ReminderBody(c.Name(), productLabel, c.Subscription().End())
		if err := p.sender.SendReminder(ctx, c.Email(), usecases.ReminderSubject, body); err != nil {
			p.logger.Errorw("failed to send expiry reminder",
				"error", err,
				"client_id", c.ID())
			continue
		}

		p.mu.Lock()
		p.sent[key] = struct{}{}
		p.mu.Unlock()
		sent++
	}

	if sent > 0 {
		p.logger.Infow("expiry reminders sent",
			"count", sent,
			"expiring", len(expiring))
	}
	return nil
}

func dedupKey(clientID uint, end time.Time) string {
	return fmt.Sprintf("%d|%s", clientID, end.UTC().Format(time.RFC3339))
}
