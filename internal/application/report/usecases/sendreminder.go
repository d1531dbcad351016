package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	"github.com/gestio-app/gestio/internal/shared/biztime"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

// ReminderSender delivers a renewal reminder email.
type ReminderSender interface {
	SendReminder(ctx context.Context, to, subject, body string) error
}

// ReminderSubject is the subject line of every renewal reminder.
const ReminderSubject = "Promemoria Scadenza Abbonamento"

type SendReminderCommand struct {
	ClientID uint
}

type SendReminderUseCase struct {
	clientRepo  client.Repository
	productRepo catalog.ProductRepository
	sender      ReminderSender
	logger      logger.Interface
}

func NewSendReminderUseCase(
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sender ReminderSender,
	logger logger.Interface,
) *SendReminderUseCase {
	return &SendReminderUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		sender:      sender,
		logger:      logger,
	}
}

func (uc *SendReminderUseCase) Execute(ctx context.Context, cmd SendReminderCommand) error {
	c, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewNotFoundError("client not found")
		}
		return apperrors.NewInternalError("failed to load client")
	}

	productLabel := "il nostro servizio"
	if c.ProductID() != nil {
		if p, err := uc.productRepo.GetByID(ctx, *c.ProductID()); err == nil {
			productLabel = fmt.Sprintf("%q", p.Name())
		}
	}

	body := ReminderBody(c.Name(), productLabel, c.Subscription().End())
	if err := uc.sender.SendReminder(ctx, c.Email(), ReminderSubject, body); err != nil {
		uc.logger.Errorw("failed to send reminder", "error", err, "client_id", c.ID())
		return apperrors.NewInternalError("failed to send reminder email")
	}

	uc.logger.Infow("reminder sent", "client_id", c.ID(), "email", c.Email())
	return nil
}

// ReminderBody renders the Italian renewal reminder text. The end date is
// formatted in the business timezone.
func ReminderBody(clientName, productLabel string, endsAt time.Time) string {
	return fmt.Sprintf(`Ciao %s,

Ti scriviamo per ricordarti che il tuo abbonamento per %s è in scadenza il %s.

Se desideri rinnovare o discutere le opzioni disponibili, non esitare a contattarci.

Grazie,
Il Tuo Team`, clientName, productLabel, biztime.FormatInBizTimezone(endsAt, "02/01/2006"))
}
