package client

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/gestio-app/gestio/internal/domain/client/valueobjects"
)

func newWindow(t *testing.T, start, end time.Time) Subscription {
	t.Helper()
	sub, err := NewSubscription(start, end)
	require.NoError(t, err)
	return sub
}

func newValidClient(t *testing.T) *Client {
	t.Helper()
	now := time.Now().UTC()
	entity, err := NewClient(NewClientParams{
		Name:             "Mario",
		Surname:          "Rossi",
		Address:          "Via Roma 1, 00100 Roma",
		Email:            "mario.rossi@example.com",
		IBAN:             "IT60X0542811101000000123456",
		Subscription:     newWindow(t, now.AddDate(0, 0, -20), now.AddDate(0, 0, 10)),
		SubscriptionType: vo.TypeMonthly,
	})
	require.NoError(t, err)
	return entity
}

func TestNewSubscription(t *testing.T) {
	now := time.Now().UTC()

	sub, err := NewSubscription(now, now.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.True(t, sub.Start().Before(sub.End()))

	_, err = NewSubscription(now, now)
	assert.Error(t, err, "start equal to end must be rejected")

	_, err = NewSubscription(now.AddDate(0, 1, 0), now)
	assert.Error(t, err, "inverted window must be rejected")

	_, err = NewSubscription(time.Time{}, now)
	assert.Error(t, err)
}

func TestNewClient_GeneratesIdentifiers(t *testing.T) {
	entity := newValidClient(t)

	assert.True(t, strings.HasPrefix(entity.SID(), "cli_"))
	assert.NotEmpty(t, entity.UUID())
	assert.Zero(t, entity.ID(), "database ID is assigned by the repository")
	assert.Nil(t, entity.ProductID())
	assert.Nil(t, entity.SellerID())
	assert.Equal(t, "Mario Rossi", entity.FullName())
}

func TestNewClient_Validation(t *testing.T) {
	now := time.Now().UTC()
	sub := newWindow(t, now, now.AddDate(0, 1, 0))

	tests := []struct {
		name   string
		params NewClientParams
	}{
		{
			name:   "missing name",
			params: NewClientParams{Surname: "Rossi", Email: "a@b.it", Subscription: sub, SubscriptionType: vo.TypeMonthly},
		},
		{
			name:   "missing surname",
			params: NewClientParams{Name: "Mario", Email: "a@b.it", Subscription: sub, SubscriptionType: vo.TypeMonthly},
		},
		{
			name:   "malformed email",
			params: NewClientParams{Name: "Mario", Surname: "Rossi", Email: "not-an-email", Subscription: sub, SubscriptionType: vo.TypeMonthly},
		},
		{
			name:   "invalid subscription type",
			params: NewClientParams{Name: "Mario", Surname: "Rossi", Email: "a@b.it", Subscription: sub, SubscriptionType: "weekly"},
		},
		{
			name:   "missing subscription",
			params: NewClientParams{Name: "Mario", Surname: "Rossi", Email: "a@b.it", SubscriptionType: vo.TypeMonthly},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.params)
			assert.Error(t, err)
		})
	}
}

func TestClient_SetID(t *testing.T) {
	entity := newValidClient(t)

	require.NoError(t, entity.SetID(7))
	assert.Equal(t, uint(7), entity.ID())

	assert.Error(t, entity.SetID(8), "ID cannot be reassigned")
	assert.Error(t, newValidClient(t).SetID(0))
}

func TestClient_UpdateDetails(t *testing.T) {
	entity := newValidClient(t)
	company := "Rossi S.R.L"

	err := entity.UpdateDetails(UpdateDetailsParams{
		Name:        "Maria",
		Surname:     "Bianchi",
		CompanyName: &company,
		Address:     "Corso Vittorio Emanuele 10, Milano",
		Email:       "maria.bianchi@example.com",
		IBAN:        "IT12A0306909606100000063749",
		Notes:       "cliente a lungo termine",
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria", entity.Name())
	assert.Equal(t, "Bianchi", entity.Surname())
	require.NotNil(t, entity.CompanyName())
	assert.Equal(t, company, *entity.CompanyName())

	assert.Error(t, entity.UpdateDetails(UpdateDetailsParams{Name: "", Surname: "x", Email: "a@b.it"}))
}

func TestClient_UpdateSubscription(t *testing.T) {
	entity := newValidClient(t)
	now := time.Now().UTC()
	next := newWindow(t, now, now.AddDate(1, 0, 0))

	require.NoError(t, entity.UpdateSubscription(next, vo.TypeAnnual))
	assert.Equal(t, vo.TypeAnnual, entity.SubscriptionType())
	assert.Equal(t, next.End(), entity.Subscription().End())

	assert.Error(t, entity.UpdateSubscription(next, "weekly"))
}

func TestClient_ProductSellerAssignment(t *testing.T) {
	entity := newValidClient(t)
	productID := uint(3)
	sellerID := uint(5)

	entity.AssignProduct(&productID)
	entity.AssignSeller(&sellerID)
	require.NotNil(t, entity.ProductID())
	require.NotNil(t, entity.SellerID())

	entity.ClearProduct()
	assert.Nil(t, entity.ProductID())
	assert.NotNil(t, entity.SellerID(), "clearing the product must not touch the seller")

	entity.ClearSeller()
	assert.Nil(t, entity.SellerID())
}

func TestSubscription_DerivedState(t *testing.T) {
	now := time.Now().UTC()
	sub := newWindow(t, now.AddDate(0, 0, -10), now.AddDate(0, 0, 10))

	assert.Equal(t, vo.LifecycleExpiringSoon, sub.Status(now))
	assert.InDelta(t, 0.5, sub.Progress(now), 0.01)

	remaining, expired := sub.Remaining(now)
	assert.False(t, expired)
	assert.Equal(t, 9, remaining.Days, "nine full days plus hours remain")

	elapsed := sub.Elapsed(now)
	assert.Equal(t, 10, elapsed.Days)

	_, started := sub.UntilStart(now)
	assert.True(t, started)
}

func TestReconstructClient(t *testing.T) {
	now := time.Now().UTC()
	sub := newWindow(t, now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))

	entity, err := ReconstructClient(ReconstructParams{
		ID:               42,
		SID:              "cli_abc123def456",
		UUID:             "00000000-0000-0000-0000-000000000001",
		Name:             "Luca",
		Surname:          "Verdi",
		Address:          "Via Garibaldi 20, Torino",
		Email:            "luca.verdi@example.com",
		IBAN:             "IT11A0200801694000105374827",
		Subscription:     sub,
		SubscriptionType: vo.TypeAnnual,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), entity.ID())
	assert.NotNil(t, entity.Metadata())

	_, err = ReconstructClient(ReconstructParams{ID: 0})
	assert.Error(t, err)
}
