package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	vo "github.com/gestio-app/gestio/internal/domain/client/valueobjects"
	"github.com/gestio-app/gestio/internal/shared/id"
)

// Client is the aggregate root for a customer record. A client carries one
// subscription window plus optional product and seller assignments; the
// referenced entities may be deleted out from under it, in which case the
// reference is cleared and the client survives unassigned.
type Client struct {
	clientID         uint
	sid              string
	clientUUID       string
	name             string
	surname          string
	companyName      *string
	vatNumber        *string
	address          string
	email            string
	iban             string
	notes            string
	subscription     Subscription
	subscriptionType vo.SubscriptionType
	productID        *uint
	sellerID         *uint
	metadata         map[string]interface{}
	createdAt        time.Time
	updatedAt        time.Time
}

// NewClientParams carries the caller-supplied fields for a new client.
type NewClientParams struct {
	Name             string
	Surname          string
	CompanyName      *string
	VATNumber        *string
	Address          string
	Email            string
	IBAN             string
	Notes            string
	Subscription     Subscription
	SubscriptionType vo.SubscriptionType
	ProductID        *uint
	SellerID         *uint
}

// NewClient creates a new client with generated SID and UUID.
func NewClient(p NewClientParams) (*Client, error) {
	if err := validateIdentity(p.Name, p.Surname, p.Email); err != nil {
		return nil, err
	}
	if p.Subscription.Start().IsZero() {
		return nil, fmt.Errorf("subscription is required")
	}
	if !vo.ValidSubscriptionTypes[p.SubscriptionType] {
		return nil, fmt.Errorf("invalid subscription type: %s", p.SubscriptionType)
	}

	now := time.Now().UTC()
	return &Client{
		sid:              id.MustGenerateWithPrefix(id.PrefixClient, id.DefaultLength),
		clientUUID:       uuid.NewString(),
		name:             strings.TrimSpace(p.Name),
		surname:          strings.TrimSpace(p.Surname),
		companyName:      p.CompanyName,
		vatNumber:        p.VATNumber,
		address:          p.Address,
		email:            strings.TrimSpace(p.Email),
		iban:             strings.TrimSpace(p.IBAN),
		notes:            p.Notes,
		subscription:     p.Subscription,
		subscriptionType: p.SubscriptionType,
		productID:        p.ProductID,
		sellerID:         p.SellerID,
		metadata:         make(map[string]interface{}),
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructParams carries every persisted field for rebuilding a client
// from storage.
type ReconstructParams struct {
	ID               uint
	SID              string
	UUID             string
	Name             string
	Surname          string
	CompanyName      *string
	VATNumber        *string
	Address          string
	Email            string
	IBAN             string
	Notes            string
	Subscription     Subscription
	SubscriptionType vo.SubscriptionType
	ProductID        *uint
	SellerID         *uint
	Metadata         map[string]interface{}
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReconstructClient rebuilds a client from persistence.
func ReconstructClient(p ReconstructParams) (*Client, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	if err := validateIdentity(p.Name, p.Surname, p.Email); err != nil {
		return nil, err
	}
	if !vo.ValidSubscriptionTypes[p.SubscriptionType] {
		return nil, fmt.Errorf("invalid subscription type: %s", p.SubscriptionType)
	}

	metadata := p.Metadata
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Client{
		clientID:         p.ID,
		sid:              p.SID,
		clientUUID:       p.UUID,
		name:             p.Name,
		surname:          p.Surname,
		companyName:      p.CompanyName,
		vatNumber:        p.VATNumber,
		address:          p.Address,
		email:            p.Email,
		iban:             p.IBAN,
		notes:            p.Notes,
		subscription:     p.Subscription,
		subscriptionType: p.SubscriptionType,
		productID:        p.ProductID,
		sellerID:         p.SellerID,
		metadata:         metadata,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

func validateIdentity(name, surname, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(surname) == "" {
		return fmt.Errorf("surname is required")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

func (c *Client) ID() uint                              { return c.clientID }
func (c *Client) SID() string                           { return c.sid }
func (c *Client) UUID() string                          { return c.clientUUID }
func (c *Client) Name() string                          { return c.name }
func (c *Client) Surname() string                       { return c.surname }
func (c *Client) CompanyName() *string                  { return c.companyName }
func (c *Client) VATNumber() *string                    { return c.vatNumber }
func (c *Client) Address() string                       { return c.address }
func (c *Client) Email() string                         { return c.email }
func (c *Client) IBAN() string                          { return c.iban }
func (c *Client) Notes() string                         { return c.notes }
func (c *Client) Subscription() Subscription            { return c.subscription }
func (c *Client) SubscriptionType() vo.SubscriptionType { return c.subscriptionType }
func (c *Client) ProductID() *uint                      { return c.productID }
func (c *Client) SellerID() *uint                       { return c.sellerID }
func (c *Client) Metadata() map[string]interface{}      { return c.metadata }
func (c *Client) CreatedAt() time.Time                  { return c.createdAt }
func (c *Client) UpdatedAt() time.Time                  { return c.updatedAt }

// FullName returns "name surname" for display and export.
func (c *Client) FullName() string {
	return c.name + " " + c.surname
}

// SetID sets the client ID (only for persistence layer use)
func (c *Client) SetID(clientID uint) error {
	if c.clientID != 0 {
		return fmt.Errorf("client ID is already set")
	}
	if clientID == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.clientID = clientID
	return nil
}

// UpdateDetailsParams carries the mutable identity fields.
type UpdateDetailsParams struct {
	Name        string
	Surname     string
	CompanyName *string
	VATNumber   *string
	Address     string
	Email       string
	IBAN        string
	Notes       string
}

// UpdateDetails replaces the client's identity fields.
func (c *Client) UpdateDetails(p UpdateDetailsParams) error {
	if err := validateIdentity(p.Name, p.Surname, p.Email); err != nil {
		return err
	}

	c.name = strings.TrimSpace(p.Name)
	c.surname = strings.TrimSpace(p.Surname)
	c.companyName = p.CompanyName
	c.vatNumber = p.VATNumber
	c.address = p.Address
	c.email = strings.TrimSpace(p.Email)
	c.iban = strings.TrimSpace(p.IBAN)
	c.notes = p.Notes
	c.touch()
	return nil
}

// UpdateSubscription replaces the subscription window and billing tag.
func (c *Client) UpdateSubscription(sub Subscription, subType vo.SubscriptionType) error {
	if !vo.ValidSubscriptionTypes[subType] {
		return fmt.Errorf("invalid subscription type: %s", subType)
	}
	c.subscription = sub
	c.subscriptionType = subType
	c.touch()
	return nil
}

// AssignProduct sets the product reference. A nil ID unassigns.
func (c *Client) AssignProduct(productID *uint) {
	c.productID = productID
	c.touch()
}

// AssignSeller sets the seller reference. A nil ID unassigns.
func (c *Client) AssignSeller(sellerID *uint) {
	c.sellerID = sellerID
	c.touch()
}

// ClearProduct drops a dangling product reference after the product was
// deleted. The client itself is kept.
func (c *Client) ClearProduct() {
	c.productID = nil
	c.touch()
}

// ClearSeller drops a dangling seller reference.
func (c *Client) ClearSeller() {
	c.sellerID = nil
	c.touch()
}

func (c *Client) touch() {
	c.updatedAt = time.Now().UTC()
}
