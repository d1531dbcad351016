package client

import "context"

// Filter narrows a client listing. Zero values match everything.
type Filter struct {
	Search           string
	ProductID        *uint
	SellerID         *uint
	SubscriptionType string
}

// Repository is the persistence port for clients.
type Repository interface {
	Create(ctx context.Context, entity *Client) error
	CreateBatch(ctx context.Context, entities []*Client) error
	GetByID(ctx context.Context, clientID uint) (*Client, error)
	GetBySID(ctx context.Context, sid string) (*Client, error)
	List(ctx context.Context, filter Filter) ([]*Client, error)
	ListAll(ctx context.Context) ([]*Client, error)
	Update(ctx context.Context, entity *Client) error
	Delete(ctx context.Context, clientID uint) error

	// ClearProductRefs nulls the product reference on every client pointing
	// at the given product. Used when a product is deleted; clients survive.
	ClearProductRefs(ctx context.Context, productID uint) error
	// ClearSellerRefs nulls the seller reference on every client pointing at
	// the given seller.
	ClearSellerRefs(ctx context.Context, sellerID uint) error
}
