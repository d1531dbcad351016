package catalog

import "context"

// ProductRepository is the persistence port for products.
type ProductRepository interface {
	Create(ctx context.Context, entity *Product) error
	GetByID(ctx context.Context, productID uint) (*Product, error)
	ListAll(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, entity *Product) error
	Delete(ctx context.Context, productID uint) error
}

// SellerRepository is the persistence port for sellers.
type SellerRepository interface {
	Create(ctx context.Context, entity *Seller) error
	GetByID(ctx context.Context, sellerID uint) (*Seller, error)
	ListAll(ctx context.Context) ([]*Seller, error)
	Update(ctx context.Context, entity *Seller) error
	Delete(ctx context.Context, sellerID uint) error
}
