package dto

import (
	"time"

	"github.com/gestio-app/gestio/internal/domain/catalog"
)

type ProductDTO struct {
	ID        uint      `json:"id"`
	SID       string    `json:"sid"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SellerDTO struct {
	ID             uint      `json:"id"`
	SID            string    `json:"sid"`
	Name           string    `json:"name"`
	CommissionRate string    `json:"commission_rate"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToProductDTO(p *catalog.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:        p.ID(),
		SID:       p.SID(),
		Name:      p.Name(),
		Price:     p.Price().StringFixed(2),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func ToProductDTOs(products []*catalog.Product) []*ProductDTO {
	dtos := make([]*ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, ToProductDTO(p))
	}
	return dtos
}

func ToSellerDTO(s *catalog.Seller) *SellerDTO {
	if s == nil {
		return nil
	}
	return &SellerDTO{
		ID:             s.ID(),
		SID:            s.SID(),
		Name:           s.Name(),
		CommissionRate: s.CommissionRate().String(),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

func ToSellerDTOs(sellers []*catalog.Seller) []*SellerDTO {
	dtos := make([]*SellerDTO, 0, len(sellers))
	for _, s := range sellers {
		dtos = append(dtos, ToSellerDTO(s))
	}
	return dtos
}
