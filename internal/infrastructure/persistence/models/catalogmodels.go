package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestio-app/gestio/internal/shared/constants"
)

type ProductModel struct {
	ID        uint            `gorm:"primaryKey"`
	SID       string          `gorm:"size:32;uniqueIndex;not null"`
	Name      string          `gorm:"size:255;uniqueIndex;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductModel) TableName() string {
	return constants.TableProducts
}

type SellerModel struct {
	ID             uint            `gorm:"primaryKey"`
	SID            string          `gorm:"size:32;uniqueIndex;not null"`
	Name           string          `gorm:"size:255;not null"`
	CommissionRate decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (SellerModel) TableName() string {
	return constants.TableSellers
}
