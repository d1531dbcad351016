package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/gestio-app/gestio/internal/shared/constants"
)

type ClientModel struct {
	ID                uint           `gorm:"primaryKey"`
	SID               string         `gorm:"size:32;uniqueIndex;not null"`
	UUID              string         `gorm:"size:36;uniqueIndex;not null"`
	Name              string         `gorm:"size:255;not null"`
	Surname           string         `gorm:"size:255;not null"`
	CompanyName       *string        `gorm:"size:255"`
	VATNumber         *string        `gorm:"size:64"`
	Address           string         `gorm:"size:512"`
	Email             string         `gorm:"size:255;uniqueIndex;not null"`
	IBAN              string         `gorm:"size:64"`
	Notes             string         `gorm:"type:text"`
	SubscriptionStart time.Time      `gorm:"not null;index"`
	SubscriptionEnd   time.Time      `gorm:"not null;index"`
	SubscriptionType  string         `gorm:"size:32;not null;default:'monthly'"`
	ProductID         *uint          `gorm:"index"`
	SellerID          *uint          `gorm:"index"`
	Metadata          datatypes.JSON `gorm:"type:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ClientModel) TableName() string {
	return constants.TableClients
}
