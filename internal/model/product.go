package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Price is always stored in EUR per pack/carton
// regardless of the entry currency configured in ReportSettings. Stock fields
// count single units; a reporting period supports at most three discrete
// restocks (AddedStock1..3), matching the paper forms the reports reproduce.
type Product struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string          `gorm:"index;not null" json:"name"`
	Category string          `gorm:"not null" json:"category"`
	Price    decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"price"`
	UnitType string          `gorm:"not null;default:'pcs'" json:"unitType"`
	PackSize int             `gorm:"not null;default:1" json:"packSize"`

	InitialStock int `gorm:"not null;default:0" json:"initialStock"`
	AddedStock1  int `gorm:"not null;default:0" json:"addedStock1"`
	AddedStock2  int `gorm:"not null;default:0" json:"addedStock2"`
	AddedStock3  int `gorm:"not null;default:0" json:"addedStock3"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Product) TableName() string { return "products" }

// TotalAdded is the sum of the period's supply slots.
func (p Product) TotalAdded() int {
	return p.AddedStock1 + p.AddedStock2 + p.AddedStock3
}
