package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types. CREW issues are payroll deductions; REPRESENTATION issues
// go to a charterer or owner account identified by free text.
const (
	TypeCrew           = "CREW"
	TypeRepresentation = "REPRESENTATION"
)

// Representation sub-types.
const (
	RepCharterer = "CHARTERER"
	RepOwner     = "OWNER"
)

// Transaction is one distribution event. RecipientID holds a crew UUID for
// CREW issues and the free-text representative name for REPRESENTATION issues
// (no referential integrity, kept for compatibility with historic data).
// RecipientName and the item snapshots are immutable after creation: renaming
// a crew member or repricing a product never rewrites history.
type Transaction struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	IssuedOn           time.Time       `gorm:"index;not null" json:"timestamp"`
	Type               string          `gorm:"not null" json:"type"`
	RecipientID        string          `gorm:"index;not null" json:"recipientId"`
	RecipientName      string          `gorm:"not null" json:"recipientName"`
	RepresentationType string          `gorm:"not null;default:''" json:"representationType,omitempty"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalAmount"`

	Items []TransactionItem `gorm:"constraint:OnDelete:CASCADE;foreignKey:TransactionID" json:"items"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Transaction) TableName() string { return "transactions" }

// TransactionItem is one line of a distribution. ProductName and UnitPrice are
// snapshots taken at issue time so reports stay correct after catalog edits.
type TransactionItem struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	TransactionID uuid.UUID       `gorm:"type:uuid;index;not null" json:"-"`
	ProductID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"productId"`
	ProductName   string          `gorm:"not null" json:"productName"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"unitPrice"`
}

func (TransactionItem) TableName() string { return "transaction_items" }
