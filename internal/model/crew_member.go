package model

import (
	"time"

	"github.com/google/uuid"
)

// Crew member currencies. Salary deductions are tracked in EUR and converted
// to USD at report time for members paid in dollars.
const (
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
)

// CrewMember is a person on the vessel's payroll who may receive bonded-store
// goods. Rank is free text; known ranks get a deterministic sort position,
// anything else sorts after them. Inactive ("signed off") members stay on file
// until the month is closed, so their deductions still appear in reports.
type CrewMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"index;not null" json:"name"`
	Rank     string    `gorm:"not null" json:"rank"`
	IsActive bool      `gorm:"not null;default:true" json:"isActive"`
	Currency string    `gorm:"not null;default:'EUR'" json:"currency"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (CrewMember) TableName() string { return "crew_members" }
