package dto

import (
	"github.com/shopspring/decimal"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// CreateProductRequest creates a catalog entry. Price is per pack/carton in
// the configured entry currency (EUR, or GBP when useGbpForPurchases is set —
// the service converts and stores EUR either way).
type CreateProductRequest struct {
	Name         string          `json:"name"         validate:"required,min=1"`
	Category     string          `json:"category"     validate:"required,min=1"`
	Price        decimal.Decimal `json:"price"        validate:"min=0"`
	UnitType     string          `json:"unitType"     validate:"omitempty"`
	PackSize     int             `json:"packSize"     validate:"omitempty,min=1"`
	InitialStock int             `json:"initialStock" validate:"min=0"`
	AddedStock1  int             `json:"addedStock1"  validate:"min=0"`
	AddedStock2  int             `json:"addedStock2"  validate:"min=0"`
	AddedStock3  int             `json:"addedStock3"  validate:"min=0"`
}

type UpdateProductRequest = CreateProductRequest

// ProductResponse is a catalog entry plus its derived current stock. Stock is
// recomputed from the journal on every read, never stored.
type ProductResponse struct {
	model.Product
	CurrentStock int `json:"currentStock"`
}
