package dto

// CartItemRequest is one line of a checkout or edit. Quantity 0 is allowed on
// edits (the line is dropped); checkout requires at least 1 per line.
type CartItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity"  validate:"min=0"`
}

// CheckoutRequest records one distribution. For CREW issues RecipientID must
// be an existing active crew member; for REPRESENTATION issues RecipientName
// carries the free-text account name and RepresentationType selects the
// charterer/owner column.
type CheckoutRequest struct {
	Type               string            `json:"type"               validate:"required,oneof=CREW REPRESENTATION"`
	RecipientID        string            `json:"recipientId"        validate:"omitempty,uuid"`
	RecipientName      string            `json:"recipientName"      validate:"omitempty"`
	RepresentationType string            `json:"representationType" validate:"omitempty,oneof=CHARTERER OWNER"`
	IssuedOn           string            `json:"issuedOn"           validate:"required,datetime=2006-01-02"`
	Items              []CartItemRequest `json:"items"              validate:"required,min=1,dive"`
}

// EditTransactionRequest replaces a transaction's item list. Existing lines
// keep their price snapshots; new product ids get snapshotted at the current
// catalog price. An empty (or all-zero) list deletes the transaction.
type EditTransactionRequest struct {
	Items []CartItemRequest `json:"items" validate:"dive"`
}

// HistoryFilter is bound from the query string of GET /v1/reports/history.
type HistoryFilter struct {
	// "ALL" (default), "REPRESENTATION", or a crew member id
	Recipient string `form:"recipient,default=ALL"`
}
