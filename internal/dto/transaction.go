package dto

import "time"

// CreateTransactionRequest records a new spending transaction. OccurredAt
// defaults to now when omitted.
type CreateTransactionRequest struct {
	Amount      float64    `json:"amount" validate:"required,positive_amount"`
	Category    string     `json:"category" validate:"required,spending_category"`
	Description string     `json:"description" validate:"max=255"`
	Currency    string     `json:"currency" validate:"omitempty,len=3,alpha"`
	OccurredAt  *time.Time `json:"occurred_at"`
}

// ListTransactionsQuery holds pagination for transaction listings.
type ListTransactionsQuery struct {
	Offset int `query:"offset" validate:"min=0"`
	Limit  int `query:"limit" validate:"min=0,max=500"`
}

// ListTransactionsResponse wraps a page of transactions with its total count.
type ListTransactionsResponse struct {
	Transactions interface{} `json:"transactions"`
	Total        int64       `json:"total"`
	Offset       int         `json:"offset"`
	Limit        int         `json:"limit"`
}
