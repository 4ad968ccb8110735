package request

import (
	"strings"

	"reparotec/internal/domain/entities"
)

type QuoteItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

type IssueQuoteRequest struct {
	JobID     string             `json:"job_id" binding:"required"`
	Items     []QuoteItemRequest `json:"items" binding:"required"`
	ValidDays int                `json:"valid_days"`
}

func (r IssueQuoteRequest) ToItems() []entities.QuoteItem {
	items := make([]entities.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.QuoteItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return items
}

type QuoteResponseRequest struct {
	Response        string `json:"response" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}

func (r QuoteResponseRequest) ResolveResponse() entities.QuoteResponse {
	return entities.QuoteResponse(strings.ToUpper(strings.TrimSpace(r.Response)))
}
