package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType enumerates all domain event types.
type EventType string

const (
	EventCustomerRegistered EventType = "customer.registered"
	EventPurchasePosted     EventType = "purchase.posted"
	EventReturnPosted       EventType = "return.posted"
	EventFundsAdded         EventType = "funds.added"
)

// AggregateType enumerates the aggregate root types for outbox events.
type AggregateType string

const (
	AggregateCustomer AggregateType = "customer"
	AggregateLedger   AggregateType = "ledger"
)

// OutboxDraft is the payload written to the event_outbox table.
type OutboxDraft struct {
	EventID       uuid.UUID       `json:"event_id"`
	AggregateType AggregateType   `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     EventType       `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

func newDraft(agg AggregateType, aggID string, evt EventType, payload interface{}) OutboxDraft {
	raw, _ := json.Marshal(payload)
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: agg,
		AggregateID:   aggID,
		EventType:     evt,
		Payload:       raw,
		OccurredAt:    time.Now(),
	}
}

// NewCustomerRegisteredEvent creates the account lifecycle event.
func NewCustomerRegisteredEvent(c *Customer) OutboxDraft {
	return newDraft(AggregateCustomer, c.ID.String(), EventCustomerRegistered, map[string]string{
		"customer_id": c.ID.String(),
		"username":    c.Username,
		"email":       c.Email,
	})
}

// NewPurchasePostedEvent creates the debit ledger event.
func NewPurchasePostedEvent(p *Purchase, total decimal.Decimal, balanceAfter decimal.Decimal) OutboxDraft {
	return newDraft(AggregateLedger, p.CustomerID.String(), EventPurchasePosted, map[string]interface{}{
		"purchase_id":   p.ID.String(),
		"customer_id":   p.CustomerID.String(),
		"game_id":       p.GameID.String(),
		"qty":           p.Qty,
		"total":         total.StringFixed(2),
		"balance_after": balanceAfter.StringFixed(2),
	})
}

// NewReturnPostedEvent creates the credit ledger event.
func NewReturnPostedEvent(r *Return, refund decimal.Decimal, balanceAfter decimal.Decimal) OutboxDraft {
	return newDraft(AggregateLedger, r.CustomerID.String(), EventReturnPosted, map[string]interface{}{
		"return_id":     r.ID.String(),
		"customer_id":   r.CustomerID.String(),
		"purchase_id":   r.PurchaseID.String(),
		"refund":        refund.StringFixed(2),
		"balance_after": balanceAfter.StringFixed(2),
	})
}

// NewFundsAddedEvent creates the top-up ledger event.
func NewFundsAddedEvent(customerID uuid.UUID, amount, balanceAfter decimal.Decimal) OutboxDraft {
	return newDraft(AggregateLedger, customerID.String(), EventFundsAdded, map[string]string{
		"customer_id":   customerID.String(),
		"amount":        amount.StringFixed(2),
		"balance_after": balanceAfter.StringFixed(2),
	})
}
