package handler

import (
	"net/http"

	"github.com/gamevault/platform/internal/domain"
	"github.com/gamevault/platform/internal/service"
	"github.com/google/uuid"
)

// StoreHandler serves the money-moving store operations.
type StoreHandler struct {
	store *service.StoreService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(store *service.StoreService) *StoreHandler {
	return &StoreHandler{store: store}
}

type purchaseRequest struct {
	Game     string `json:"game"`
	Quantity int    `json:"quantity"`
}

type returnRequest struct {
	PurchaseID string `json:"purchase_id"`
}

// Purchase handles POST /store/purchases.
func (h *StoreHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	var req purchaseRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	if req.Game == "" {
		RespondError(w, domain.ErrValidation("game is required"))
		return
	}

	result, err := h.store.Purchase(r.Context(), domain.PurchaseParams{
		CustomerID: customerID,
		GameName:   req.Game,
		Qty:        req.Quantity,
	})
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "purchase complete",
		"purchase": result.Purchase,
		"total":    result.Total.StringFixed(2),
		"balance":  result.Customer.Balance.StringFixed(2),
	})
}

// Return handles POST /store/returns. The refund is recomputed from the
// game's current catalogue price at return time.
func (h *StoreHandler) Return(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	var req returnRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	purchaseID, err := uuid.Parse(req.PurchaseID)
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid purchase_id"))
		return
	}

	result, err := h.store.Return(r.Context(), domain.ReturnParams{
		CustomerID: customerID,
		PurchaseID: purchaseID,
	})
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "return complete",
		"return":  result.Return,
		"refund":  result.Refund.StringFixed(2),
		"balance": result.Customer.Balance.StringFixed(2),
	})
}
