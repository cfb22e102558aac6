package handler

import (
	"net/http"

	"github.com/gamevault/platform/internal/auth"
	"github.com/gamevault/platform/internal/domain"
	"github.com/gamevault/platform/internal/repository"
	"github.com/gamevault/platform/internal/service"
	"github.com/google/uuid"
)

// AccountHandler serves the authenticated customer's own account state.
type AccountHandler struct {
	customers repository.CustomerRepository
	purchases repository.PurchaseRepository
	returns   repository.ReturnRepository
	store     *service.StoreService
	db        repository.DBTX
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(
	customers repository.CustomerRepository,
	purchases repository.PurchaseRepository,
	returns repository.ReturnRepository,
	store *service.StoreService,
	db repository.DBTX,
) *AccountHandler {
	return &AccountHandler{
		customers: customers,
		purchases: purchases,
		returns:   returns,
		store:     store,
		db:        db,
	}
}

// customerIDFromContext resolves the authenticated customer's ID from the
// JWT subject placed in context by the auth middleware.
func customerIDFromContext(r *http.Request) (uuid.UUID, error) {
	sub := auth.SubjectFromContext(r.Context())
	if sub == "" {
		return uuid.Nil, domain.ErrUnauthorized("missing authentication")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized("invalid token subject")
	}
	return id, nil
}

// Me handles GET /account/me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	customer, err := h.customers.FindByID(r.Context(), h.db, customerID)
	if err != nil {
		RespondError(w, domain.ErrInternal("find customer", err))
		return
	}
	if customer == nil {
		RespondError(w, domain.ErrNotFound("customer", customerID.String()))
		return
	}
	RespondJSON(w, http.StatusOK, customer)
}

// Purchases handles GET /account/purchases.
func (h *AccountHandler) Purchases(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	purchases, err := h.purchases.ListByCustomer(r.Context(), h.db, customerID)
	if err != nil {
		RespondError(w, domain.ErrInternal("list purchases", err))
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"purchases": purchases})
}

// Returns handles GET /account/returns.
func (h *AccountHandler) Returns(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	returns, err := h.returns.ListByCustomer(r.Context(), h.db, customerID)
	if err != nil {
		RespondError(w, domain.ErrInternal("list returns", err))
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"returns": returns})
}

// TopUp handles POST /account/topup. The credited amount is fixed by server
// configuration, not supplied by the client.
func (h *AccountHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	customer, err := h.store.TopUp(r.Context(), domain.TopUpParams{CustomerID: customerID})
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "funds added",
		"customer": customer,
	})
}
