package handler

import (
	"net/http"

	"github.com/gamevault/platform/internal/domain"
	"github.com/gamevault/platform/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CatalogHandler serves the read-only catalogue listings.
type CatalogHandler struct {
	catalog repository.CatalogRepository
	db      repository.DBTX
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog repository.CatalogRepository, db repository.DBTX) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, db: db}
}

// gamesResponse wraps a game listing.
type gamesResponse struct {
	Games []domain.GameListing `json:"games"`
}

// ListGames handles GET /catalog/games.
func (h *CatalogHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.catalog.ListGames(r.Context(), h.db)
	if err != nil {
		RespondError(w, domain.ErrInternal("list games", err))
		return
	}
	RespondJSON(w, http.StatusOK, gamesResponse{Games: games})
}

// GetGame handles GET /catalog/games/{name}.
func (h *CatalogHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	game, err := h.catalog.FindGameByName(r.Context(), h.db, name)
	if err != nil {
		RespondError(w, domain.ErrInternal("find game", err))
		return
	}
	if game == nil {
		RespondError(w, domain.ErrNotFound("game", name))
		return
	}
	RespondJSON(w, http.StatusOK, game)
}

// ListPublishers handles GET /catalog/publishers.
func (h *CatalogHandler) ListPublishers(w http.ResponseWriter, r *http.Request) {
	publishers, err := h.catalog.ListPublishers(r.Context(), h.db)
	if err != nil {
		RespondError(w, domain.ErrInternal("list publishers", err))
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"publishers": publishers})
}

// ListGamesByPublisher handles GET /catalog/publishers/{id}/games.
func (h *CatalogHandler) ListGamesByPublisher(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid publisher id"))
		return
	}
	games, err := h.catalog.ListGamesByPublisher(r.Context(), h.db, id)
	if err != nil {
		RespondError(w, domain.ErrInternal("list games by publisher", err))
		return
	}
	RespondJSON(w, http.StatusOK, gamesResponse{Games: games})
}

// ListPlatforms handles GET /catalog/platforms.
func (h *CatalogHandler) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := h.catalog.ListPlatforms(r.Context(), h.db)
	if err != nil {
		RespondError(w, domain.ErrInternal("list platforms", err))
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"platforms": platforms})
}

// ListGamesByPlatform handles GET /catalog/platforms/{id}/games. The listing
// is the distinct set of games joined through the runs association.
func (h *CatalogHandler) ListGamesByPlatform(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid platform id"))
		return
	}
	games, err := h.catalog.ListGamesByPlatform(r.Context(), h.db, id)
	if err != nil {
		RespondError(w, domain.ErrInternal("list games by platform", err))
		return
	}
	RespondJSON(w, http.StatusOK, gamesResponse{Games: games})
}

// ListGenres handles GET /catalog/genres.
func (h *CatalogHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.catalog.ListGenres(r.Context(), h.db)
	if err != nil {
		RespondError(w, domain.ErrInternal("list genres", err))
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"genres": genres})
}

// ListGamesByGenre handles GET /catalog/genres/{genre}/games.
func (h *CatalogHandler) ListGamesByGenre(w http.ResponseWriter, r *http.Request) {
	genre := chi.URLParam(r, "genre")
	games, err := h.catalog.ListGamesByGenre(r.Context(), h.db, genre)
	if err != nil {
		RespondError(w, domain.ErrInternal("list games by genre", err))
		return
	}
	RespondJSON(w, http.StatusOK, gamesResponse{Games: games})
}
