package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Publisher is a catalogue publisher. One publisher has many games.
type Publisher struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Game is a catalogue entry. Seeded once and read-only for the
// transactional flows.
type Game struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Genre       string          `json:"genre"`
	ReleaseDate time.Time       `json:"release_date"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Poster      string          `json:"poster"`
	PublisherID uuid.UUID       `json:"publisher_id"`
}

// GameListing is a game joined with its publisher name, the shape the
// catalogue listings return.
type GameListing struct {
	Game
	PublisherName string `json:"publisher_name"`
}

// Platform is a console or device games run on.
type Platform struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	ReleaseDate time.Time       `json:"release_date"`
	Price       decimal.Decimal `json:"price"`
}

// Run records that a game is available on a platform. Composite key, no
// independent lifecycle.
type Run struct {
	PlatformID uuid.UUID `json:"platform_id"`
	GameID     uuid.UUID `json:"game_id"`
}
