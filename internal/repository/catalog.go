package repository

import (
	"context"
	"fmt"

	"github.com/gamevault/platform/internal/domain"
	"github.com/gamevault/platform/internal/infra"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type catalogRepo struct{}

// NewCatalogRepository returns a pgx-backed CatalogRepository.
func NewCatalogRepository() CatalogRepository {
	return &catalogRepo{}
}

const gameListingSelect = `
	SELECT g.id, g.name, g.genre, g.release_date, g.price, g.description, g.poster, g.publisher_id, p.name
	FROM games g
	JOIN publishers p ON p.id = g.publisher_id`

func (r *catalogRepo) ListGames(ctx context.Context, db DBTX) ([]domain.GameListing, error) {
	rows, err := db.Query(ctx, gameListingSelect+`
		ORDER BY g.name`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()
	return collectGameListings(rows)
}

func (r *catalogRepo) FindGameByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Game, error) {
	row := db.QueryRow(ctx, `
		SELECT id, name, genre, release_date, price, description, poster, publisher_id
		FROM games WHERE id = $1`, id)
	return scanGame(row)
}

func (r *catalogRepo) FindGameByName(ctx context.Context, db DBTX, name string) (*domain.Game, error) {
	row := db.QueryRow(ctx, `
		SELECT id, name, genre, release_date, price, description, poster, publisher_id
		FROM games WHERE name = $1`, name)
	return scanGame(row)
}

func (r *catalogRepo) ListGamesByPublisher(ctx context.Context, db DBTX, publisherID uuid.UUID) ([]domain.GameListing, error) {
	rows, err := db.Query(ctx, gameListingSelect+`
		WHERE g.publisher_id = $1
		ORDER BY g.name`, publisherID)
	if err != nil {
		return nil, fmt.Errorf("query games by publisher: %w", err)
	}
	defer rows.Close()
	return collectGameListings(rows)
}

// ListGamesByPlatform returns the distinct set of games having a run entry
// with the given platform.
func (r *catalogRepo) ListGamesByPlatform(ctx context.Context, db DBTX, platformID uuid.UUID) ([]domain.GameListing, error) {
	rows, err := db.Query(ctx, `
		SELECT DISTINCT g.id, g.name, g.genre, g.release_date, g.price, g.description, g.poster, g.publisher_id, p.name
		FROM games g
		JOIN publishers p ON p.id = g.publisher_id
		JOIN runs r ON r.game_id = g.id
		WHERE r.platform_id = $1
		ORDER BY g.name`, platformID)
	if err != nil {
		return nil, fmt.Errorf("query games by platform: %w", err)
	}
	defer rows.Close()
	return collectGameListings(rows)
}

func (r *catalogRepo) ListGamesByGenre(ctx context.Context, db DBTX, genre string) ([]domain.GameListing, error) {
	rows, err := db.Query(ctx, gameListingSelect+`
		WHERE g.genre = $1
		ORDER BY g.name`, genre)
	if err != nil {
		return nil, fmt.Errorf("query games by genre: %w", err)
	}
	defer rows.Close()
	return collectGameListings(rows)
}

func (r *catalogRepo) ListGenres(ctx context.Context, db DBTX) ([]string, error) {
	rows, err := db.Query(ctx, `
		SELECT DISTINCT genre FROM games ORDER BY genre`)
	if err != nil {
		return nil, fmt.Errorf("query genres: %w", err)
	}
	defer rows.Close()

	var genres []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *catalogRepo) ListPublishers(ctx context.Context, db DBTX) ([]domain.Publisher, error) {
	rows, err := db.Query(ctx, `
		SELECT id, name FROM publishers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query publishers: %w", err)
	}
	defer rows.Close()

	var pubs []domain.Publisher
	for rows.Next() {
		var p domain.Publisher
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan publisher: %w", err)
		}
		pubs = append(pubs, p)
	}
	return pubs, rows.Err()
}

func (r *catalogRepo) ListPlatforms(ctx context.Context, db DBTX) ([]domain.Platform, error) {
	rows, err := db.Query(ctx, `
		SELECT id, name, release_date, price FROM platforms ORDER BY release_date`)
	if err != nil {
		return nil, fmt.Errorf("query platforms: %w", err)
	}
	defer rows.Close()

	var platforms []domain.Platform
	for rows.Next() {
		var p domain.Platform
		var priceNum pgtype.Numeric
		if err := rows.Scan(&p.ID, &p.Name, &p.ReleaseDate, &priceNum); err != nil {
			return nil, fmt.Errorf("scan platform: %w", err)
		}
		p.Price, err = infra.NumericToDecimal(priceNum)
		if err != nil {
			return nil, fmt.Errorf("convert platform price: %w", err)
		}
		platforms = append(platforms, p)
	}
	return platforms, rows.Err()
}

func (r *catalogRepo) CountGames(ctx context.Context, db DBTX) (int64, error) {
	var n int64
	if err := db.QueryRow(ctx, `SELECT count(*) FROM games`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return n, nil
}

func (r *catalogRepo) InsertPublisher(ctx context.Context, db DBTX, p *domain.Publisher) error {
	_, err := db.Exec(ctx, `
		INSERT INTO publishers (id, name) VALUES ($1, $2)`, p.ID, p.Name)
	if err != nil {
		return fmt.Errorf("insert publisher: %w", err)
	}
	return nil
}

func (r *catalogRepo) InsertGame(ctx context.Context, db DBTX, g *domain.Game) error {
	_, err := db.Exec(ctx, `
		INSERT INTO games (id, name, genre, release_date, price, description, poster, publisher_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		g.ID, g.Name, g.Genre, g.ReleaseDate, infra.DecimalToNumeric(g.Price),
		g.Description, g.Poster, g.PublisherID)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

func (r *catalogRepo) InsertPlatform(ctx context.Context, db DBTX, p *domain.Platform) error {
	_, err := db.Exec(ctx, `
		INSERT INTO platforms (id, name, release_date, price)
		VALUES ($1, $2, $3, $4)`,
		p.ID, p.Name, p.ReleaseDate, infra.DecimalToNumeric(p.Price))
	if err != nil {
		return fmt.Errorf("insert platform: %w", err)
	}
	return nil
}

func (r *catalogRepo) InsertRun(ctx context.Context, db DBTX, run domain.Run) error {
	_, err := db.Exec(ctx, `
		INSERT INTO runs (platform_id, game_id) VALUES ($1, $2)`,
		run.PlatformID, run.GameID)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	var g domain.Game
	var priceNum pgtype.Numeric
	err := row.Scan(&g.ID, &g.Name, &g.Genre, &g.ReleaseDate, &priceNum, &g.Description, &g.Poster, &g.PublisherID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan game: %w", err)
	}

	g.Price, err = infra.NumericToDecimal(priceNum)
	if err != nil {
		return nil, fmt.Errorf("convert price: %w", err)
	}
	return &g, nil
}

func collectGameListings(rows pgx.Rows) ([]domain.GameListing, error) {
	var listings []domain.GameListing
	for rows.Next() {
		var l domain.GameListing
		var priceNum pgtype.Numeric
		err := rows.Scan(&l.ID, &l.Name, &l.Genre, &l.ReleaseDate, &priceNum,
			&l.Description, &l.Poster, &l.PublisherID, &l.PublisherName)
		if err != nil {
			return nil, fmt.Errorf("scan game listing: %w", err)
		}
		l.Price, err = infra.NumericToDecimal(priceNum)
		if err != nil {
			return nil, fmt.Errorf("convert price: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
