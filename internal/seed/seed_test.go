package seed

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureCounts(t *testing.T) {
	assert.Len(t, publishers, 5)
	assert.Len(t, platforms, 14)
	assert.Len(t, games, 25)
	assert.Len(t, runs, 58)
}

func TestFixtureReferentialIntegrity(t *testing.T) {
	publisherNames := make(map[string]bool)
	for _, name := range publishers {
		publisherNames[name] = true
	}
	platformNames := make(map[string]bool)
	for _, p := range platforms {
		platformNames[p.Name] = true
	}
	gameNames := make(map[string]bool)
	for _, g := range games {
		gameNames[g.Name] = true
	}

	for _, g := range games {
		assert.True(t, publisherNames[g.Publisher], "game %q references unknown publisher %q", g.Name, g.Publisher)
	}
	for _, r := range runs {
		assert.True(t, platformNames[r.Platform], "run references unknown platform %q", r.Platform)
		assert.True(t, gameNames[r.Game], "run references unknown game %q", r.Game)
	}
}

func TestFixtureNoDuplicates(t *testing.T) {
	seenGames := make(map[string]bool)
	for _, g := range games {
		require.False(t, seenGames[g.Name], "duplicate game %q", g.Name)
		seenGames[g.Name] = true
	}

	seenRuns := make(map[runFixture]bool)
	for _, r := range runs {
		require.False(t, seenRuns[r], "duplicate run %v", r)
		seenRuns[r] = true
	}
}

func TestFixturePricesParse(t *testing.T) {
	for _, g := range games {
		price := decimal.RequireFromString(g.Price)
		assert.True(t, price.IsPositive(), "game %q price must be positive", g.Name)
		// games column is numeric(4,2)
		assert.True(t, price.LessThan(decimal.NewFromInt(100)), "game %q price out of range", g.Name)
	}
	for _, p := range platforms {
		price := decimal.RequireFromString(p.Price)
		assert.True(t, price.IsPositive(), "platform %q price must be positive", p.Name)
	}
}

func TestFixtureDatesSet(t *testing.T) {
	for _, g := range games {
		assert.False(t, g.ReleaseDate.IsZero(), "game %q missing release date", g.Name)
		assert.NotEmpty(t, g.Genre, "game %q missing genre", g.Name)
		assert.NotEmpty(t, g.Description, "game %q missing description", g.Name)
	}
	for _, p := range platforms {
		assert.False(t, p.ReleaseDate.IsZero(), "platform %q missing release date", p.Name)
	}
}

func TestEveryPlatformGenerationRepresented(t *testing.T) {
	used := make(map[string]bool)
	for _, r := range runs {
		used[r.Platform] = true
	}
	// a handful of retro platforms carry exactly one title
	assert.True(t, used["Sega Dreamcast"])
	assert.True(t, used["Nintendo 3DS"])
	assert.True(t, used["Nintendo Switch"])
}
