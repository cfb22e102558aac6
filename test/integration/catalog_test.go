//go:build integration

package integration

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gamevault/platform/test/integration/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gameListing struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Genre         string `json:"genre"`
	Price         string `json:"price"`
	PublisherName string `json:"publisher_name"`
}

type gamesPage struct {
	Games []gameListing `json:"games"`
}

func TestCatalog_ListGames(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.GET("/catalog/games")
	testutil.AssertStatus(t, resp, http.StatusOK)

	var page gamesPage
	testutil.DecodeJSON(t, resp, &page)
	assert.Len(t, page.Games, 25)

	names := make(map[string]string)
	for _, g := range page.Games {
		names[g.Name] = g.PublisherName
	}
	assert.Equal(t, "Sony", names["Bloodborne"])
	assert.Equal(t, "Nintendo", names["Splatoon 2"])
	assert.Equal(t, "Ubisoft", names["Assassin's Creed"])
}

func TestCatalog_GetGameByName(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.GET("/catalog/games/" + url.PathEscape("Bloodborne"))
	testutil.AssertStatus(t, resp, http.StatusOK)

	var game struct {
		Name  string `json:"name"`
		Genre string `json:"genre"`
		Price string `json:"price"`
	}
	testutil.DecodeJSON(t, resp, &game)
	assert.Equal(t, "Bloodborne", game.Name)
	assert.Equal(t, "action role-playing", game.Genre)
	assert.Equal(t, "30", game.Price)
}

func TestCatalog_GetGameNotFound(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.GET("/catalog/games/" + url.PathEscape("Half-Life 3"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalog_ListPublishers(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.GET("/catalog/publishers")
	testutil.AssertStatus(t, resp, http.StatusOK)

	var page struct {
		Publishers []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"publishers"`
	}
	testutil.DecodeJSON(t, resp, &page)
	require.Len(t, page.Publishers, 5)
}

func TestCatalog_PublisherGames(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.GET("/catalog/publishers")
	var page struct {
		Publishers []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"publishers"`
	}
	testutil.DecodeJSON(t, resp, &page)

	var nintendoID string
	for _, p := range page.Publishers {
		if p.Name == "Nintendo" {
			nintendoID = p.ID
		}
	}
	require.NotEmpty(t, nintendoID)

	resp = env.GET("/catalog/publishers/" + nintendoID + "/games")
	testutil.AssertStatus(t, resp, http.StatusOK)

	var games gamesPage
	testutil.DecodeJSON(t, resp, &games)
	assert.Len(t, games.Games, 5)
	for _, g := range games.Games {
		assert.Equal(t, "Nintendo", g.PublisherName)
	}
}

func TestCatalog_PublisherGamesBadID(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.GET("/catalog/publishers/not-a-uuid/games")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCatalog_ListPlatforms(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.GET("/catalog/platforms")
	testutil.AssertStatus(t, resp, http.StatusOK)

	var page struct {
		Platforms []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"platforms"`
	}
	testutil.DecodeJSON(t, resp, &page)
	assert.Len(t, page.Platforms, 14)
}

// Platform listings come from the runs join, so a platform shows only the
// titles released for it.
func TestCatalog_PlatformGames(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.GET("/catalog/platforms")
	var page struct {
		Platforms []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"platforms"`
	}
	testutil.DecodeJSON(t, resp, &page)

	var switchID, dreamcastID string
	for _, p := range page.Platforms {
		switch p.Name {
		case "Nintendo Switch":
			switchID = p.ID
		case "Sega Dreamcast":
			dreamcastID = p.ID
		}
	}
	require.NotEmpty(t, switchID)
	require.NotEmpty(t, dreamcastID)

	resp = env.GET("/catalog/platforms/" + switchID + "/games")
	var switchGames gamesPage
	testutil.DecodeJSON(t, resp, &switchGames)
	assert.Len(t, switchGames.Games, 6)

	resp = env.GET("/catalog/platforms/" + dreamcastID + "/games")
	var dcGames gamesPage
	testutil.DecodeJSON(t, resp, &dcGames)
	require.Len(t, dcGames.Games, 1)
	assert.Equal(t, "Tony Hawk's Pro Skater", dcGames.Games[0].Name)
}

func TestCatalog_ListGenres(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.GET("/catalog/genres")
	testutil.AssertStatus(t, resp, http.StatusOK)

	var page struct {
		Genres []string `json:"genres"`
	}
	testutil.DecodeJSON(t, resp, &page)
	assert.Contains(t, page.Genres, "action-adventure")
	assert.Contains(t, page.Genres, "racing")
	assert.Contains(t, page.Genres, "social simulation")
}

func TestCatalog_GenreGames(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.GET("/catalog/genres/" + url.PathEscape("racing") + "/games")
	testutil.AssertStatus(t, resp, http.StatusOK)

	var page gamesPage
	testutil.DecodeJSON(t, resp, &page)
	require.Len(t, page.Games, 1)
	assert.Equal(t, "Need for Speed", page.Games[0].Name)
}

func TestCatalog_GenreGamesEmpty(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.GET("/catalog/genres/" + url.PathEscape("visual novel") + "/games")
	testutil.AssertStatus(t, resp, http.StatusOK)

	var page gamesPage
	testutil.DecodeJSON(t, resp, &page)
	assert.Empty(t, page.Games)
}

func TestHealth(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.GET("/health")
	testutil.AssertStatus(t, resp, http.StatusOK)
}
