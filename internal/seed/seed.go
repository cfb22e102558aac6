// Package seed loads the initial catalogue into an empty database. The load
// is idempotent: if any games already exist it does nothing.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gamevault/platform/internal/domain"
	"github.com/gamevault/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type gameFixture struct {
	Name        string
	Genre       string
	ReleaseDate time.Time
	Price       string
	Description string
	Poster      string
	Publisher   string
}

type platformFixture struct {
	Name        string
	ReleaseDate time.Time
	Price       string
}

// runFixture links a game to a platform by name. Names are resolved to IDs
// at load time.
type runFixture struct {
	Platform string
	Game     string
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Load inserts the catalogue fixtures within a single transaction. Returns
// the number of games inserted, zero when the catalogue is already seeded.
func Load(ctx context.Context, pool *pgxpool.Pool, catalog repository.CatalogRepository, logger *slog.Logger) (int, error) {
	count, err := catalog.CountGames(ctx, pool)
	if err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	if count > 0 {
		logger.Info("catalogue already seeded", "games", count)
		return 0, nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	publisherIDs := make(map[string]uuid.UUID, len(publishers))
	for _, name := range publishers {
		p := &domain.Publisher{ID: uuid.New(), Name: name}
		if err := catalog.InsertPublisher(ctx, tx, p); err != nil {
			return 0, fmt.Errorf("insert publisher %q: %w", name, err)
		}
		publisherIDs[name] = p.ID
	}

	platformIDs := make(map[string]uuid.UUID, len(platforms))
	for _, f := range platforms {
		p := &domain.Platform{
			ID:          uuid.New(),
			Name:        f.Name,
			ReleaseDate: f.ReleaseDate,
			Price:       decimal.RequireFromString(f.Price),
		}
		if err := catalog.InsertPlatform(ctx, tx, p); err != nil {
			return 0, fmt.Errorf("insert platform %q: %w", f.Name, err)
		}
		platformIDs[f.Name] = p.ID
	}

	gameIDs := make(map[string]uuid.UUID, len(games))
	for _, f := range games {
		publisherID, ok := publisherIDs[f.Publisher]
		if !ok {
			return 0, fmt.Errorf("game %q references unknown publisher %q", f.Name, f.Publisher)
		}
		g := &domain.Game{
			ID:          uuid.New(),
			Name:        f.Name,
			Genre:       f.Genre,
			ReleaseDate: f.ReleaseDate,
			Price:       decimal.RequireFromString(f.Price),
			Description: f.Description,
			Poster:      f.Poster,
			PublisherID: publisherID,
		}
		if err := catalog.InsertGame(ctx, tx, g); err != nil {
			return 0, fmt.Errorf("insert game %q: %w", f.Name, err)
		}
		gameIDs[f.Name] = g.ID
	}

	for _, f := range runs {
		platformID, ok := platformIDs[f.Platform]
		if !ok {
			return 0, fmt.Errorf("run references unknown platform %q", f.Platform)
		}
		gameID, ok := gameIDs[f.Game]
		if !ok {
			return 0, fmt.Errorf("run references unknown game %q", f.Game)
		}
		if err := catalog.InsertRun(ctx, tx, domain.Run{PlatformID: platformID, GameID: gameID}); err != nil {
			return 0, fmt.Errorf("insert run %q/%q: %w", f.Platform, f.Game, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	logger.Info("catalogue seeded",
		"publishers", len(publishers),
		"platforms", len(platforms),
		"games", len(games),
		"runs", len(runs),
	)
	return len(games), nil
}

var publishers = []string{
	"Ubisoft",
	"EA",
	"Activision",
	"Sony",
	"Nintendo",
}

var platforms = []platformFixture{
	{Name: "Playstation 2", ReleaseDate: date(2000, 10, 26), Price: "30.00"},
	{Name: "Xbox", ReleaseDate: date(2001, 11, 15), Price: "30.00"},
	{Name: "Nintendo Gamecube", ReleaseDate: date(2001, 11, 18), Price: "60.00"},
	{Name: "Sega Dreamcast", ReleaseDate: date(1999, 9, 9), Price: "50.00"},
	{Name: "Playstation", ReleaseDate: date(1995, 9, 9), Price: "50.00"},
	{Name: "Nintendo 64", ReleaseDate: date(1996, 9, 26), Price: "60.00"},
	{Name: "Xbox 360", ReleaseDate: date(2005, 11, 22), Price: "70.00"},
	{Name: "Playstation 3", ReleaseDate: date(2006, 11, 17), Price: "80.00"},
	{Name: "Nintendo Wii", ReleaseDate: date(2006, 11, 19), Price: "50.00"},
	{Name: "Nintendo Wii U", ReleaseDate: date(2012, 11, 18), Price: "40.00"},
	{Name: "Xbox One", ReleaseDate: date(2013, 11, 22), Price: "200.00"},
	{Name: "Playstation 4", ReleaseDate: date(2015, 11, 15), Price: "250.00"},
	{Name: "Nintendo Switch", ReleaseDate: date(2017, 3, 3), Price: "300.00"},
	{Name: "Nintendo 3DS", ReleaseDate: date(2011, 3, 27), Price: "70.00"},
}

var games = []gameFixture{
	{
		Name:        "Assassin's Creed",
		Genre:       "action-adventure",
		ReleaseDate: date(2007, 11, 13),
		Price:       "10.00",
		Description: "Become a merciless assassin during the Third Crusade and shape the events of a pivotal moment in history.",
		Poster:      "https://static.wikia.nocookie.net/assassinscreed/images/6/6a/Accover.jpg",
		Publisher:   "Ubisoft",
	},
	{
		Name:        "Assassin's Creed II",
		Genre:       "action-adventure",
		ReleaseDate: date(2009, 11, 17),
		Price:       "15.00",
		Description: "A gripping story of family intrigue and vengeance set against the beautiful yet brutal backdrop of Renaissance Italy.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/7/77/Assassins_Creed_2_Box_Art.JPG",
		Publisher:   "Ubisoft",
	},
	{
		Name:        "Assassin's Creed III",
		Genre:       "action-adventure",
		ReleaseDate: date(2012, 10, 30),
		Price:       "25.00",
		Description: "Relive the American Revolution with remastered graphics and gameplay, including all solo DLC and Assassin's Creed Liberation.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/2/29/Assassin%27s_Creed_III_Game_Cover.jpg",
		Publisher:   "Ubisoft",
	},
	{
		Name:        "Assassin's Creed Brotherhood",
		Genre:       "action-adventure",
		ReleaseDate: date(2010, 11, 16),
		Price:       "15.00",
		Description: "Ezio has avenged his family and planned a quiet retirement, but tragedy pulls him back to Rome to free the city from corruption and a Templar conspiracy.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/2/2a/Assassins_Creed_brotherhood_cover.jpg",
		Publisher:   "Ubisoft",
	},
	{
		Name:        "Assassin's Creed Revelations",
		Genre:       "action-adventure",
		ReleaseDate: date(2011, 11, 15),
		Price:       "20.00",
		Description: "The celebrated master assassin Ezio sets out on his final and most dangerous journey east, walking in the footsteps of Altair in search of the truth.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/d/d9/Assassins_Creed_Revelations_Cover.jpg",
		Publisher:   "Ubisoft",
	},
	{
		Name:        "Mass Effect 2",
		Genre:       "action role-playing",
		ReleaseDate: date(2010, 1, 26),
		Price:       "10.00",
		Description: "Two years after Commander Shepard repelled the Reaper invasion, humanity faces a new enemy in the dark second chapter of the epic trilogy.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/0/05/MassEffect2_cover.PNG",
		Publisher:   "EA",
	},
	{
		Name:        "Need for Speed",
		Genre:       "racing",
		ReleaseDate: date(2015, 11, 3),
		Price:       "25.00",
		Description: "The legendary racing series reboots with fresh paint, new interiors and the smell of gasoline, rebuilt from the ground up by Ghost Games.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/a/a9/Need_for_Speed_2015.jpg",
		Publisher:   "EA",
	},
	{
		Name:        "Anthem",
		Genre:       "action role-playing",
		ReleaseDate: date(2019, 2, 22),
		Price:       "60.00",
		Description: "Pilot a javelin exosuit through a world where raw energy, advanced technology and untamed wilderness collide, and face enemies bent on seizing the power of creation.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/4/49/Cover_Art_of_Anthem.jpg",
		Publisher:   "EA",
	},
	{
		Name:        "Titanfall",
		Genre:       "first-person shooter",
		ReleaseDate: date(2014, 3, 11),
		Price:       "20.00",
		Description: "A first-person action game blending fast shooter combat with giant piloted titans, from Respawn Entertainment and Bluepoint Games.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/8/84/Titanfall_box_art.jpg",
		Publisher:   "EA",
	},
	{
		Name:        "Battlefield 4",
		Genre:       "first-person shooter",
		ReleaseDate: date(2013, 10, 29),
		Price:       "15.00",
		Description: "Play as Sergeant Daniel Recker of squad Tombstone, sent to Baku to extract intelligence from a fugitive general and fighting back against overwhelming forces.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/7/75/Battlefield_4_cover_art.jpg",
		Publisher:   "EA",
	},
	{
		Name:        "Call of Duty World at War",
		Genre:       "first-person shooter",
		ReleaseDate: date(2008, 11, 11),
		Price:       "5.00",
		Description: "A striking first-person shooter set in World War II, with fifteen varied missions, alternating protagonists and tight controls.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/1/19/Call_of_Duty_World_at_War_cover.png",
		Publisher:   "Activision",
	},
	{
		Name:        "Destiny",
		Genre:       "first-person shooter",
		ReleaseDate: date(2014, 9, 9),
		Price:       "20.00",
		Description: "An action MMO set in a single evolving world that you and your friends can join anytime, anywhere.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/0/06/Destiny_XBO.jpg",
		Publisher:   "Activision",
	},
	{
		Name:        "Call of Duty Black Ops 4",
		Genre:       "first-person shooter",
		ReleaseDate: date(2018, 10, 12),
		Price:       "50.00",
		Description: "Gritty, fast multiplayer combat, three Zombies adventures, and Blackout, where the Black Ops universe comes alive in a massive battle royale.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/1/1c/Call_of_Duty_Black_Ops_4_official_box_art.jpg",
		Publisher:   "Activision",
	},
	{
		Name:        "Crash Bandicoot",
		Genre:       "platform",
		ReleaseDate: date(2017, 6, 30),
		Price:       "40.00",
		Description: "Everyone's favourite marsupial is back, faster and more charming than ever, with the N. Sane Trilogy remastering all three classic adventures.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/d/de/Crash_Bandicoot_N._Sane_Trilogy_cover_art.jpg",
		Publisher:   "Activision",
	},
	{
		Name:        "Tony Hawk's Pro Skater",
		Genre:       "sports",
		ReleaseDate: date(1999, 7, 31),
		Price:       "2.00",
		Description: "Drop back in to the most iconic skateboarding game ever made. Play as Tony Hawk and the original pro roster, land huge combos with the classic control scheme.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/5/58/TonyHawksProSkaterPlayStation1.jpg",
		Publisher:   "Activision",
	},
	{
		Name:        "Bloodborne",
		Genre:       "action role-playing",
		ReleaseDate: date(2015, 3, 24),
		Price:       "30.00",
		Description: "A lone traveller. A cursed city. A deadly secret that destroys all it touches. Face your fears in the decaying streets of Yharnam and survive until dawn.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/6/68/Bloodborne_Cover_Wallpaper.jpg",
		Publisher:   "Sony",
	},
	{
		Name:        "God of War",
		Genre:       "action-adventure",
		ReleaseDate: date(2018, 4, 20),
		Price:       "60.00",
		Description: "His vengeance against the gods of Olympus behind him, Kratos now lives in the realm of Norse gods and monsters, where he must fight to survive and teach his son to do the same.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/a/a7/God_of_War_4_cover.jpg",
		Publisher:   "Sony",
	},
	{
		Name:        "The Last of Us",
		Genre:       "action-adventure",
		ReleaseDate: date(2014, 7, 29),
		Price:       "20.00",
		Description: "Winner of over 200 Game of the Year awards. Civilization has fallen, and weary survivor Joel is hired to smuggle fourteen-year-old Ellie out of a military quarantine zone.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/4/46/Video_Game_Cover_-_The_Last_of_Us.jpg",
		Publisher:   "Sony",
	},
	{
		Name:        "Ratchet and Clank",
		Genre:       "platform",
		ReleaseDate: date(2016, 4, 12),
		Price:       "40.00",
		Description: "Whether a longtime fan or new to the series, join Ratchet and Clank on their first intergalactic adventure, fully reimagined with film-quality visuals.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/3/37/Ratchet_and_Clank_cover.jpg",
		Publisher:   "Sony",
	},
	{
		Name:        "Infamous Second Son",
		Genre:       "action-adventure",
		ReleaseDate: date(2014, 3, 21),
		Price:       "20.00",
		Description: "Wield the superhuman powers of Delsin Rowe and make choices that decide the fate of the city and everyone around you.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/3/34/Infamous_second_son_boxart.jpg",
		Publisher:   "Sony",
	},
	{
		Name:        "The Legend of Zelda: Breath of the Wild",
		Genre:       "action-adventure",
		ReleaseDate: date(2017, 3, 3),
		Price:       "50.00",
		Description: "After a hundred-year slumber, Link wakes with no memory of the kingdom he once knew. Explore a vast, dangerous world and recover what was lost before Hyrule is gone forever.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/c/c6/The_Legend_of_Zelda_Breath_of_the_Wild.jpg",
		Publisher:   "Nintendo",
	},
	{
		Name:        "Super Mario Odyssey",
		Genre:       "platform",
		ReleaseDate: date(2017, 10, 27),
		Price:       "50.00",
		Description: "Mario sets off on a globe-trotting journey aboard the airship Odyssey, collecting Power Moons to fuel the voyage to the next kingdom.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/8/8d/Super_Mario_Odyssey.jpg",
		Publisher:   "Nintendo",
	},
	{
		Name:        "Super Smash Bros. Ultimate",
		Genre:       "fighting",
		ReleaseDate: date(2018, 12, 7),
		Price:       "60.00",
		Description: "Knock rivals off the stage in this thrilling action game, with bigger battles, new items, new attacks and new defensive options, at home or on the go.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/5/50/Super_Smash_Bros._Ultimate.jpg",
		Publisher:   "Nintendo",
	},
	{
		Name:        "Splatoon 2",
		Genre:       "third-person shooter",
		ReleaseDate: date(2017, 7, 21),
		Price:       "50.00",
		Description: "Claim territory by covering it in your team's ink in tense four-on-four battles. Work together and switch between inkling and squid to take the turf.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/4/49/Splatoon_2.jpg",
		Publisher:   "Nintendo",
	},
	{
		Name:        "Animal Crossing: New Leaf",
		Genre:       "social simulation",
		ReleaseDate: date(2012, 11, 8),
		Price:       "15.00",
		Description: "Making friends in a new town is hard, and harder still when you are the mayor. Build the town of your dreams in Animal Crossing: New Leaf for Nintendo 3DS.",
		Poster:      "https://upload.wikimedia.org/wikipedia/en/0/04/AnimalCrossingNewLeafNABoxart.jpg",
		Publisher:   "Nintendo",
	},
}

var runs = []runFixture{
	{Platform: "Xbox 360", Game: "Assassin's Creed"},
	{Platform: "Playstation 3", Game: "Assassin's Creed"},
	{Platform: "Xbox 360", Game: "Assassin's Creed II"},
	{Platform: "Playstation 3", Game: "Assassin's Creed II"},
	{Platform: "Xbox One", Game: "Assassin's Creed II"},
	{Platform: "Playstation 4", Game: "Assassin's Creed II"},
	{Platform: "Xbox 360", Game: "Assassin's Creed III"},
	{Platform: "Playstation 3", Game: "Assassin's Creed III"},
	{Platform: "Xbox One", Game: "Assassin's Creed III"},
	{Platform: "Playstation 4", Game: "Assassin's Creed III"},
	{Platform: "Nintendo Wii U", Game: "Assassin's Creed III"},
	{Platform: "Nintendo Switch", Game: "Assassin's Creed III"},
	{Platform: "Xbox 360", Game: "Assassin's Creed Brotherhood"},
	{Platform: "Playstation 3", Game: "Assassin's Creed Brotherhood"},
	{Platform: "Xbox One", Game: "Assassin's Creed Brotherhood"},
	{Platform: "Playstation 4", Game: "Assassin's Creed Brotherhood"},
	{Platform: "Xbox 360", Game: "Assassin's Creed Revelations"},
	{Platform: "Playstation 3", Game: "Assassin's Creed Revelations"},
	{Platform: "Xbox One", Game: "Assassin's Creed Revelations"},
	{Platform: "Playstation 4", Game: "Assassin's Creed Revelations"},
	{Platform: "Xbox 360", Game: "Mass Effect 2"},
	{Platform: "Playstation 3", Game: "Mass Effect 2"},
	{Platform: "Xbox One", Game: "Need for Speed"},
	{Platform: "Playstation 4", Game: "Need for Speed"},
	{Platform: "Xbox One", Game: "Anthem"},
	{Platform: "Playstation 4", Game: "Anthem"},
	{Platform: "Xbox One", Game: "Titanfall"},
	{Platform: "Xbox 360", Game: "Titanfall"},
	{Platform: "Xbox 360", Game: "Battlefield 4"},
	{Platform: "Playstation 3", Game: "Battlefield 4"},
	{Platform: "Xbox One", Game: "Battlefield 4"},
	{Platform: "Playstation 4", Game: "Battlefield 4"},
	{Platform: "Xbox 360", Game: "Call of Duty World at War"},
	{Platform: "Playstation 3", Game: "Call of Duty World at War"},
	{Platform: "Nintendo Wii", Game: "Call of Duty World at War"},
	{Platform: "Xbox 360", Game: "Destiny"},
	{Platform: "Playstation 3", Game: "Destiny"},
	{Platform: "Xbox One", Game: "Destiny"},
	{Platform: "Playstation 4", Game: "Destiny"},
	{Platform: "Xbox One", Game: "Call of Duty Black Ops 4"},
	{Platform: "Playstation 4", Game: "Call of Duty Black Ops 4"},
	{Platform: "Xbox One", Game: "Crash Bandicoot"},
	{Platform: "Playstation 4", Game: "Crash Bandicoot"},
	{Platform: "Nintendo Switch", Game: "Crash Bandicoot"},
	{Platform: "Sega Dreamcast", Game: "Tony Hawk's Pro Skater"},
	{Platform: "Playstation", Game: "Tony Hawk's Pro Skater"},
	{Platform: "Nintendo 64", Game: "Tony Hawk's Pro Skater"},
	{Platform: "Playstation 4", Game: "Bloodborne"},
	{Platform: "Playstation 4", Game: "God of War"},
	{Platform: "Playstation 3", Game: "The Last of Us"},
	{Platform: "Playstation 3", Game: "Ratchet and Clank"},
	{Platform: "Playstation 3", Game: "Infamous Second Son"},
	{Platform: "Nintendo Switch", Game: "The Legend of Zelda: Breath of the Wild"},
	{Platform: "Nintendo Wii U", Game: "The Legend of Zelda: Breath of the Wild"},
	{Platform: "Nintendo Switch", Game: "Super Mario Odyssey"},
	{Platform: "Nintendo Switch", Game: "Super Smash Bros. Ultimate"},
	{Platform: "Nintendo Switch", Game: "Splatoon 2"},
	{Platform: "Nintendo 3DS", Game: "Animal Crossing: New Leaf"},
}
