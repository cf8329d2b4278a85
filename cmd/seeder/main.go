package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/storage/jsonfile"
)

var artists = []core.Provider{
	{
		Name: "Luna Grace", Category: "Singer", City: "Chicago", Location: "Chicago, IL",
		Skills: []string{"jazz", "soul", "acoustic"}, PriceMin: 900, PriceMax: 2500,
		Rating: 4.9, Reviews: 127, EventTypes: []string{"wedding", "gala", "corporate"},
		Bio:   "Award-winning jazz vocalist with a decade of live performance experience.",
		Badge: "Top Rated", Avatar: "https://i.pravatar.cc/150?img=41",
	},
	{
		Name: "DJ Nova", Category: "DJ", City: "Austin", Location: "Austin, TX",
		Skills: []string{"house", "edm", "open format"}, PriceMin: 600, PriceMax: 1800,
		Rating: 4.7, Reviews: 89, EventTypes: []string{"party", "corporate", "festival"},
		Bio:   "High-energy open-format DJ who keeps every dance floor packed.",
		Badge: "Crowd Favorite", Avatar: "https://i.pravatar.cc/150?img=42",
	},
	{
		Name: "The Midnight Collective", Category: "Band", City: "Nashville", Location: "Nashville, TN",
		Skills: []string{"rock", "covers", "originals"}, PriceMin: 1500, PriceMax: 4000,
		Rating: 4.8, Reviews: 64, EventTypes: []string{"wedding", "festival", "concert"},
		Bio:   "Five-piece cover band spanning six decades of rock and pop.",
		Badge: "Top Rated", Avatar: "https://i.pravatar.cc/150?img=43",
	},
	{
		Name: "Marco Delgado", Category: "Magician", City: "Miami", Location: "Miami, FL",
		Skills: []string{"close-up magic", "stage illusions"}, PriceMin: 400, PriceMax: 1200,
		Rating: 4.6, Reviews: 51, EventTypes: []string{"birthday", "corporate", "party"},
		Bio:   "Close-up magician blending sleight of hand with stand-up comedy.",
		Avatar: "https://i.pravatar.cc/150?img=44",
	},
	{
		Name: "Priya Dance Troupe", Category: "Dancer", City: "San Francisco", Location: "San Francisco, CA",
		Skills: []string{"bollywood", "contemporary", "choreography"}, PriceMin: 800, PriceMax: 2200,
		Rating: 4.9, Reviews: 73, EventTypes: []string{"wedding", "festival", "gala"},
		Bio:   "Vibrant dance ensemble fusing Bollywood and contemporary styles.",
		Badge: "Top Rated", Avatar: "https://i.pravatar.cc/150?img=45",
	},
	{
		Name: "Sam Okafor", Category: "Comedian", City: "New York", Location: "New York, NY",
		Skills: []string{"stand-up", "improv", "emcee"}, PriceMin: 500, PriceMax: 1500,
		Rating: 4.5, Reviews: 38, EventTypes: []string{"corporate", "party", "gala"},
		Bio:   "Clean corporate comedian and event host with improv roots.",
		Avatar: "https://i.pravatar.cc/150?img=46",
	},
	{
		Name: "Velvet Strings Quartet", Category: "Band", City: "Boston", Location: "Boston, MA",
		Skills: []string{"classical", "string quartet", "modern covers"}, PriceMin: 1000, PriceMax: 2800,
		Rating: 4.8, Reviews: 92, EventTypes: []string{"wedding", "gala", "corporate"},
		Bio:   "Elegant string quartet performing classical works and modern arrangements.",
		Badge: "Top Rated", Avatar: "https://i.pravatar.cc/150?img=47",
	},
	{
		Name: "DJ Kaya", Category: "DJ", City: "Los Angeles", Location: "Los Angeles, CA",
		Skills: []string{"hip hop", "r&b", "latin"}, PriceMin: 700, PriceMax: 2000,
		Rating: 4.4, Reviews: 45, EventTypes: []string{"party", "birthday", "wedding"},
		Bio:   "Versatile club DJ spinning hip hop, R&B, and Latin sets.",
		Avatar: "https://i.pravatar.cc/150?img=48",
	},
	{
		Name: "Elena Vasquez", Category: "Singer", City: "Austin", Location: "Austin, TX",
		Skills: []string{"pop", "latin", "bilingual sets"}, PriceMin: 650, PriceMax: 1700,
		Rating: 4.7, Reviews: 56, EventTypes: []string{"wedding", "party", "festival"},
		Bio:   "Bilingual pop vocalist performing in English and Spanish.",
		Badge: "Rising Star", Avatar: "https://i.pravatar.cc/150?img=49",
	},
	{
		Name: "Atlas Fire Arts", Category: "Performer", City: "Portland", Location: "Portland, OR",
		Skills: []string{"fire dancing", "circus arts", "stilt walking"}, PriceMin: 900, PriceMax: 2600,
		Rating: 4.6, Reviews: 29, EventTypes: []string{"festival", "concert", "party"},
		Bio:   "Spectacle troupe bringing fire dancing and circus arts to outdoor events.",
		Avatar: "https://i.pravatar.cc/150?img=50",
	},
	{
		Name: "Grace Kim", Category: "Photographer", City: "Chicago", Location: "Chicago, IL",
		Skills: []string{"event photography", "portraits", "photo booth"}, PriceMin: 550, PriceMax: 1600,
		Rating: 4.9, Reviews: 143, EventTypes: []string{"wedding", "corporate", "birthday"},
		Bio:   "Candid event photographer with a documentary style.",
		Badge: "Top Rated", Avatar: "https://i.pravatar.cc/150?img=51",
	},
	{
		Name: "Brass & Bourbon", Category: "Band", City: "New Orleans", Location: "New Orleans, LA",
		Skills: []string{"brass band", "second line", "funk"}, PriceMin: 1200, PriceMax: 3200,
		Rating: 4.8, Reviews: 77, EventTypes: []string{"wedding", "festival", "party"},
		Bio:   "New Orleans brass band famous for second line parades.",
		Badge: "Crowd Favorite", Avatar: "https://i.pravatar.cc/150?img=52",
	},
}

var (
	outPath = flag.String("out", "data/artists.json", "catalog file to write")
	srcPath = flag.String("src", "", "optional JSON file of providers to seed from")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// providersFromFile loads a provider slice from a JSON file.
func providersFromFile(filename string) ([]core.Provider, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var providers []core.Provider
	if err := json.Unmarshal(data, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func main() {
	source := artists
	if *srcPath != "" {
		loaded, err := providersFromFile(*srcPath)
		if err != nil {
			panic(err)
		}
		source = loaded
	}

	catalog, err := jsonfile.NewCatalog(*outPath)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	for _, p := range source {
		added, err := catalog.Append(ctx, p)
		if err != nil {
			panic(err)
		}
		slog.Info("seeded provider", "id", added.Id, "name", added.Name)
	}
}
