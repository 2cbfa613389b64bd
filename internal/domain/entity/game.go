package entity

import "time"

// Game is a single catalog entry. Records ingested from the external catalog
// keep their upstream ID; records created through the API get a generated one.
type Game struct {
	ID              string    // Catalog-wide unique ID (upstream numeric ID or generated UUID).
	Name            string    // Title of the game.
	Released        *string   // Release date in YYYY-MM-DD format, nil when unreleased.
	BackgroundImage string    // URL of the cover image.
	Rating          float64   // Average rating.
	RatingsCount    int       // Number of ratings behind the average.
	Platforms       []string  // Uppercased platform names.
	Genres          []string  // Uppercased genre names.
	CreatedAt       time.Time // Timestamp of when this record entered the catalog.
	UpdatedAt       time.Time // Timestamp of the last modification.
}
