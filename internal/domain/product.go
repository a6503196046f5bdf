package domain

// ProductRecord represents one coffee product extracted from a catalog page.
// A record is only emitted when both a name and a link were found; every
// other field degrades to an empty or placeholder value instead of failing
// the record.
type ProductRecord struct {
	Name        string   `json:"name"`
	Link        string   `json:"link"` // absolute URL to the product page
	Price       string   `json:"price"`
	Description string   `json:"description"`
	FlavorNotes []string `json:"flavorNotes"` // raw casing as scraped; lowercased at match time
}

// CoffeeDrink represents one drink from the public coffee-data API.
type CoffeeDrink struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients,omitempty"`
	Image       string   `json:"image,omitempty"`
}
