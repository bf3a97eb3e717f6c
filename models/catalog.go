// models/catalog.go
package models

// Mantra is a devotional-audio document from the "mantras" collection.
// Records are closed: fields not modeled here are dropped at decode time.
type Mantra struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Category    string `bson:"category,omitempty" json:"category,omitempty"`
	Duration    string `bson:"duration,omitempty" json:"duration,omitempty"`
	AudioURL    string `bson:"audioUrl,omitempty" json:"audioUrl,omitempty"`
}

// ServiceItem is a marketplace document from the "service_item" collection
// (pooja samagri and similar goods).
type ServiceItem struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Price       string `bson:"price,omitempty" json:"price,omitempty"`
	Category    string `bson:"category,omitempty" json:"category,omitempty"`
	ImageURL    string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// Astrologer is a consultation provider from the "astrologers" collection.
type Astrologer struct {
	ID             string  `bson:"_id,omitempty" json:"id"`
	Name           string  `bson:"name" json:"name"`
	Specialization string  `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Rating         float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	Experience     string  `bson:"experience,omitempty" json:"experience,omitempty"`
	IsOnline       bool    `bson:"isOnline" json:"isOnline"`
	Price          string  `bson:"price,omitempty" json:"price,omitempty"`
}

// Search result type tags.
const (
	SearchResultMantra  = "mantra"
	SearchResultProduct = "product"
)

// SearchResult is one entry of a combined catalog search. Exactly one of
// Mantra/Item is set, matching Type.
type SearchResult struct {
	Type   string       `json:"type"`
	Mantra *Mantra      `json:"mantra,omitempty"`
	Item   *ServiceItem `json:"item,omitempty"`
}
