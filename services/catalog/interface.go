package catalog

import (
	catalogRepo "poojaghar/database/repository/catalog"
	"poojaghar/models"
)

// Service exposes the home/browse surface: wholesale collection fetches and
// the combined text search.
type Service interface {
	// Mantras returns the devotional-audio items; a failed fetch degrades to
	// an empty list.
	Mantras() []models.Mantra
	// ServiceItems returns the marketplace items; a failed fetch degrades to
	// an empty list.
	ServiceItems() []models.ServiceItem
	// Astrologers returns the consultation providers; a failed fetch degrades
	// to an empty list.
	Astrologers() []models.Astrologer
	// Search runs the combined substring search across mantras and items.
	Search(query string) []models.SearchResult
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo catalogRepo.CatalogRepository
}
