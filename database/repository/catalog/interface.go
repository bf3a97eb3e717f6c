package catalogRepo

import "poojaghar/models"

// CatalogRepository reads the display-only collections wholesale. There is no
// paging; every caller receives the full collection in stored order.
type CatalogRepository interface {
	AllMantras() ([]models.Mantra, error)
	AllServiceItems() ([]models.ServiceItem, error)
	AllAstrologers() ([]models.Astrologer, error)
	// AstrologerByID returns (nil, nil) when no such astrologer exists.
	AstrologerByID(id string) (*models.Astrologer, error)
}
