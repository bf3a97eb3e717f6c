package catalog

import (
	"strings"

	"poojaghar/models"
	"poojaghar/utils"

	"go.uber.org/zap"
)

// Search re-fetches both collections and applies a case-insensitive substring
// match, mantras over title/description/category and items over
// name/description/category. Mantra matches always precede item matches;
// there is no relevance ranking. An empty or whitespace query returns an
// empty result without touching the repositories, and any fetch failure
// degrades the whole result to empty.
func (s *DefaultService) Search(query string) []models.SearchResult {
	q := strings.TrimSpace(query)
	if q == "" {
		return []models.SearchResult{}
	}
	q = strings.ToLower(q)

	mantras, err := s.Repo.AllMantras()
	if err != nil {
		utils.GetLogger().Error("catalog: search fetch of mantras failed", zap.Error(err))
		return []models.SearchResult{}
	}
	items, err := s.Repo.AllServiceItems()
	if err != nil {
		utils.GetLogger().Error("catalog: search fetch of service items failed", zap.Error(err))
		return []models.SearchResult{}
	}

	results := []models.SearchResult{}
	for i := range mantras {
		if matchesAny(q, mantras[i].Title, mantras[i].Description, mantras[i].Category) {
			results = append(results, models.SearchResult{
				Type:   models.SearchResultMantra,
				Mantra: &mantras[i],
			})
		}
	}
	for i := range items {
		if matchesAny(q, items[i].Name, items[i].Description, items[i].Category) {
			results = append(results, models.SearchResult{
				Type: models.SearchResultProduct,
				Item: &items[i],
			})
		}
	}
	return results
}

// matchesAny reports whether any field contains the lowercased query.
func matchesAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
