package catalog

import (
	"poojaghar/models"
	"poojaghar/utils"

	"go.uber.org/zap"
)

// Mantras fetches the mantras collection in full. Errors are logged and
// degrade to an empty list; the browse surface never propagates fetch
// failures.
func (s *DefaultService) Mantras() []models.Mantra {
	out, err := s.Repo.AllMantras()
	if err != nil {
		utils.GetLogger().Error("catalog: failed to fetch mantras", zap.Error(err))
		return []models.Mantra{}
	}
	return out
}

// ServiceItems fetches the service_item collection in full, degrading to
// empty on error.
func (s *DefaultService) ServiceItems() []models.ServiceItem {
	out, err := s.Repo.AllServiceItems()
	if err != nil {
		utils.GetLogger().Error("catalog: failed to fetch service items", zap.Error(err))
		return []models.ServiceItem{}
	}
	return out
}

// Astrologers fetches the astrologers collection in full, degrading to empty
// on error.
func (s *DefaultService) Astrologers() []models.Astrologer {
	out, err := s.Repo.AllAstrologers()
	if err != nil {
		utils.GetLogger().Error("catalog: failed to fetch astrologers", zap.Error(err))
		return []models.Astrologer{}
	}
	return out
}
