package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/safespend/backend/internal/models"
)

// ConfigStore holds budget configurations and enforces that a user has
// at most one configuration per overlapping period.
type ConfigStore struct {
	mu             sync.RWMutex
	configurations map[uuid.UUID][]models.Configuration // keyed by user ID
}

func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		configurations: make(map[uuid.UUID][]models.Configuration),
	}
}

// Put validates and stores a configuration. Storing a configuration
// with the ID of an existing one replaces it. A configuration whose
// period overlaps another configuration of the same user is rejected
// with models.ErrConfigurationOverlap.
func (s *ConfigStore) Put(c models.Configuration) (models.Configuration, error) {
	if err := c.Validate(); err != nil {
		return models.Configuration{}, err
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	configurations := s.configurations[c.UserID]
	replace := -1
	for i, existing := range configurations {
		if existing.ID == c.ID {
			replace = i
			continue
		}

		if existing.Period.Overlaps(c.Period) {
			return models.Configuration{}, models.ErrConfigurationOverlap
		}
	}

	if replace >= 0 {
		configurations[replace] = c
	} else {
		s.configurations[c.UserID] = append(configurations, c)
	}

	return c, nil
}

// Active returns the configuration covering the instant, or
// models.ErrNoActiveConfiguration. The overlap check in Put guarantees
// there is at most one.
func (s *ConfigStore) Active(userID uuid.UUID, asOf time.Time) (models.Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.configurations[userID] {
		if c.Active(asOf) {
			return c, nil
		}
	}

	return models.Configuration{}, models.ErrNoActiveConfiguration
}
