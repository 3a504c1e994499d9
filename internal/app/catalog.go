// Package app holds the hydration services. Each service validates its
// input and delegates persistence to the repository ports in model.
package app

import (
	"log/slog"
	"strings"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/logging"
	"github.com/manav03panchal/hydrate/internal/model"
	"github.com/manav03panchal/hydrate/internal/validate"
)

// DefaultMultiplier applies to drink types missing from the catalog.
const DefaultMultiplier = 1.0

// CatalogService manages the drink-type catalog.
type CatalogService struct {
	repo model.DrinkTypeRepository
	log  *slog.Logger
}

// NewCatalogService creates a catalog service.
func NewCatalogService(repo model.DrinkTypeRepository, log *slog.Logger) *CatalogService {
	if log == nil {
		log = logging.Discard()
	}
	return &CatalogService{repo: repo, log: log}
}

// List returns every drink type in insertion order.
func (s *CatalogService) List() ([]*model.DrinkType, error) {
	return s.repo.List()
}

// ListActive returns the active drink types in insertion order.
func (s *CatalogService) ListActive() ([]*model.DrinkType, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	active := make([]*model.DrinkType, 0, len(all))
	for _, d := range all {
		if d.Active {
			active = append(active, d)
		}
	}
	return active, nil
}

// Get returns the drink type with the given value.
func (s *CatalogService) Get(value string) (*model.DrinkType, error) {
	return s.repo.GetByValue(NormalizeDrinkType(value))
}

// MultiplierFor returns the multiplier of a known drink type, active or
// not. Unknown values hydrate at DefaultMultiplier and are not an error.
func (s *CatalogService) MultiplierFor(value string) (float64, error) {
	d, err := s.repo.GetByValue(NormalizeDrinkType(value))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return DefaultMultiplier, nil
		}
		return 0, err
	}
	return d.HydrationMultiplier, nil
}

// Upsert creates or replaces a drink type by value.
func (s *CatalogService) Upsert(drink *model.DrinkType) (*model.DrinkType, error) {
	drink.Value = NormalizeDrinkType(drink.Value)
	if err := validate.DrinkValue(drink.Value); err != nil {
		return nil, err
	}
	if !(drink.HydrationMultiplier > 0) {
		return nil, errors.NewValidationErrorWithValue("hydrationMultiplier",
			formatFloat(drink.HydrationMultiplier), "multiplier must be positive", nil).
			WithSuggestion("Use a value like 0.8 for 80% hydration.")
	}
	drink.Label = validate.SanitizeLabel(drink.Label)
	if drink.Label == "" {
		drink.Label = titleCase(drink.Value)
	}
	if err := validate.Label(drink.Label); err != nil {
		return nil, err
	}
	drink.Icon = strings.TrimSpace(drink.Icon)
	if err := validate.Icon(drink.Icon); err != nil {
		return nil, err
	}

	if err := s.repo.Save(drink); err != nil {
		return nil, err
	}
	s.log.Debug("drink type saved", logging.KeyDrinkType, drink.Value, "multiplier", drink.HydrationMultiplier)
	return drink, nil
}

// SetActive enables or disables a drink type.
func (s *CatalogService) SetActive(value string, active bool) (*model.DrinkType, error) {
	drink, err := s.repo.GetByValue(NormalizeDrinkType(value))
	if err != nil {
		return nil, err
	}
	drink.Active = active
	if err := s.repo.Save(drink); err != nil {
		return nil, err
	}
	return drink, nil
}

// SeedDefaults inserts the default catalog rows that are missing and
// leaves existing rows untouched. It returns how many rows were added.
func (s *CatalogService) SeedDefaults() (int, error) {
	added := 0
	for _, d := range model.DefaultDrinkTypes() {
		_, err := s.repo.GetByValue(d.Value)
		if err == nil {
			continue
		}
		if !errors.IsNotFoundError(err) {
			return added, err
		}
		if err := s.repo.Save(d); err != nil {
			return added, err
		}
		added++
	}
	if added > 0 {
		s.log.Debug("seeded drink catalog", logging.KeyCount, added)
	}
	return added, nil
}

// NormalizeDrinkType trims and lower-cases a drink-type value.
func NormalizeDrinkType(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
