package storage

import (
	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
)

var _ model.DrinkTypeRepository = (*DrinkTypeRepo)(nil)

// DrinkTypeRepo provides operations for the drink catalog.
type DrinkTypeRepo struct {
	db *DB
}

// NewDrinkTypeRepo creates a new drink type repository.
func NewDrinkTypeRepo(db *DB) *DrinkTypeRepo {
	return &DrinkTypeRepo{db: db}
}

// Save upserts a drink type by value. A new value gets a fresh id; an
// existing value keeps its id and position.
func (r *DrinkTypeRepo) Save(drink *model.DrinkType) error {
	existing, err := r.GetByValue(drink.Value)
	switch {
	case err == nil:
		drink.ID = existing.ID
	case errors.IsNotFoundError(err):
		if drink.ID == "" {
			drink.ID = model.NewID()
		}
	default:
		return err
	}
	return errors.Wrap(r.db.Set(drink), "store drink type")
}

// GetByValue looks a drink type up by its value.
func (r *DrinkTypeRepo) GetByValue(value string) (*model.DrinkType, error) {
	drinks, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, d := range drinks {
		if d.Value == value {
			return d, nil
		}
	}
	return nil, errors.DrinkTypeNotFound(value)
}

// List retrieves the catalog in insertion order.
func (r *DrinkTypeRepo) List() ([]*model.DrinkType, error) {
	drinks, err := GetAllByPrefix(r.db, model.PrefixDrinkType+":", func() *model.DrinkType {
		return &model.DrinkType{}
	})
	return drinks, errors.Wrap(err, "list drink types")
}
