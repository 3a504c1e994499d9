package model

// DrinkType is a catalog entry mapping a drink to its hydration multiplier.
type DrinkType struct {
	ID                  string  `json:"id"`
	Value               string  `json:"value"`
	Label               string  `json:"label"`
	Icon                string  `json:"icon"`
	HydrationMultiplier float64 `json:"hydrationMultiplier"`
	Active              bool    `json:"active"`
}

// SetKey sets the database key for this drink type.
func (d *DrinkType) SetKey(key string) {
	d.ID = splitKey(PrefixDrinkType, key)
}

// GetKey returns the database key for this drink type. Keys use the
// time-sortable id so a prefix scan yields insertion order; lookups by
// value scan the (small) catalog.
func (d *DrinkType) GetKey() string {
	return joinKey(PrefixDrinkType, d.ID)
}

// DefaultDrinkTypes is the catalog seeded into an empty database. Ids are
// assigned when the rows are stored.
func DefaultDrinkTypes() []*DrinkType {
	return []*DrinkType{
		{Value: "water", Label: "Water", Icon: "Droplets", HydrationMultiplier: 1.0, Active: true},
		{Value: "tea", Label: "Tea", Icon: "Coffee", HydrationMultiplier: 0.9, Active: true},
		{Value: "coffee", Label: "Coffee", Icon: "Coffee", HydrationMultiplier: 0.8, Active: true},
		{Value: "juice", Label: "Juice", Icon: "Citrus", HydrationMultiplier: 0.85, Active: true},
		{Value: "milk", Label: "Milk", Icon: "Milk", HydrationMultiplier: 0.9, Active: true},
		{Value: "sports drink", Label: "Sports Drink", Icon: "Zap", HydrationMultiplier: 0.95, Active: true},
	}
}
