package models

// AddonDefinition is an optional extra a customer can attach to a service.
// PriceDeltaMinorUnits is added once per unit selected.
type AddonDefinition struct {
	ID                   string `bson:"id" json:"id"`
	Name                 string `bson:"name" json:"name"`
	PriceDeltaMinorUnits int64  `bson:"priceDeltaMinorUnits" json:"priceDeltaMinorUnits"`
}

// ServiceCatalogEntry describes a bookable service. Catalog entries are
// externally managed, read-only reference data; prices are fixed integer
// MXN minor units (centavos).
type ServiceCatalogEntry struct {
	ID                  string            `bson:"_id" json:"id"`
	Name                string            `bson:"name" json:"name"`
	Category            string            `bson:"category" json:"category"`
	Description         string            `bson:"description" json:"description,omitempty"`
	BasePriceMinorUnits int64             `bson:"basePriceMinorUnits" json:"basePriceMinorUnits"`
	DurationMinutes     int               `bson:"durationMinutes" json:"durationMinutes"`
	Addons              []AddonDefinition `bson:"addons" json:"addons"`
	ImageURL            string            `bson:"imageUrl" json:"imageUrl,omitempty"`
}

// FindAddon returns the addon with the given id, or false if the entry
// does not define it.
func (e ServiceCatalogEntry) FindAddon(id string) (AddonDefinition, bool) {
	for _, a := range e.Addons {
		if a.ID == id {
			return a, true
		}
	}
	return AddonDefinition{}, false
}
