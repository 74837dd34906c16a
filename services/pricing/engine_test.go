package pricing

import (
	"testing"

	"hogarlink/models"

	"github.com/stretchr/testify/assert"
)

func cleaningEntry() models.ServiceCatalogEntry {
	return models.ServiceCatalogEntry{
		ID:                  "deep-cleaning",
		Name:                "Deep Cleaning",
		BasePriceMinorUnits: 85000,
		DurationMinutes:     180,
		Addons: []models.AddonDefinition{
			{ID: "extra-room", Name: "Extra room", PriceDeltaMinorUnits: 5000},
			{ID: "inside-fridge", Name: "Inside fridge", PriceDeltaMinorUnits: 3500},
		},
	}
}

func TestComputeTotal_NoAddons(t *testing.T) {
	engine := NewDefaultEngine()

	bd := engine.ComputeTotal(cleaningEntry(), nil)

	assert.Equal(t, int64(85000), bd.BaseAmount)
	assert.Equal(t, int64(0), bd.AddonAmount)
	assert.Equal(t, int64(85000), bd.Subtotal)
	assert.Equal(t, int64(12750), bd.PlatformFee)
	assert.Equal(t, int64(97750), bd.Total)
}

func TestComputeTotal_WithAddonQuantity(t *testing.T) {
	engine := NewDefaultEngine()

	bd := engine.ComputeTotal(cleaningEntry(), models.AddonSelection{"extra-room": 2})

	assert.Equal(t, int64(10000), bd.AddonAmount)
	assert.Equal(t, int64(95000), bd.Subtotal)
	assert.Equal(t, int64(14250), bd.PlatformFee)
	assert.Equal(t, int64(109250), bd.Total)
}

func TestComputeTotal_UnknownAddonIgnored(t *testing.T) {
	engine := NewDefaultEngine()

	with := engine.ComputeTotal(cleaningEntry(), models.AddonSelection{"ghost": 5})
	without := engine.ComputeTotal(cleaningEntry(), nil)

	assert.Equal(t, without, with)
}

func TestComputeTotal_ZeroAndNegativeQuantitiesIgnored(t *testing.T) {
	engine := NewDefaultEngine()

	bd := engine.ComputeTotal(cleaningEntry(), models.AddonSelection{
		"extra-room":    0,
		"inside-fridge": -3,
	})

	assert.Equal(t, int64(0), bd.AddonAmount)
	assert.Equal(t, int64(85000), bd.Subtotal)
}

func TestComputeTotal_BreakdownReconciles(t *testing.T) {
	engine := NewDefaultEngine()

	cases := []models.AddonSelection{
		nil,
		{"extra-room": 1},
		{"extra-room": 3, "inside-fridge": 2},
		{"extra-room": 1, "ghost": 7, "inside-fridge": -1},
	}
	for _, sel := range cases {
		bd := engine.ComputeTotal(cleaningEntry(), sel)
		assert.Equal(t, bd.BaseAmount+bd.AddonAmount, bd.Subtotal)
		assert.Equal(t, bd.Subtotal+bd.PlatformFee, bd.Total)
	}
}

func TestComputeTotal_FeeRoundsHalfAwayFromZero(t *testing.T) {
	engine := NewDefaultEngine()

	// 10 * 0.15 = 1.5 exactly; half away from zero gives 2.
	entry := models.ServiceCatalogEntry{ID: "tiny", BasePriceMinorUnits: 10, DurationMinutes: 30}
	bd := engine.ComputeTotal(entry, nil)

	assert.Equal(t, int64(2), bd.PlatformFee)
	assert.Equal(t, int64(12), bd.Total)
}

func TestComputeTotal_Idempotent(t *testing.T) {
	engine := NewDefaultEngine()
	sel := models.AddonSelection{"extra-room": 2, "inside-fridge": 1}

	first := engine.ComputeTotal(cleaningEntry(), sel)
	second := engine.ComputeTotal(cleaningEntry(), sel)

	assert.Equal(t, first, second)
}
