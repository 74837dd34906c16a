package pricing

import (
	"hogarlink/models"

	"github.com/shopspring/decimal"
)

// DefaultPlatformFeeRate is the marketplace surcharge applied to every
// booking subtotal.
const DefaultPlatformFeeRate = "0.15"

// Engine computes a booking's price breakdown from a catalog entry and the
// customer's addon selections.
type Engine interface {
	ComputeTotal(entry models.ServiceCatalogEntry, selections models.AddonSelection) models.PriceBreakdown
}

// DefaultEngine implements Engine with a fixed fee rate. All arithmetic is
// in integer MXN minor units; the fee is the single point where a non-integer
// value appears, rounded once, half away from zero.
type DefaultEngine struct {
	FeeRate decimal.Decimal
}

func NewDefaultEngine() *DefaultEngine {
	return &DefaultEngine{FeeRate: decimal.RequireFromString(DefaultPlatformFeeRate)}
}

// ComputeTotal sums the base price and selected addons, then applies the
// platform fee to the subtotal. Unknown addon ids and quantities <= 0
// contribute zero; stale client selections degrade silently rather than
// erroring. Pure function of its inputs.
func (e *DefaultEngine) ComputeTotal(entry models.ServiceCatalogEntry, selections models.AddonSelection) models.PriceBreakdown {
	base := entry.BasePriceMinorUnits

	var addonAmount int64
	for id, qty := range selections {
		if qty <= 0 {
			continue
		}
		addon, ok := entry.FindAddon(id)
		if !ok {
			continue
		}
		addonAmount += addon.PriceDeltaMinorUnits * int64(qty)
	}

	subtotal := base + addonAmount
	fee := decimal.NewFromInt(subtotal).Mul(e.FeeRate).Round(0).IntPart()

	return models.PriceBreakdown{
		BaseAmount:  base,
		AddonAmount: addonAmount,
		Subtotal:    subtotal,
		PlatformFee: fee,
		Total:       subtotal + fee,
	}
}
