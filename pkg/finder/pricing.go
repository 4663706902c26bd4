package finder

import (
	"strconv"
	"strings"

	"github.com/clearpath-ai/gpufind/pkg/gcpcatalog"
)

// PriceBook is a read-only view over the Compute Engine SKU catalog, built
// once per run and shared across all candidate lookups.
//
// The catalog has no structured key linking a SKU to a machine or GPU type
// in a zone, so lookups are heuristic matches against the free-text SKU
// description. A lookup that matches nothing reports Found == false; it is
// never folded into a zero price.
type PriceBook struct {
	skus []gcpcatalog.SKU
}

// NewPriceBook wraps a fetched SKU catalog.
func NewPriceBook(skus []gcpcatalog.SKU) *PriceBook {
	return &PriceBook{skus: skus}
}

// skuMatcher selects SKUs relevant to one priced resource. Keeping the
// predicate separate from tier extraction lets the heuristics be replaced
// and tested in isolation.
type skuMatcher func(sku gcpcatalog.SKU) bool

// machineSKUMatcher matches the hourly price SKU of a machine type in a
// zone: Compute resource family, description starting with
// "Compute <machine type>", and the zone listed in the SKU's service regions.
func machineSKUMatcher(machineType, zone string) skuMatcher {
	prefix := "Compute " + machineType
	return func(sku gcpcatalog.SKU) bool {
		return sku.Category.ResourceFamily == "Compute" &&
			strings.HasPrefix(sku.Description, prefix) &&
			servesRegion(sku, zone)
	}
}

// gpuSKUMatcher matches the hourly per-card price SKU of a GPU type in a
// zone: Compute resource family, description containing both the GPU type
// and the literal "GPU", and the zone listed in the SKU's service regions.
func gpuSKUMatcher(gpuType, zone string) skuMatcher {
	return func(sku gcpcatalog.SKU) bool {
		return sku.Category.ResourceFamily == "Compute" &&
			strings.Contains(sku.Description, gpuType) &&
			strings.Contains(sku.Description, "GPU") &&
			servesRegion(sku, zone)
	}
}

func servesRegion(sku gcpcatalog.SKU, zone string) bool {
	for _, region := range sku.ServiceRegions {
		if region == zone {
			return true
		}
	}
	return false
}

// first returns the first-tier price of the first SKU accepted by the matcher.
func (b *PriceBook) first(matches skuMatcher) Price {
	for _, sku := range b.skus {
		if !matches(sku) {
			continue
		}
		if perHour, ok := firstTierPrice(sku); ok {
			return Price{PerHour: perHour, Found: true}
		}
	}
	return Price{}
}

// MachinePrice looks up the hourly price of a machine type in a zone.
func (b *PriceBook) MachinePrice(machineType, zone string) Price {
	return b.first(machineSKUMatcher(machineType, zone))
}

// GPUPrice looks up the hourly per-card price of a GPU type in a zone.
func (b *PriceBook) GPUPrice(gpuType, zone string) Price {
	return b.first(gpuSKUMatcher(gpuType, zone))
}

// Resolve prices one quota candidate.
func (b *PriceBook) Resolve(candidate QuotaCandidate) Quote {
	return Quote{
		Machine: b.MachinePrice(candidate.MachineType, candidate.Zone),
		GPU:     b.GPUPrice(candidate.AcceleratorName, candidate.Zone),
	}
}

// firstTierPrice extracts the first tiered rate's unit price in currency
// units per hour. The units field carries whole currency units and nanos the
// fractional part.
func firstTierPrice(sku gcpcatalog.SKU) (float64, bool) {
	if len(sku.PricingInfo) == 0 {
		return 0, false
	}
	rates := sku.PricingInfo[0].PricingExpression.TieredRates
	if len(rates) == 0 {
		return 0, false
	}
	unitPrice := rates[0].UnitPrice

	units := 0.0
	if unitPrice.Units != "" && unitPrice.Units != "0" {
		parsed, err := strconv.ParseFloat(unitPrice.Units, 64)
		if err != nil {
			return 0, false
		}
		units = parsed
	}
	return units + float64(unitPrice.Nanos)/1e9, true
}
