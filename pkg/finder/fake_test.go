package finder

import (
	"context"
	"sync/atomic"

	"github.com/clearpath-ai/gpufind/pkg/gcpcatalog"
)

// fakeCatalog is an in-memory Catalog and Billing implementation. It counts
// calls so tests can assert that validation failures happen before any
// network traffic.
type fakeCatalog struct {
	zones        []gcpcatalog.Zone
	machineTypes map[string][]gcpcatalog.MachineType
	accelerators map[string][]gcpcatalog.AcceleratorType
	skus         []gcpcatalog.SKU

	err   error
	calls int64
}

func (f *fakeCatalog) ListZones(ctx context.Context) ([]gcpcatalog.Zone, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.zones, nil
}

func (f *fakeCatalog) ListMachineTypes(ctx context.Context, zone string) ([]gcpcatalog.MachineType, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.machineTypes[zone], nil
}

func (f *fakeCatalog) ListAcceleratorTypes(ctx context.Context, zone string) ([]gcpcatalog.AcceleratorType, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.accelerators[zone], nil
}

func (f *fakeCatalog) ListSKUs(ctx context.Context) ([]gcpcatalog.SKU, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.skus, nil
}

func (f *fakeCatalog) callCount() int64 {
	return atomic.LoadInt64(&f.calls)
}

// computeSKU builds a machine type SKU priced in nanos per hour.
func computeSKU(machineType, region string, nanos int64) gcpcatalog.SKU {
	return gcpcatalog.SKU{
		Description:    "Compute " + machineType + " running in " + region,
		Category:       gcpcatalog.SKUCategory{ResourceFamily: "Compute"},
		ServiceRegions: []string{region},
		PricingInfo: []gcpcatalog.PricingInfo{{
			PricingExpression: gcpcatalog.PricingExpression{
				TieredRates: []gcpcatalog.TieredRate{
					{UnitPrice: gcpcatalog.UnitPrice{Nanos: nanos}},
				},
			},
		}},
	}
}

// gpuSKU builds a GPU SKU priced in nanos per card-hour.
func gpuSKU(gpuType, region string, nanos int64) gcpcatalog.SKU {
	sku := computeSKU("", region, nanos)
	sku.Description = "Nvidia " + gpuType + " GPU running in " + region
	return sku
}
