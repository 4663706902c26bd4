package finder

import (
	"context"

	"github.com/clearpath-ai/gpufind/pkg/gcpcatalog"
)

// Catalog lists compute inventory. Implemented by *gcpcatalog.Client and by
// test fakes.
type Catalog interface {
	ListZones(ctx context.Context) ([]gcpcatalog.Zone, error)
	ListMachineTypes(ctx context.Context, zone string) ([]gcpcatalog.MachineType, error)
	ListAcceleratorTypes(ctx context.Context, zone string) ([]gcpcatalog.AcceleratorType, error)
}

// Billing lists the pricing SKU catalog.
type Billing interface {
	ListSKUs(ctx context.Context) ([]gcpcatalog.SKU, error)
}

// Zone is an operational zone with its derived region.
type Zone struct {
	Name   string
	Region string
}

// MachineCandidate is a (zone, machine type) pair where the requested machine
// type is offered. Accelerator is set when the machine type carries an
// attached accelerator descriptor matching the requested GPU type.
type MachineCandidate struct {
	MachineType string
	Region      string
	Zone        string
	GuestCPUs   int
	Description string
	Accelerator *gcpcatalog.AcceleratorConfig
}

// QuotaCandidate is a MachineCandidate whose zone offers the requested GPU
// type with enough per-instance capacity.
type QuotaCandidate struct {
	MachineCandidate
	AcceleratorName        string
	AcceleratorDescription string
	MaxGPUsPerInstance     int
}

// Price is the outcome of one SKU catalog lookup. Found distinguishes "no
// matching SKU" from a genuine zero price.
type Price struct {
	PerHour float64
	Found   bool
}

// Quote holds the machine and per-GPU hourly prices for one candidate.
type Quote struct {
	Machine Price
	GPU     Price
}

// Complete reports whether both lookups found a SKU.
func (q Quote) Complete() bool {
	return q.Machine.Found && q.GPU.Found
}

// RankedOption is a fully priced, quota-checked zone option. HourlyCost is
// MachineCost plus GPUCost times MaxGPUs, the worst-case cost of running the
// offering at its full GPU capacity.
type RankedOption struct {
	Region      string
	Zone        string
	MachineType string
	GPUType     string
	HourlyCost  float64
	MachineCost float64
	GPUCost     float64
	MaxGPUs     int
}
