package finder

import (
	"context"
	"testing"

	"github.com/clearpath-ai/gpufind/pkg/config"
	"github.com/clearpath-ai/gpufind/pkg/gcpcatalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleZoneCatalog returns a catalog with one UP zone offering
// a2-highgpu-1g with an attached A100 descriptor, an A100 accelerator
// offering with the given card limit, and pricing of 2.0/hr for the machine
// and 1.0/hr per GPU.
func singleZoneCatalog(maxCards int) *fakeCatalog {
	return &fakeCatalog{
		zones: []gcpcatalog.Zone{{Name: "us-central1-a", Status: "UP"}},
		machineTypes: map[string][]gcpcatalog.MachineType{
			"us-central1-a": {{
				Name:        "a2-highgpu-1g",
				GuestCpus:   12,
				Description: "Accelerator Optimized",
				Accelerators: []gcpcatalog.AcceleratorConfig{
					{GuestAcceleratorType: "nvidia-tesla-a100", GuestAcceleratorCount: 1},
				},
			}},
		},
		accelerators: map[string][]gcpcatalog.AcceleratorType{
			"us-central1-a": {{
				Name:                    "nvidia-tesla-a100",
				Description:             "NVIDIA Tesla A100",
				MaximumCardsPerInstance: maxCards,
			}},
		},
		skus: []gcpcatalog.SKU{
			computeSKU("a2-highgpu-1g", "us-central1-a", 2_000_000_000),
			gpuSKU("nvidia-tesla-a100", "us-central1-a", 1_000_000_000),
		},
	}
}

func newFinder(catalog *fakeCatalog, cfg *config.Config) *Finder {
	return &Finder{
		Catalog:     catalog,
		Billing:     catalog,
		Config:      cfg,
		Concurrency: 1,
	}
}

func TestRunEndToEnd(t *testing.T) {
	catalog := singleZoneCatalog(1)
	cfg := config.New("my-project", "a2-highgpu-1g", "nvidia-tesla-a100", 1)

	options, err := newFinder(catalog, cfg).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, options, 1)
	option := options[0]
	assert.Equal(t, "us-central1", option.Region)
	assert.Equal(t, "us-central1-a", option.Zone)
	assert.Equal(t, "a2-highgpu-1g", option.MachineType)
	assert.Equal(t, "nvidia-tesla-a100", option.GPUType)
	assert.Equal(t, 1, option.MaxGPUs)
	assert.InDelta(t, 2.0, option.MachineCost, 1e-9)
	assert.InDelta(t, 1.0, option.GPUCost, 1e-9)
	assert.InDelta(t, 3.0, option.HourlyCost, 1e-9)
}

func TestRunValidatesBeforeAnyNetworkCall(t *testing.T) {
	catalog := singleZoneCatalog(1)
	// 2 GPUs against a machine type that encodes 1.
	cfg := config.New("my-project", "a2-highgpu-1g", "nvidia-tesla-a100", 2)

	_, err := newFinder(catalog, cfg).Run(context.Background())

	var confErr *config.ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.EqualValues(t, 0, catalog.callCount(), "validation must run before any catalog request")
}

func TestRunInsufficientQuota(t *testing.T) {
	catalog := singleZoneCatalog(1)
	cfg := config.New("my-project", "a2-highgpu-1g", "nvidia-tesla-a100", 1)
	// Request more cards than the offering allows, without tripping the
	// naming rule.
	cfg.Instance.MachineType = "n1-standard-4"
	catalog.machineTypes["us-central1-a"][0].Name = "n1-standard-4"
	cfg.Instance.NumberOfGPUs = 2

	_, err := newFinder(catalog, cfg).Run(context.Background())

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Error(), "accelerator types")
}

func TestRunZoneFilter(t *testing.T) {
	catalog := singleZoneCatalog(1)
	catalog.zones = append(catalog.zones, gcpcatalog.Zone{Name: "europe-west4-a", Status: "UP"})
	cfg := config.New("my-project", "a2-highgpu-1g", "nvidia-tesla-a100", 1)
	cfg.Instance.Zones = []string{"us-central1-a"}

	options, err := newFinder(catalog, cfg).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, options, 1)
	assert.Equal(t, "us-central1-a", options[0].Zone)
}

func TestRunExcludesUnpricedCandidates(t *testing.T) {
	catalog := singleZoneCatalog(1)
	// Drop the GPU SKU: the candidate has no complete quote and must be
	// excluded rather than ranked at an artificial zero.
	catalog.skus = catalog.skus[:1]
	cfg := config.New("my-project", "a2-highgpu-1g", "nvidia-tesla-a100", 1)

	_, err := newFinder(catalog, cfg).Run(context.Background())

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Error(), "pricing")
}

func TestRunRanksAcrossZones(t *testing.T) {
	catalog := &fakeCatalog{
		zones: []gcpcatalog.Zone{
			{Name: "us-central1-a", Status: "UP"},
			{Name: "europe-west4-a", Status: "UP"},
			{Name: "asia-east1-c", Status: "DOWN"},
		},
		machineTypes: map[string][]gcpcatalog.MachineType{
			"us-central1-a":  {{Name: "a2-highgpu-1g", GuestCpus: 12}},
			"europe-west4-a": {{Name: "a2-highgpu-1g", GuestCpus: 12}},
		},
		accelerators: map[string][]gcpcatalog.AcceleratorType{
			"us-central1-a":  {{Name: "nvidia-tesla-a100", MaximumCardsPerInstance: 1}},
			"europe-west4-a": {{Name: "nvidia-tesla-a100", MaximumCardsPerInstance: 1}},
		},
		skus: []gcpcatalog.SKU{
			computeSKU("a2-highgpu-1g", "us-central1-a", 2_500_000_000),
			gpuSKU("nvidia-tesla-a100", "us-central1-a", 1_500_000_000),
			computeSKU("a2-highgpu-1g", "europe-west4-a", 2_000_000_000),
			gpuSKU("nvidia-tesla-a100", "europe-west4-a", 1_000_000_000),
		},
	}
	cfg := config.New("my-project", "a2-highgpu-1g", "nvidia-tesla-a100", 1)

	options, err := newFinder(catalog, cfg).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, options, 2)
	assert.Equal(t, "europe-west4-a", options[0].Zone)
	assert.InDelta(t, 3.0, options[0].HourlyCost, 1e-9)
	assert.Equal(t, "us-central1-a", options[1].Zone)
	assert.InDelta(t, 4.0, options[1].HourlyCost, 1e-9)
}

func TestRunCollaboratorErrorIsFatal(t *testing.T) {
	catalog := singleZoneCatalog(1)
	catalog.err = assert.AnError
	cfg := config.New("my-project", "a2-highgpu-1g", "nvidia-tesla-a100", 1)

	_, err := newFinder(catalog, cfg).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
