package finder

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/clearpath-ai/gpufind/pkg/config"
	"github.com/clearpath-ai/gpufind/pkg/logger"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// Finder runs the discovery-and-ranking pipeline: enumerate operational
// zones, match the requested machine type and accelerator per zone, check
// per-instance GPU quota, price the survivors from a single SKU catalog
// fetch, and rank them by hourly cost.
type Finder struct {
	Catalog Catalog
	Billing Billing
	Config  *config.Config

	// Concurrency bounds the per-zone listing fan-out. 1 scans sequentially.
	Concurrency int
	// Progress renders a progress bar over zone scans on stderr.
	Progress bool
}

// Run executes the pipeline and returns all viable options, cheapest first.
// The configuration is validated before any catalog request is issued. All
// errors are fatal to the run; there are no partial results.
func (f *Finder) Run(ctx context.Context) ([]RankedOption, error) {
	if err := f.Config.Validate(); err != nil {
		return nil, err
	}
	instance := f.Config.Instance

	if len(instance.Zones) > 0 {
		logger.Infof("Processing selected zones from %v", instance.Zones)
	} else {
		logger.Info("Processing all zones")
	}
	zones, err := EnumerateZones(ctx, f.Catalog, instance.Zones)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if f.Progress {
		bar = progressbar.NewOptions(len(zones),
			progressbar.OptionSetDescription("Scanning zones..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(15),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionThrottle(2*time.Second),
		)
		_ = bar.RenderBlank()
	}

	candidates, err := MatchMachineTypes(ctx, f.Catalog, zones, instance.MachineType, instance.GPUType, f.Concurrency, bar)
	if err != nil {
		return nil, err
	}
	logger.Infof("Machine type %s is available in the following regions: %s",
		instance.MachineType, strings.Join(Regions(candidates), ", "))

	quotaCandidates, err := ResolveQuota(ctx, f.Catalog, candidates, instance.GPUType, instance.NumberOfGPUs)
	if err != nil {
		return nil, err
	}

	skus, err := f.Billing.ListSKUs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch the pricing catalog")
	}
	book := NewPriceBook(skus)

	priced := make([]QuotaCandidate, 0, len(quotaCandidates))
	quotes := make([]Quote, 0, len(quotaCandidates))
	for _, candidate := range quotaCandidates {
		quote := book.Resolve(candidate)
		if !quote.Complete() {
			logger.Warnf("No price found for %s with %s in %s, excluding it from the ranking",
				candidate.MachineType, candidate.AcceleratorName, candidate.Zone)
			continue
		}
		logger.Infof("Service Region: %s, Machine Type: %s, GPU Type: %s, Machine Price: %v, GPU Price: %v per hour",
			candidate.Zone, candidate.MachineType, candidate.AcceleratorName,
			quote.Machine.PerHour, quote.GPU.PerHour)
		priced = append(priced, candidate)
		quotes = append(quotes, quote)
	}

	if len(priced) == 0 {
		return nil, &NotFoundError{Reason: "No pricing found for any viable zone"}
	}

	return Rank(priced, quotes), nil
}
