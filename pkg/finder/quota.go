package finder

import (
	"context"
	"fmt"

	"github.com/clearpath-ai/gpufind/pkg/logger"
	"github.com/pkg/errors"
)

// ResolveQuota checks each candidate's zone for an accelerator offering of
// the requested GPU type whose per-instance card limit covers the requested
// count. Candidates that pass become QuotaCandidates; the rest are dropped
// with an informational log entry. Fails with NotFoundError when nothing
// passes, which covers both "GPU type offered nowhere" and "not enough
// capacity anywhere".
func ResolveQuota(ctx context.Context, catalog Catalog, candidates []MachineCandidate, gpuType string, requestedGPUs int) ([]QuotaCandidate, error) {
	var quotaCandidates []QuotaCandidate

	for _, candidate := range candidates {
		accelerators, err := catalog.ListAcceleratorTypes(ctx, candidate.Zone)
		if err != nil {
			return nil, errors.Wrapf(err, "could not list accelerator types in %s", candidate.Zone)
		}

		for _, accelerator := range accelerators {
			if accelerator.Name != gpuType {
				continue
			}
			if requestedGPUs <= accelerator.MaximumCardsPerInstance {
				quotaCandidates = append(quotaCandidates, QuotaCandidate{
					MachineCandidate:       candidate,
					AcceleratorName:        accelerator.Name,
					AcceleratorDescription: accelerator.Description,
					MaxGPUsPerInstance:     accelerator.MaximumCardsPerInstance,
				})
				logger.Infof("%d GPUs requested per instance, %s has %s GPUs with a maximum of %d per instance",
					requestedGPUs, candidate.Zone, accelerator.Name, accelerator.MaximumCardsPerInstance)
			} else {
				logger.Infof("%d GPUs requested per instance, %s doesn't have enough GPUs, with a maximum of %d per instance",
					requestedGPUs, candidate.Zone, accelerator.MaximumCardsPerInstance)
			}
		}
	}

	if len(quotaCandidates) == 0 {
		return nil, &NotFoundError{Reason: fmt.Sprintf(
			"No accelerator types of %s are available with the requested machine type in any zone, or wrong number of GPUs requested", gpuType)}
	}
	return quotaCandidates, nil
}
