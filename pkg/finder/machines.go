package finder

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// MatchMachineTypes scans each zone's machine type listing for the requested
// machine type. A name match produces a MachineCandidate; when the machine
// type's first accelerator descriptor names the requested GPU type the
// descriptor is attached. A name match without a matching descriptor is
// still a candidate: the quota stage performs the real accelerator check.
//
// Zones are scanned with at most concurrency listings in flight, and
// candidates are merged in zone name order so output is reproducible
// regardless of scan interleaving. Fails with NotFoundError when no zone
// offers the machine type.
func MatchMachineTypes(ctx context.Context, catalog Catalog, zones []Zone, machineType, gpuType string, concurrency int, bar *progressbar.ProgressBar) ([]MachineCandidate, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	var mu sync.Mutex
	byZone := make(map[string][]MachineCandidate, len(zones))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, zone := range zones {
		zone := zone
		g.Go(func() error {
			machines, err := catalog.ListMachineTypes(gctx, zone.Name)
			if err != nil {
				return errors.Wrapf(err, "could not list machine types in %s", zone.Name)
			}

			var found []MachineCandidate
			for _, machine := range machines {
				if machine.Name != machineType {
					continue
				}
				candidate := MachineCandidate{
					MachineType: machine.Name,
					Region:      zone.Region,
					Zone:        zone.Name,
					GuestCPUs:   machine.GuestCpus,
					Description: machine.Description,
				}
				if len(machine.Accelerators) > 0 && machine.Accelerators[0].GuestAcceleratorType == gpuType {
					accelerator := machine.Accelerators[0]
					candidate.Accelerator = &accelerator
				}
				found = append(found, candidate)
			}

			mu.Lock()
			byZone[zone.Name] = found
			mu.Unlock()
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	zoneNames := make([]string, 0, len(byZone))
	for name := range byZone {
		zoneNames = append(zoneNames, name)
	}
	sort.Strings(zoneNames)

	var candidates []MachineCandidate
	for _, name := range zoneNames {
		candidates = append(candidates, byZone[name]...)
	}

	if len(candidates) == 0 {
		return nil, &NotFoundError{Reason: fmt.Sprintf("No machine types of %s are available in any zone", machineType)}
	}
	return candidates, nil
}

// Regions returns the distinct regions of the candidates, in first-seen order.
func Regions(candidates []MachineCandidate) []string {
	seen := map[string]bool{}
	var regions []string
	for _, candidate := range candidates {
		if !seen[candidate.Region] {
			seen[candidate.Region] = true
			regions = append(regions, candidate.Region)
		}
	}
	return regions
}
