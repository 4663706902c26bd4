package finder

import (
	"context"

	"github.com/clearpath-ai/gpufind/pkg/logger"
	"github.com/pkg/errors"
)

// EnumerateZones lists the project's operational zones. Only zones with
// status "UP" are kept; the region is the zone name minus its two-character
// zone suffix. If filter is non-empty the result is intersected with it, in
// catalog order; filter entries unknown to the catalog are dropped silently.
func EnumerateZones(ctx context.Context, catalog Catalog, filter []string) ([]Zone, error) {
	items, err := catalog.ListZones(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not enumerate zones")
	}

	keep := map[string]bool{}
	for _, name := range filter {
		keep[name] = true
	}

	var zones []Zone
	for _, item := range items {
		if item.Status != "UP" {
			continue
		}
		if len(filter) > 0 && !keep[item.Name] {
			continue
		}
		delete(keep, item.Name)
		zones = append(zones, Zone{
			Name:   item.Name,
			Region: regionOf(item.Name),
		})
	}

	for name := range keep {
		logger.Debugf("Requested zone %s is not in the catalog or not UP, skipping", name)
	}

	return zones, nil
}

// regionOf derives the region from a zone name by stripping the trailing
// zone suffix, e.g. "us-central1-a" -> "us-central1".
func regionOf(zone string) string {
	if len(zone) < 2 {
		return zone
	}
	return zone[:len(zone)-2]
}
