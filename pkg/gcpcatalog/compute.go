package gcpcatalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clearpath-ai/gpufind/pkg/logger"
	"github.com/pkg/errors"
)

// ListZones drains the paginated zones listing for the client's project.
// Entries are returned in catalog iteration order.
func (c *Client) ListZones(ctx context.Context) ([]Zone, error) {
	var zones []Zone
	pageToken := ""

	for page := 0; page < maxPages; page++ {
		url := fmt.Sprintf("%s/projects/%s/zones", c.computeURL, c.project)
		if pageToken != "" {
			url += "?pageToken=" + pageToken
		}

		body, err := c.get(ctx, url)
		if err != nil {
			return nil, errors.Wrap(err, "listing zones")
		}

		var resp zoneListResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, errors.Wrap(err, "parsing zones response")
		}

		zones = append(zones, resp.Items...)

		if resp.NextPageToken == "" {
			return zones, nil
		}
		pageToken = resp.NextPageToken
	}

	logger.Warnf("zones pagination hit safety limit of %d pages, listing may be incomplete", maxPages)
	return zones, nil
}

// ListMachineTypes drains the paginated machine type listing for a zone.
func (c *Client) ListMachineTypes(ctx context.Context, zone string) ([]MachineType, error) {
	var machineTypes []MachineType
	pageToken := ""

	for page := 0; page < maxPages; page++ {
		url := fmt.Sprintf("%s/projects/%s/zones/%s/machineTypes", c.computeURL, c.project, zone)
		if pageToken != "" {
			url += "?pageToken=" + pageToken
		}

		body, err := c.get(ctx, url)
		if err != nil {
			return nil, errors.Wrapf(err, "listing machine types in %s", zone)
		}

		var resp machineTypeListResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, errors.Wrap(err, "parsing machine types response")
		}

		machineTypes = append(machineTypes, resp.Items...)

		if resp.NextPageToken == "" {
			return machineTypes, nil
		}
		pageToken = resp.NextPageToken
	}

	logger.Warnf("machine types pagination hit safety limit of %d pages in %s, listing may be incomplete", maxPages, zone)
	return machineTypes, nil
}

// ListAcceleratorTypes drains the paginated accelerator type listing for a
// zone. Zones with no accelerators return an empty slice, not an error.
func (c *Client) ListAcceleratorTypes(ctx context.Context, zone string) ([]AcceleratorType, error) {
	var accelerators []AcceleratorType
	pageToken := ""

	for page := 0; page < maxPages; page++ {
		url := fmt.Sprintf("%s/projects/%s/zones/%s/acceleratorTypes", c.computeURL, c.project, zone)
		if pageToken != "" {
			url += "?pageToken=" + pageToken
		}

		body, err := c.get(ctx, url)
		if err != nil {
			return nil, errors.Wrapf(err, "listing accelerator types in %s", zone)
		}

		var resp acceleratorTypeListResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, errors.Wrap(err, "parsing accelerator types response")
		}

		accelerators = append(accelerators, resp.Items...)

		if resp.NextPageToken == "" {
			return accelerators, nil
		}
		pageToken = resp.NextPageToken
	}

	logger.Warnf("accelerator types pagination hit safety limit of %d pages in %s, listing may be incomplete", maxPages, zone)
	return accelerators, nil
}
