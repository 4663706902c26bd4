package gcpcatalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clearpath-ai/gpufind/pkg/logger"
	"github.com/pkg/errors"
)

// ListSKUs fetches the full Compute Engine SKU catalog from the Cloud
// Billing Catalog API. The catalog is global (not zone-scoped), so callers
// should fetch it once per run and share it across pricing lookups.
func (c *Client) ListSKUs(ctx context.Context) ([]SKU, error) {
	var skus []SKU
	pageToken := ""

	for page := 0; page < maxPages; page++ {
		url := fmt.Sprintf("%s/services/%s/skus?currencyCode=USD&pageSize=5000", c.billingURL, computeEngineServiceID)
		if pageToken != "" {
			url += "&pageToken=" + pageToken
		}

		body, err := c.get(ctx, url)
		if err != nil {
			return nil, errors.Wrap(err, "fetching billing catalog")
		}

		var resp skuListResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, errors.Wrap(err, "parsing billing catalog response")
		}

		skus = append(skus, resp.Skus...)

		if resp.NextPageToken == "" {
			return skus, nil
		}
		pageToken = resp.NextPageToken
	}

	logger.Warnf("billing catalog pagination hit safety limit of %d pages, pricing data may be incomplete", maxPages)
	return skus, nil
}
