package gcpcatalog

// Zone is a Compute Engine zone entry from zones.list.
type Zone struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type zoneListResponse struct {
	Items         []Zone `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

// AcceleratorConfig is an accelerator attachment on a machine type.
type AcceleratorConfig struct {
	GuestAcceleratorType  string `json:"guestAcceleratorType"`
	GuestAcceleratorCount int    `json:"guestAcceleratorCount"`
}

// MachineType is a Compute Engine machine type entry from machineTypes.list.
// Accelerators is only populated for accelerator-optimized shapes.
type MachineType struct {
	Name         string              `json:"name"`
	GuestCpus    int                 `json:"guestCpus"`
	MemoryMb     int                 `json:"memoryMb"`
	Description  string              `json:"description"`
	Accelerators []AcceleratorConfig `json:"accelerators,omitempty"`
}

type machineTypeListResponse struct {
	Items         []MachineType `json:"items"`
	NextPageToken string        `json:"nextPageToken"`
}

// AcceleratorType is a Compute Engine accelerator type entry from
// acceleratorTypes.list, scoped to a zone.
type AcceleratorType struct {
	Name                    string `json:"name"`
	Description             string `json:"description"`
	MaximumCardsPerInstance int    `json:"maximumCardsPerInstance"`
}

type acceleratorTypeListResponse struct {
	Items         []AcceleratorType `json:"items"`
	NextPageToken string            `json:"nextPageToken"`
}

// SKU is a Cloud Billing Catalog entry. Only the fields the pricing matcher
// needs are decoded.
type SKU struct {
	SkuID          string        `json:"skuId"`
	Description    string        `json:"description"`
	Category       SKUCategory   `json:"category"`
	ServiceRegions []string      `json:"serviceRegions"`
	PricingInfo    []PricingInfo `json:"pricingInfo"`
}

type SKUCategory struct {
	ResourceFamily string `json:"resourceFamily"`
	ResourceGroup  string `json:"resourceGroup"`
	UsageType      string `json:"usageType"`
}

type PricingInfo struct {
	PricingExpression PricingExpression `json:"pricingExpression"`
}

type PricingExpression struct {
	UsageUnit   string       `json:"usageUnit"`
	TieredRates []TieredRate `json:"tieredRates"`
}

type TieredRate struct {
	StartUsageAmount float64   `json:"startUsageAmount"`
	UnitPrice        UnitPrice `json:"unitPrice"`
}

type UnitPrice struct {
	CurrencyCode string `json:"currencyCode"`
	Units        string `json:"units"`
	Nanos        int64  `json:"nanos"`
}

type skuListResponse struct {
	Skus          []SKU  `json:"skus"`
	NextPageToken string `json:"nextPageToken"`
}
