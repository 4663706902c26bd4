package finder

import "sort"

// Rank builds a RankedOption per priced candidate and sorts ascending by
// hourly cost. The hourly cost multiplies the per-GPU price by the
// offering's maximum cards per instance, the worst-case cost of the offering
// at full GPU capacity, not by the requested count. The sort is stable: ties
// keep discovery order. Candidates and quotes are matched by index.
func Rank(candidates []QuotaCandidate, quotes []Quote) []RankedOption {
	options := make([]RankedOption, 0, len(candidates))
	for i, candidate := range candidates {
		quote := quotes[i]
		machineCost := quote.Machine.PerHour
		gpuCost := quote.GPU.PerHour
		options = append(options, RankedOption{
			Region:      candidate.Region,
			Zone:        candidate.Zone,
			MachineType: candidate.MachineType,
			GPUType:     candidate.AcceleratorName,
			HourlyCost:  machineCost + gpuCost*float64(candidate.MaxGPUsPerInstance),
			MachineCost: machineCost,
			GPUCost:     gpuCost,
			MaxGPUs:     candidate.MaxGPUsPerInstance,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].HourlyCost < options[j].HourlyCost
	})
	return options
}

// TopN returns the first n options, or all of them if fewer exist.
func TopN(options []RankedOption, n int) []RankedOption {
	if n < 0 {
		n = 0
	}
	if n > len(options) {
		n = len(options)
	}
	return options[:n]
}
