package finder

import (
	"fmt"
	"os"

	"github.com/clearpath-ai/gpufind/pkg/logger"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// Monthly estimates assume continuous use.
const hoursPerMonth = 24 * 30

// DisplayResults renders the top lowest-priced options as a table with a
// derived monthly estimate.
func DisplayResults(options []RankedOption, top int) {
	options = TopN(options, top)
	if len(options) == 0 {
		logger.Errorf("[!] No viable zones to display.")
		return
	}

	logger.Infof("Top %d lowest-priced options:", len(options))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Region", "Zone", "Machine Type", "GPU Type", "Max GPUs", "Machine $/hr", "GPU $/hr", "Total $/hr", "Est. $/month"})

	for _, option := range options {
		table.Append([]string{
			option.Region,
			option.Zone,
			option.MachineType,
			option.GPUType,
			fmt.Sprintf("%d", option.MaxGPUs),
			humanize.FormatFloat("#,###.####", option.MachineCost),
			humanize.FormatFloat("#,###.####", option.GPUCost),
			humanize.FormatFloat("#,###.####", option.HourlyCost),
			humanize.FormatFloat("#,###.##", option.HourlyCost*hoursPerMonth),
		})
	}
	table.Render()
}
