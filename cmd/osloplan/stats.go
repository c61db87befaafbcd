package main

import (
	"fmt"
	"sort"

	"github.com/mkleven/osloplan"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Catalog.Statistics(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Total documents:  %d\n", stats.Total)
	fmt.Fprintf(deps.Stdout, "Completion:       %.1f%%\n\n", stats.CompletionPercent)

	fmt.Fprintln(deps.Stdout, "By category:")
	for _, info := range osloplan.Categories() {
		if n := stats.ByCategory[info.Name]; n > 0 {
			fmt.Fprintf(deps.Stdout, "  %-28s %d\n", info.Name, n)
		}
	}

	fmt.Fprintln(deps.Stdout, "\nBy status:")
	for _, status := range sortedStatusKeys(stats.ByStatus) {
		fmt.Fprintf(deps.Stdout, "  %-28s %d\n", status, stats.ByStatus[status])
	}

	return nil
}

func sortedStatusKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
