package main

import (
	"fmt"

	"github.com/mkleven/osloplan"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	report, err := deps.Catalog.VerifyIntegrity(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
		return err
	}

	if report.Clean() {
		fmt.Fprintf(deps.Stdout, "OK: %d documents checked, all content hashes valid and unique\n", report.Checked)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Checked %d documents\n", report.Checked)
	for _, m := range report.Mismatches {
		fmt.Fprintf(deps.Stdout, "  MISMATCH  %s (%s): stored %s, computed %s\n", m.Title, m.ID, m.Stored, m.Computed)
	}
	for _, d := range report.Duplicates {
		fmt.Fprintf(deps.Stdout, "  DUPLICATE %q and %q share hash %s\n", d.FirstTitle, d.SecondTitle, d.Hash)
	}

	return osloplan.Errorf(osloplan.ECONFLICT, "integrity check found %d mismatches and %d duplicates",
		len(report.Mismatches), len(report.Duplicates))
}
