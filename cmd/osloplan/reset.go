package main

import (
	"fmt"

	"github.com/mkleven/osloplan"
)

// Run executes the reset command.
func (c *ResetCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintln(deps.Stderr, "error: reset destroys all stored documents. Re-run with --force to confirm.")
		return osloplan.Errorf(osloplan.EINVALID, "reset requires --force")
	}

	if err := deps.Catalog.Reset(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
		return err
	}

	report, err := deps.Catalog.Seed(deps.Ctx, osloplan.Fixture())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Catalog reset. Reseeded %d documents.\n", report.Loaded)
	return nil
}
