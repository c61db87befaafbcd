package main

import (
	"fmt"

	"github.com/mkleven/osloplan"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Catalog.SearchDocuments(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No documents match %q.\n", c.Query)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%d documents match %q:\n\n", len(results), c.Query)
	for i, r := range results {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s / %s\n", i+1, r.Document.Title, r.Document.Category, r.Document.Department)
	}

	return nil
}
