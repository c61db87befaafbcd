package main

import (
	"fmt"

	"github.com/mkleven/osloplan"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := osloplan.DocumentFilter{}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	docs, err := deps.Catalog.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found.")
		return nil
	}

	category := ""
	for _, doc := range docs {
		if doc.Category != category {
			category = doc.Category
			fmt.Fprintf(deps.Stdout, "%s\n", category)
		}
		fmt.Fprintf(deps.Stdout, "  %s  [%s]\n", doc.Title, doc.Status)
		if c.Full {
			fmt.Fprintf(deps.Stdout, "      %s\n      %s\n", doc.Department, doc.URL)
		}
	}
	fmt.Fprintf(deps.Stdout, "\n%d documents\n", len(docs))

	return nil
}
