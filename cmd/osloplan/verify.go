package main

import (
	"fmt"
	"time"

	"github.com/mkleven/osloplan"
)

// Run executes the verify command.
func (c *VerifyCmd) Run(deps *Dependencies) error {
	docs, err := deps.Catalog.FindDocuments(deps.Ctx, osloplan.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents to verify.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Checking %d links...\n", len(docs))

	statuses, err := deps.Verifier.VerifyLinks(deps.Ctx, docs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
		return err
	}

	now := time.Now().UTC()
	ok := 0
	for _, st := range statuses {
		if st.OK {
			ok++
			if err := deps.Catalog.MarkVerified(deps.Ctx, st.ID, now); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
				return err
			}
			continue
		}
		if st.Error != "" {
			fmt.Fprintf(deps.Stdout, "  FAIL  %s: %s\n", st.Title, st.Error)
		} else {
			fmt.Fprintf(deps.Stdout, "  FAIL  %s: HTTP %d\n", st.Title, st.StatusCode)
		}
	}

	fmt.Fprintf(deps.Stdout, "%d of %d links verified\n", ok, len(statuses))

	if ok < len(statuses) {
		return osloplan.Errorf(osloplan.EINTERNAL, "%d links failed verification", len(statuses)-ok)
	}
	return nil
}
