package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mkleven/osloplan"
	"github.com/mkleven/osloplan/export"
	"github.com/mkleven/osloplan/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	docs, err := deps.Catalog.FindDocuments(deps.Ctx, osloplan.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
		return err
	}

	if c.Format == "md" {
		if c.Output == "-" {
			fmt.Fprintln(deps.Stderr, "error: md export writes a directory tree. Pass -o <dir>.")
			return osloplan.Errorf(osloplan.EINVALID, "md export requires -o <dir>")
		}
		if err := fs.NewWriter(c.Output).WriteCatalog(deps.Ctx, docs); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Exported %d documents to %s\n", len(docs), c.Output)
		return nil
	}

	var w io.Writer = deps.Stdout
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot create %s: %s\n", c.Output, err)
			return err
		}
		defer f.Close()
		w = f
	}

	switch c.Format {
	case "csv":
		err = export.WriteCSV(w, docs)
	case "json":
		err = export.WriteJSON(w, docs)
	case "xlsx":
		var stats *osloplan.Statistics
		stats, err = deps.Catalog.Statistics(deps.Ctx)
		if err == nil {
			err = export.WriteExcel(w, docs, stats)
		}
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
		return err
	}

	if c.Output != "-" {
		fmt.Fprintf(deps.Stdout, "Exported %d documents to %s\n", len(docs), c.Output)
	}

	return nil
}
