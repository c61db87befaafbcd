package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mkleven/osloplan"
	oslofiber "github.com/mkleven/osloplan/fiber"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Catalog  osloplan.CatalogService
	Verifier osloplan.LinkVerifier
	Server   *oslofiber.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	List   ListCmd   `cmd:"" help:"List catalog documents"`
	Search SearchCmd `cmd:"" help:"Search documents by title, category, or department"`
	Stats  StatsCmd  `cmd:"" help:"Show catalog statistics"`
	Check  CheckCmd  `cmd:"" help:"Check catalog integrity (content hash uniqueness)"`
	Verify VerifyCmd `cmd:"" help:"Verify document links against oslo.kommune.no"`
	Export ExportCmd `cmd:"" help:"Export the catalog as CSV, JSON, or Excel"`
	Reset  ResetCmd  `cmd:"" help:"Reset the catalog and reseed from the fixture"`
	Serve  ServeCmd  `cmd:"" help:"Serve the dashboard API over HTTP"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `short:"c" help:"Only list documents in this category"`
	Full     bool   `help:"Show URL and department per document"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search text"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// CheckCmd is the "check" subcommand.
type CheckCmd struct{}

// VerifyCmd is the "verify" subcommand.
type VerifyCmd struct {
	Concurrency int     `short:"n" default:"4" help:"Concurrent link check limit"`
	Rate        float64 `default:"1" help:"Requests per second"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format string `arg:"" enum:"csv,json,xlsx,md" help:"Export format: csv, json, xlsx, or md"`
	Output string `short:"o" default:"-" help:"Output file (- for stdout). md writes a directory tree."`
}

// ResetCmd is the "reset" subcommand.
type ResetCmd struct {
	Force bool `help:"Confirm the reset"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" default:":8080" help:"Listen address"`
}
