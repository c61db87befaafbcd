// Package mock provides hand-written mocks of the osloplan domain
// interfaces for testing.
package mock

import (
	"context"
	"time"

	"github.com/mkleven/osloplan"
)

var _ osloplan.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of osloplan.CatalogService.
type CatalogService struct {
	SeedFn             func(ctx context.Context, docs []*osloplan.Document) (*osloplan.SeedReport, error)
	FindDocumentByIDFn func(ctx context.Context, id string) (*osloplan.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter osloplan.DocumentFilter) ([]*osloplan.Document, error)
	SearchDocumentsFn  func(ctx context.Context, query string) ([]*osloplan.SearchResult, error)
	StatisticsFn       func(ctx context.Context) (*osloplan.Statistics, error)
	VerifyIntegrityFn  func(ctx context.Context) (*osloplan.IntegrityReport, error)
	MarkVerifiedFn     func(ctx context.Context, id string, at time.Time) error
	ResetFn            func(ctx context.Context) error
}

func (s *CatalogService) Seed(ctx context.Context, docs []*osloplan.Document) (*osloplan.SeedReport, error) {
	return s.SeedFn(ctx, docs)
}

func (s *CatalogService) FindDocumentByID(ctx context.Context, id string) (*osloplan.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *CatalogService) FindDocuments(ctx context.Context, filter osloplan.DocumentFilter) ([]*osloplan.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *CatalogService) SearchDocuments(ctx context.Context, query string) ([]*osloplan.SearchResult, error) {
	return s.SearchDocumentsFn(ctx, query)
}

func (s *CatalogService) Statistics(ctx context.Context) (*osloplan.Statistics, error) {
	return s.StatisticsFn(ctx)
}

func (s *CatalogService) VerifyIntegrity(ctx context.Context) (*osloplan.IntegrityReport, error) {
	return s.VerifyIntegrityFn(ctx)
}

func (s *CatalogService) MarkVerified(ctx context.Context, id string, at time.Time) error {
	return s.MarkVerifiedFn(ctx, id, at)
}

func (s *CatalogService) Reset(ctx context.Context) error {
	return s.ResetFn(ctx)
}
