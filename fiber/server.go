// Package fiber provides the HTTP API for the planning document
// dashboard. The UI layer consumes these endpoints; all rendering happens
// client side.
package fiber

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	gofiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mkleven/osloplan"
	"github.com/mkleven/osloplan/export"
)

// Server serves the dashboard API over HTTP.
type Server struct {
	app      *gofiber.App
	catalog  osloplan.CatalogService
	verifier osloplan.LinkVerifier
	logger   *slog.Logger
}

// NewServer creates a Server wired to the given catalog. The verifier may
// be nil, in which case the link verification endpoint reports the
// feature as unavailable.
func NewServer(catalog osloplan.CatalogService, verifier osloplan.LinkVerifier, logger *slog.Logger) *Server {
	s := &Server{
		catalog:  catalog,
		verifier: verifier,
		logger:   logger,
	}

	s.app = gofiber.New(gofiber.Config{
		AppName:               "osloplan",
		DisableStartupMessage: true,
	})
	s.app.Use(recover.New())

	api := s.app.Group("/api")
	api.Get("/documents", s.handleDocuments)
	api.Get("/documents/search", s.handleSearch)
	api.Get("/documents/:id", s.handleDocument)
	api.Get("/categories", s.handleCategories)
	api.Get("/stats", s.handleStats)
	api.Get("/integrity", s.handleIntegrity)
	api.Get("/export/csv", s.handleExportCSV)
	api.Get("/export/json", s.handleExportJSON)
	api.Get("/export/xlsx", s.handleExportExcel)
	api.Post("/verify", s.handleVerify)

	return s
}

// Listen starts the server on the given address and blocks until shutdown.
func (s *Server) Listen(addr string) error {
	s.logger.Info("dashboard API listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Test dispatches a request against the server without a network listener.
// It exists for handler tests.
func (s *Server) Test(req *http.Request) (*http.Response, error) {
	return s.app.Test(req, -1)
}

func (s *Server) handleDocuments(c *gofiber.Ctx) error {
	filter := osloplan.DocumentFilter{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	if v := c.Query("category"); v != "" {
		filter.Category = &v
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}
	if v := c.Query("department"); v != "" {
		filter.Department = &v
	}

	docs, err := s.catalog.FindDocuments(c.UserContext(), filter)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(gofiber.Map{"documents": docs, "count": len(docs)})
}

func (s *Server) handleDocument(c *gofiber.Ctx) error {
	doc, err := s.catalog.FindDocumentByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(doc)
}

func (s *Server) handleSearch(c *gofiber.Ctx) error {
	results, err := s.catalog.SearchDocuments(c.UserContext(), c.Query("q"))
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(gofiber.Map{"results": results, "count": len(results)})
}

func (s *Server) handleCategories(c *gofiber.Ctx) error {
	return c.JSON(gofiber.Map{"categories": osloplan.Categories()})
}

func (s *Server) handleStats(c *gofiber.Ctx) error {
	stats, err := s.catalog.Statistics(c.UserContext())
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(stats)
}

func (s *Server) handleIntegrity(c *gofiber.Ctx) error {
	report, err := s.catalog.VerifyIntegrity(c.UserContext())
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(report)
}

func (s *Server) handleExportCSV(c *gofiber.Ctx) error {
	docs, err := s.catalog.FindDocuments(c.UserContext(), osloplan.DocumentFilter{})
	if err != nil {
		return s.renderError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, docs); err != nil {
		return s.renderError(c, err)
	}

	c.Set(gofiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(gofiber.HeaderContentDisposition, `attachment; filename="oslo_planning_documents.csv"`)
	return c.Send(buf.Bytes())
}

func (s *Server) handleExportJSON(c *gofiber.Ctx) error {
	docs, err := s.catalog.FindDocuments(c.UserContext(), osloplan.DocumentFilter{})
	if err != nil {
		return s.renderError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, docs); err != nil {
		return s.renderError(c, err)
	}

	c.Set(gofiber.HeaderContentType, gofiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(gofiber.HeaderContentDisposition, `attachment; filename="oslo_planning_documents.json"`)
	return c.Send(buf.Bytes())
}

func (s *Server) handleExportExcel(c *gofiber.Ctx) error {
	ctx := c.UserContext()
	docs, err := s.catalog.FindDocuments(ctx, osloplan.DocumentFilter{})
	if err != nil {
		return s.renderError(c, err)
	}
	stats, err := s.catalog.Statistics(ctx)
	if err != nil {
		return s.renderError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteExcel(&buf, docs, stats); err != nil {
		return s.renderError(c, err)
	}

	c.Set(gofiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(gofiber.HeaderContentDisposition, `attachment; filename="oslo_planning_documents.xlsx"`)
	return c.Send(buf.Bytes())
}

func (s *Server) handleVerify(c *gofiber.Ctx) error {
	if s.verifier == nil {
		return c.Status(gofiber.StatusServiceUnavailable).
			JSON(gofiber.Map{"error": "link verification is not configured"})
	}

	ctx := c.UserContext()
	docs, err := s.catalog.FindDocuments(ctx, osloplan.DocumentFilter{})
	if err != nil {
		return s.renderError(c, err)
	}

	statuses, err := s.verifier.VerifyLinks(ctx, docs)
	if err != nil {
		return s.renderError(c, err)
	}

	verified := 0
	now := time.Now().UTC()
	for _, st := range statuses {
		if !st.OK {
			continue
		}
		if err := s.catalog.MarkVerified(ctx, st.ID, now); err != nil {
			s.logger.Warn("failed to record verification", "id", st.ID, "error", err)
			continue
		}
		verified++
	}

	return c.JSON(gofiber.Map{
		"checked":  len(statuses),
		"verified": verified,
		"statuses": statuses,
	})
}

func (s *Server) renderError(c *gofiber.Ctx, err error) error {
	code := osloplan.ErrorCode(err)
	status := gofiber.StatusInternalServerError
	switch code {
	case osloplan.EINVALID:
		status = gofiber.StatusBadRequest
	case osloplan.ENOTFOUND:
		status = gofiber.StatusNotFound
	case osloplan.ECONFLICT:
		status = gofiber.StatusConflict
	}
	if status == gofiber.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(gofiber.Map{"error": osloplan.ErrorMessage(err)})
}
