package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/Analitica-retail/internal/application/analytics"
	"github.com/jhoicas/Analitica-retail/internal/application/dto"
	domain "github.com/jhoicas/Analitica-retail/internal/domain"
	"github.com/jhoicas/Analitica-retail/pkg/logger"
)

// ReportHandler maneja los endpoints de reportes analíticos.
type ReportHandler struct {
	svc *analytics.Service
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(svc *analytics.Service, log *logger.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: log}
}

// Catalog devuelve el catálogo de los 15 reportes disponibles.
// GET /api/reports
func (h *ReportHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(h.svc.Catalog())
}

// All ejecuta los 15 reportes en paralelo y devuelve las filas por slug.
// GET /api/reports/all
func (h *ReportHandler) All(c *fiber.Ctx) error {
	runID := uuid.NewString()
	start := time.Now()

	out := h.svc.RunAll()

	h.log.Info().
		Str("run_id", runID).
		Int("reports", len(out)).
		Dur("elapsed", time.Since(start)).
		Msg("ejecutados todos los reportes")
	return c.JSON(out)
}

// Get ejecuta un reporte por su slug.
// GET /api/reports/:slug
//
// Respuesta: ReportResponse con los metadatos del catálogo y las filas en el
// orden documentado de ese reporte.
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	slug := c.Params("slug")
	runID := uuid.NewString()
	start := time.Now()

	rows, err := h.svc.Run(slug)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownReport) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "REPORT_NOT_FOUND", Message: "no existe el reporte '" + slug + "'",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	var meta dto.ReportMeta
	for _, m := range h.svc.Catalog() {
		if m.Slug == slug {
			meta = m
			break
		}
	}

	h.log.Info().
		Str("run_id", runID).
		Str("report", slug).
		Dur("elapsed", time.Since(start)).
		Msg("reporte ejecutado")
	return c.JSON(dto.ReportResponse{Report: meta, Rows: rows})
}
