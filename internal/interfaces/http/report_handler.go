package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/application/dto"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/application/reports"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
)

// ReportService lo que el handler necesita del caso de uso de reportes.
type ReportService interface {
	Generate(ctx context.Context, req dto.ReportRequest) (*metrics.Summary, error)
	Export(ctx context.Context, req dto.ReportRequest) (*dto.ReportFile, error)
}

// ReportHandler maneja los endpoints de reportes.
type ReportHandler struct {
	uc ReportService
}

// NewReportHandler construye el handler.
func NewReportHandler(uc ReportService) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get devuelve el reporte pedido.
// GET /api/reports/:type?period=this_month&start_date=&end_date=&format=json|pdf|xlsx
//
// :type general|occupancy|revenue|guests|inventory (acepta alias en español).
// Con format=json responde el resumen; con pdf/xlsx responde el archivo como adjunto.
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "parámetros inválidos"})
	}
	req.Type = c.Params("type")
	req.BranchID = GetBranchID(c)

	format, ok := reports.ParseFormat(req.Format)
	if !ok {
		return reportError(c, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, req.Format))
	}

	if format == reports.FormatJSON {
		sum, err := h.uc.Generate(c.UserContext(), req)
		if err != nil {
			return reportError(c, err)
		}
		return c.JSON(sum)
	}

	file, err := h.uc.Export(c.UserContext(), req)
	if err != nil {
		return reportError(c, err)
	}
	c.Attachment(file.Filename)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Body)
}

func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownReportType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_REPORT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidPeriod):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownFormat):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_FORMAT", Message: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "la consulta fue cancelada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
