package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/saftpt-validator/internal/application/audit"
	"github.com/jhoicas/saftpt-validator/internal/application/dto"
	"github.com/jhoicas/saftpt-validator/internal/domain"
)

// ValidationHandler maneja las peticiones HTTP de validación SAF-T (protegido).
type ValidationHandler struct {
	uc *audit.ValidationUseCase
}

// NewValidationHandler construye el handler.
func NewValidationHandler(uc *audit.ValidationUseCase) *ValidationHandler {
	return &ValidationHandler{uc: uc}
}

// Create valida un ficheiro SAF-T enviado como cuerpo XML o como campo multipart "file".
// @Summary      Validar ficheiro SAF-T
// @Tags         validations
// @Security     Bearer
// @Accept       xml
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  false  "Ficheiro SAF-T (alternativa al cuerpo XML)"
// @Success      201   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/validations [post]
func (h *ValidationHandler) Create(c *fiber.Ctx) error {
	raw, err := auditFileBody(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	}
	run, err := h.uc.ValidateAuditFile(c.UserContext(), raw, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToReportResponse(run))
}

// GetByID informe completo de una ejecución.
// @Summary      Obtener informe por ID
// @Tags         validations
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la ejecución"
// @Success      200  {object}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/validations/{id} [get]
func (h *ValidationHandler) GetByID(c *fiber.Ctx) error {
	run, err := h.uc.GetReport(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToReportResponse(run))
}

// List ejecuciones paginadas.
// @Summary      Listar ejecuciones
// @Tags         validations
// @Security     Bearer
// @Produce      json
// @Param        limit   query     int  false  "Máximo 100"
// @Param        offset  query     int  false  "Desplazamiento"
// @Success      200     {object}  dto.ReportListResponse
// @Router       /api/validations [get]
func (h *ValidationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit y offset deben ser enteros"})
	}
	page.DefaultPage()
	runs, err := h.uc.ListReports(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.ReportSummary, 0, len(runs))
	for _, r := range runs {
		items = append(items, dto.ToReportSummary(r))
	}
	return c.JSON(dto.ReportListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}})
}

// PDF informe en PDF.
// @Summary      Descargar informe en PDF
// @Tags         validations
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la ejecución"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/validations/{id}/pdf [get]
func (h *ValidationHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.ReportPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func auditFileBody(c *fiber.Ctx) ([]byte, error) {
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	body := c.Body()
	if len(body) == 0 {
		return nil, errors.New("se espera el ficheiro SAF-T como cuerpo XML o campo multipart \"file\"")
	}
	// c.Body() solo es válido durante la petición
	return append([]byte(nil), body...), nil
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAuditFile):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_AUDIT_FILE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ejecución no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
