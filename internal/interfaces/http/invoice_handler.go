package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	drafts   *billing.DraftUseCase
	discount *billing.DiscountUseCase
	issue    *billing.IssueUseCase
	query    *billing.QueryUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(drafts *billing.DraftUseCase, discount *billing.DiscountUseCase, issue *billing.IssueUseCase, query *billing.QueryUseCase) *InvoiceHandler {
	return &InvoiceHandler{drafts: drafts, discount: discount, issue: issue, query: query}
}

// GenerateDrafts POST /api/invoices/drafts
// @Summary      Generar borradores del mes
// @Description  Calcula un borrador por cliente con días facturables en el periodo. Los fallos por cliente se devuelven en failed.
// @Tags         Facturación
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.GenerateDraftsRequest  true  "Periodo"
// @Success      201   {object}  dto.GenerateDraftsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/invoices/drafts [post]
func (h *InvoiceHandler) GenerateDrafts(c *fiber.Ctx) error {
	var in dto.GenerateDraftsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.drafts.GenerateDrafts(c.Context(), in.Month, in.Year)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/invoices?status=DRAFT&month=2&year=2026&client_id=
// @Summary      Listar facturas
// @Tags         Facturación
// @Produce      json
// @Security     BearerAuth
// @Param        status     query     string  false  "DRAFT | ISSUED"
// @Param        month      query     int     false  "Mes del periodo"
// @Param        year       query     int     false  "Año del periodo"
// @Param        client_id  query     string  false  "Cliente"
// @Success      200        {object}  dto.ListResponse[dto.InvoiceResponse]
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var q dto.InvoiceListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if err := checkUUID("client_id", q.ClientID); err != nil {
		return writeError(c, err)
	}
	list, err := h.query.List(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// GetByID GET /api/invoices/:id
// @Summary      Obtener factura
// @Tags         Facturación
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.query.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// EditDiscount PUT /api/invoices/:id/discount
// @Summary      Editar descuento de un borrador
// @Description  Recalcula los totales a partir de la base guardada. Solo en DRAFT.
// @Tags         Facturación
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "ID de la factura"
// @Param        body  body      dto.EditDiscountRequest  true  "Descuento"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/discount [put]
func (h *InvoiceHandler) EditDiscount(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.EditDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.discount.EditDraftDiscount(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Issue POST /api/invoices/:id/issue
// @Summary      Emitir factura
// @Description  Asigna el número definitivo y pasa a ISSUED. Con ?download=true devuelve el PDF.
// @Tags         Facturación
// @Produce      json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id        path      string  true   "ID de la factura"
// @Param        download  query     bool    false  "Devolver el PDF en lugar del JSON"
// @Success      200       {object}  dto.IssueInvoiceResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      409       {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/issue [post]
func (h *InvoiceHandler) Issue(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.issue.IssueInvoice(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if c.QueryBool("download") && res.Document != nil {
		return sendPDF(c, res.Document, res.Filename)
	}
	out := dto.IssueInvoiceResponse{Invoice: dto.NewInvoiceResponse(res.Invoice)}
	if res.Document != nil {
		out.Filename = res.Filename
		out.DocumentURL = fmt.Sprintf("/api/invoices/%s/pdf", res.Invoice.ID)
	}
	return c.JSON(out)
}

// PDF GET /api/invoices/:id/pdf
// @Summary      Descargar PDF
// @Description  Los borradores se generan como vista previa con número BORRADOR.
// @Tags         Facturación
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	doc, filename, err := h.query.PDF(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, doc, filename)
}

func sendPDF(c *fiber.Ctx, doc []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(doc)
}
