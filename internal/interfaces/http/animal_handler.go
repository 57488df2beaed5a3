package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/application/usecase"
)

// AnimalHandler maneja las peticiones HTTP del registro de animales.
type AnimalHandler struct {
	uc *usecase.AnimalUseCase
}

// NewAnimalHandler construye el handler.
func NewAnimalHandler(uc *usecase.AnimalUseCase) *AnimalHandler {
	return &AnimalHandler{uc: uc}
}

// Create POST /api/animals
// @Summary      Alta de animal
// @Tags         Animales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.AnimalRequest  true  "Animal"
// @Success      201   {object}  dto.AnimalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/animals [post]
func (h *AnimalHandler) Create(c *fiber.Ctx) error {
	var in dto.AnimalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := checkUUID("client_id", strings.TrimSpace(in.ClientID)); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/animals?client_id=&status=&repro_status=&crotal=&entry_from=&entry_to=
// @Summary      Listar animales
// @Tags         Animales
// @Produce      json
// @Security     BearerAuth
// @Param        client_id     query     string  false  "Cliente"
// @Param        status        query     string  false  "ACTIVE | SOLD | DECEASED | HISTORIC"
// @Param        repro_status  query     string  false  "EMPTY | INSEMINATED | PREGNANT"
// @Param        crotal        query     string  false  "Búsqueda parcial"
// @Param        entry_from    query     string  false  "YYYY-MM-DD"
// @Param        entry_to      query     string  false  "YYYY-MM-DD"
// @Success      200           {object}  dto.ListResponse[dto.AnimalResponse]
// @Failure      400           {object}  dto.ErrorResponse
// @Router       /api/animals [get]
func (h *AnimalHandler) List(c *fiber.Ctx) error {
	var q dto.AnimalListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if err := checkUUID("client_id", q.ClientID); err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.List(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Export GET /api/animals/export?format=xlsx|pdf
// @Summary      Exportar listado de animales
// @Description  Acepta los mismos filtros que el listado.
// @Tags         Animales
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        format  query  string  false  "xlsx (defecto) | pdf"
// @Success      200     {file}    binary
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/animals/export [get]
func (h *AnimalHandler) Export(c *fiber.Ctx) error {
	var q dto.AnimalListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if err := checkUUID("client_id", q.ClientID); err != nil {
		return writeError(c, err)
	}
	file, err := h.uc.Export(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Content)
}

// GetByID GET /api/animals/:id
// @Summary      Obtener animal
// @Tags         Animales
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID del animal"
// @Success      200  {object}  dto.AnimalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/animals/{id} [get]
func (h *AnimalHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/animals/:id
// @Summary      Actualizar animal
// @Tags         Animales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "ID del animal"
// @Param        body  body      dto.AnimalRequest  true  "Animal"
// @Success      200   {object}  dto.AnimalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/animals/{id} [put]
func (h *AnimalHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.AnimalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := checkUUID("client_id", strings.TrimSpace(in.ClientID)); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/animals/:id
// @Summary      Eliminar animal
// @Tags         Animales
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del animal"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/animals/{id} [delete]
func (h *AnimalHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
