package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/application/usecase"
)

// SettingsHandler datos del emisor que aparecen en las facturas.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetIssuer GET /api/settings/issuer
// @Summary      Datos del emisor
// @Tags         Ajustes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.IssuerSettingsDTO
// @Router       /api/settings/issuer [get]
func (h *SettingsHandler) GetIssuer(c *fiber.Ctx) error {
	out, err := h.uc.GetIssuer(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SaveIssuer PUT /api/settings/issuer
// @Summary      Guardar datos del emisor
// @Tags         Ajustes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.IssuerSettingsDTO  true  "Emisor"
// @Success      200   {object}  dto.IssuerSettingsDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/issuer [put]
func (h *SettingsHandler) SaveIssuer(c *fiber.Ctx) error {
	var in dto.IssuerSettingsDTO
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SaveIssuer(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
