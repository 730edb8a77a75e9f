package handler

import (
	"fmt"

	"github.com/airspace-service/internal/domain"
	"github.com/airspace-service/internal/pkg/errors"
	"github.com/airspace-service/internal/pkg/utils"
	"github.com/airspace-service/internal/pkg/validator"
	"github.com/airspace-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConvertHandler turns a settings record into an OpenAir download.
type ConvertHandler struct {
	convertUC *usecase.ConvertUseCase
	logger    *zap.Logger
}

func NewConvertHandler(convertUC *usecase.ConvertUseCase, logger *zap.Logger) *ConvertHandler {
	return &ConvertHandler{
		convertUC: convertUC,
		logger:    logger,
	}
}

// Convert godoc
// @Summary Export OpenAir airspace file
// @Description Runs a conversion with the posted settings and responds with the OpenAir text as a file download. An empty body exports the base airspace with defaults.
// @Tags Convert
// @Accept json
// @Produce plain
// @Param settings body domain.Settings false "Export selection"
// @Success 200 {string} string "OpenAir document"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/convert [post]
func (h *ConvertHandler) Convert(c *fiber.Ctx) error {
	settings, err := domain.DecodeSettings(c.Body())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&settings); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		}))
	}

	// The caller's user agent identifies the client in the file header,
	// for support diagnostics.
	clientID := c.Get(fiber.HeaderUserAgent)

	result, err := h.convertUC.Convert(c.Context(), settings, clientID)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", result.Filename))
	return c.SendString(result.Text)
}
