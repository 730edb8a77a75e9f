package handler

import (
	"github.com/airspace-service/internal/pkg/utils"
	"github.com/airspace-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AirspaceHandler serves the read-only dataset views.
type AirspaceHandler struct {
	airspaceUC *usecase.AirspaceUseCase
	logger     *zap.Logger
}

func NewAirspaceHandler(airspaceUC *usecase.AirspaceUseCase, logger *zap.Logger) *AirspaceHandler {
	return &AirspaceHandler{
		airspaceUC: airspaceUC,
		logger:     logger,
	}
}

// GetIndex godoc
// @Summary Selectable airspace extras
// @Description Lists gliding sites, temporary restrictions (RAT), local agreements (LOA) and wave boxes available in the current dataset, sorted for display.
// @Tags Airspace
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.IndexResponse}
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/airspace/index [get]
func (h *AirspaceHandler) GetIndex(c *fiber.Ctx) error {
	result, err := h.airspaceUC.GetIndex(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetRelease godoc
// @Summary Dataset release metadata
// @Description Returns the AIRAC cycle date, release note and commit of the loaded dataset.
// @Tags Airspace
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ReleaseResponse}
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/airspace/release [get]
func (h *AirspaceHandler) GetRelease(c *fiber.Ctx) error {
	result, err := h.airspaceUC.GetRelease(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
