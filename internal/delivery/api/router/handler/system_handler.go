package handler

import (
	"taskhub/internal/delivery/api/response"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

type initResponse struct {
	Success bool                              `json:"success"`
	Message string                            `json:"message"`
	Driver  string                            `json:"driver"`
	Tables  []string                          `json:"tables"`
	Status  map[string]repository.TableStatus `json:"status"`
}

// SystemHandler serves operational endpoints that need no authentication.
type SystemHandler struct {
	uc usecase.StoreUsecase
}

// NewSystemHandler is the constructor for SystemHandler, injected by Fx.
func NewSystemHandler(uc usecase.StoreUsecase) *SystemHandler {
	return &SystemHandler{uc: uc}
}

// InitStore handles GET /api/init: it creates missing collections and reports their state.
func (h *SystemHandler) InitStore(c echo.Context) error {
	status, err := h.uc.Initialize(c.Request().Context())
	if err != nil {
		return response.Operation(err, "Failed to initialize database")
	}

	return ok(c, initResponse{
		Success: true,
		Message: "Database initialized successfully",
		Driver:  status.Driver,
		Tables:  status.Tables,
		Status:  status.Status,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return ok(c, map[string]string{"status": "ok"})
}
