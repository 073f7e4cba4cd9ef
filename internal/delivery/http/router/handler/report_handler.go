package handler

import (
	"log/slog"
	"net/http"

	"laundrypro/internal/delivery/http/response"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for the admin reporting handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: logger,
	}
}

// reportInput reads the window and optional branch scope from the query.
func reportInput(c echo.Context) (usecase.ReportInput, error) {
	input := usecase.ReportInput{Window: c.QueryParam("window")}
	if input.Window == "" {
		input.Window = usecase.WindowToday
	}

	if raw := c.QueryParam("branch_id"); raw != "" {
		branchID, err := uuid.Parse(raw)
		if err != nil {
			return input, response.BadRequest(c, "INVALID_ID", "Invalid branch_id format")
		}
		input.BranchID = &branchID
	}

	return input, nil
}

// Dashboard aggregates order, revenue and issue figures over the window.
func (h *ReportHandler) Dashboard(c echo.Context) error {
	input, err := reportInput(c)
	if err != nil {
		return err
	}

	dashboard, err := h.uc.Dashboard(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "Dashboard retrieved successfully")
}

// Revenue returns per-day order counts and revenue over the window.
func (h *ReportHandler) Revenue(c echo.Context) error {
	input, err := reportInput(c)
	if err != nil {
		return err
	}

	revenue, err := h.uc.Revenue(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, revenue, "Revenue report retrieved successfully")
}

// StaffPerformance returns per-staff workload aggregates, busiest first.
func (h *ReportHandler) StaffPerformance(c echo.Context) error {
	input, err := reportInput(c)
	if err != nil {
		return err
	}

	entries, err := h.uc.StaffPerformance(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Staff performance retrieved successfully")
}
