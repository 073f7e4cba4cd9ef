package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"laundrypro/internal/delivery/http/middleware"
	"laundrypro/internal/delivery/http/response"
	"laundrypro/internal/domain/entity"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for service and branch catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListServices returns catalog services. Public callers see active services
// only; staff and admins may include inactive ones.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	input := usecase.ListServicesInput{}

	if raw := c.QueryParam("category"); raw != "" {
		category := entity.ServiceCategory(strings.ToUpper(raw))
		input.Category = &category
	}
	if raw := c.QueryParam("branch_id"); raw != "" {
		branchID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid branch_id format")
		}
		input.BranchID = &branchID
	}
	if c.QueryParam("include_inactive") == "true" {
		if actor, ok := middleware.ActorFromContext(c); ok && actor.IsStaff() {
			input.IncludeInactive = true
		}
	}

	services, err := h.uc.ListServices(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "Services retrieved successfully")
}

// GetService fetches one catalog service.
func (h *CatalogHandler) GetService(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	svc, err := h.uc.GetService(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "Service retrieved successfully")
}

// CreateServiceRequest represents the request body for adding a catalog
// service.
type CreateServiceRequest struct {
	Name             string                 `json:"name" validate:"required"`
	Category         entity.ServiceCategory `json:"category" validate:"required"`
	ServiceType      string                 `json:"service_type,omitempty"`
	BasePrice        float64                `json:"base_price" validate:"required,gt=0"`
	PricingUnit      string                 `json:"pricing_unit,omitempty"`
	EstimatedHours   int                    `json:"estimated_hours,omitempty"`
	IsExpress        bool                   `json:"is_express"`
	BranchID         *uuid.UUID             `json:"branch_id,omitempty"`
	Description      string                 `json:"description,omitempty"`
	CareInstructions string                 `json:"care_instructions,omitempty"`
}

// CreateService adds a service to the catalog.
func (h *CatalogHandler) CreateService(c echo.Context) error {
	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc, err := h.uc.CreateService(c.Request().Context(), usecase.CreateServiceInput{
		Name:             req.Name,
		Category:         req.Category,
		ServiceType:      req.ServiceType,
		BasePrice:        req.BasePrice,
		PricingUnit:      req.PricingUnit,
		EstimatedHours:   req.EstimatedHours,
		IsExpress:        req.IsExpress,
		BranchID:         req.BranchID,
		Description:      req.Description,
		CareInstructions: req.CareInstructions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, svc, "Service created successfully")
}

// UpdateServiceRequest represents the request body for partial service
// changes. Absent fields are left unchanged.
type UpdateServiceRequest struct {
	Name             *string                 `json:"name,omitempty"`
	Category         *entity.ServiceCategory `json:"category,omitempty"`
	BasePrice        *float64                `json:"base_price,omitempty"`
	PricingUnit      *string                 `json:"pricing_unit,omitempty"`
	EstimatedHours   *int                    `json:"estimated_hours,omitempty"`
	IsExpress        *bool                   `json:"is_express,omitempty"`
	Description      *string                 `json:"description,omitempty"`
	CareInstructions *string                 `json:"care_instructions,omitempty"`
	IsActive         *bool                   `json:"is_active,omitempty"`
}

// UpdateService applies partial changes to a catalog service.
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	svc, err := h.uc.UpdateService(c.Request().Context(), id, usecase.UpdateServiceInput{
		Name:             req.Name,
		Category:         req.Category,
		BasePrice:        req.BasePrice,
		PricingUnit:      req.PricingUnit,
		EstimatedHours:   req.EstimatedHours,
		IsExpress:        req.IsExpress,
		Description:      req.Description,
		CareInstructions: req.CareInstructions,
		IsActive:         req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "Service updated successfully")
}

// DeleteService removes a service, deactivating it instead when orders still
// reference it.
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteService(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"}, "Service deleted successfully")
}

// ListBranches returns branches. Admins get order and staff counts attached.
func (h *CatalogHandler) ListBranches(c echo.Context) error {
	ctx := c.Request().Context()

	if actor, ok := middleware.ActorFromContext(c); ok && actor.IsAdmin() && c.QueryParam("stats") == "true" {
		branches, err := h.uc.ListBranchesWithStats(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, branches, "Branches retrieved successfully")
	}

	branches, err := h.uc.ListBranches(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, branches, "Branches retrieved successfully")
}

// GetBranch fetches one branch.
func (h *CatalogHandler) GetBranch(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	branch, err := h.uc.GetBranch(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, branch, "Branch retrieved successfully")
}

// NearbyBranches returns active branches ordered by distance from the given
// point, closest first.
func (h *CatalogHandler) NearbyBranches(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid lat parameter")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid lng parameter")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	branches, err := h.uc.NearbyBranches(c.Request().Context(), lat, lng, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, branches, "Nearby branches retrieved successfully")
}

// CreateBranchRequest represents the request body for adding a branch.
type CreateBranchRequest struct {
	Name         string              `json:"name" validate:"required"`
	Address      string              `json:"address" validate:"required"`
	City         string              `json:"city,omitempty"`
	State        string              `json:"state,omitempty"`
	LGA          string              `json:"lga,omitempty"`
	Phone        string              `json:"phone,omitempty"`
	Email        string              `json:"email,omitempty" validate:"omitempty,email"`
	Coordinates  *entity.Coordinates `json:"coordinates,omitempty"`
	OpeningHours entity.OpeningHours `json:"opening_hours,omitempty"`
}

// CreateBranch adds a branch location.
func (h *CatalogHandler) CreateBranch(c echo.Context) error {
	var req CreateBranchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branch input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	branch, err := h.uc.CreateBranch(c.Request().Context(), usecase.CreateBranchInput{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		LGA:          req.LGA,
		Phone:        req.Phone,
		Email:        req.Email,
		Coordinates:  req.Coordinates,
		OpeningHours: req.OpeningHours,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, branch, "Branch created successfully")
}

// UpdateBranchRequest represents the request body for partial branch changes.
// Absent fields are left unchanged.
type UpdateBranchRequest struct {
	Name         *string             `json:"name,omitempty"`
	Address      *string             `json:"address,omitempty"`
	City         *string             `json:"city,omitempty"`
	State        *string             `json:"state,omitempty"`
	LGA          *string             `json:"lga,omitempty"`
	Phone        *string             `json:"phone,omitempty"`
	Email        *string             `json:"email,omitempty" validate:"omitempty,email"`
	Coordinates  *entity.Coordinates `json:"coordinates,omitempty"`
	OpeningHours entity.OpeningHours `json:"opening_hours,omitempty"`
	IsActive     *bool               `json:"is_active,omitempty"`
}

// UpdateBranch applies partial changes to a branch.
func (h *CatalogHandler) UpdateBranch(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateBranchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branch input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	branch, err := h.uc.UpdateBranch(c.Request().Context(), id, usecase.UpdateBranchInput{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		LGA:          req.LGA,
		Phone:        req.Phone,
		Email:        req.Email,
		Coordinates:  req.Coordinates,
		OpeningHours: req.OpeningHours,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, branch, "Branch updated successfully")
}
