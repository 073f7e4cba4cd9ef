package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"laundrypro/internal/delivery/http/response"
	"laundrypro/internal/domain/entity"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IssueHandler holds dependencies for the issue workflow handlers.
type IssueHandler struct {
	uc     usecase.IssueUsecase
	logger *slog.Logger
}

// NewIssueHandler is the constructor for IssueHandler, injected by Fx.
func NewIssueHandler(uc usecase.IssueUsecase, logger *slog.Logger) *IssueHandler {
	return &IssueHandler{
		uc:     uc,
		logger: logger,
	}
}

// ReportIssueRequest represents the request body for reporting a problem.
type ReportIssueRequest struct {
	OrderID     *uuid.UUID `json:"order_id,omitempty"`
	IssueType   string     `json:"issue_type" validate:"required"`
	Severity    string     `json:"severity" validate:"required"`
	Description string     `json:"description" validate:"required"`
}

// ReportIssue records a new issue for the authenticated user.
func (h *IssueHandler) ReportIssue(c echo.Context) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	var req ReportIssueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid issue input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	issue, err := h.uc.ReportIssue(c.Request().Context(), actor, usecase.ReportIssueInput{
		OrderID:     req.OrderID,
		IssueType:   entity.IssueType(strings.ToLower(req.IssueType)),
		Severity:    entity.IssueSeverity(strings.ToLower(req.Severity)),
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, issue, "Issue reported successfully")
}

// ListIssues returns issues for the admin screens, most severe first.
func (h *IssueHandler) ListIssues(c echo.Context) error {
	input := usecase.ListIssuesInput{}
	input.Limit, input.Offset = listPagination(c)

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.IssueStatus(strings.ToUpper(raw))
		input.Status = &status
	}
	if raw := c.QueryParam("severity"); raw != "" {
		severity := entity.IssueSeverity(strings.ToLower(raw))
		input.Severity = &severity
	}

	issues, err := h.uc.ListIssues(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, issues, "Issues retrieved successfully")
}

// GetIssue fetches one issue with its order and reporter.
func (h *IssueHandler) GetIssue(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	issue, err := h.uc.GetIssue(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, issue, "Issue retrieved successfully")
}

// ResolveIssueRequest represents the request body for resolving an issue.
type ResolveIssueRequest struct {
	ResolutionNotes    string   `json:"resolution_notes" validate:"required"`
	CompensationAmount *float64 `json:"compensation_amount,omitempty"`
	CompensationType   string   `json:"compensation_type,omitempty"`
}

// ResolveIssue moves an issue to RESOLVED and notifies the reporter.
func (h *IssueHandler) ResolveIssue(c echo.Context) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	issueID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ResolveIssueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolution input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	issue, err := h.uc.ResolveIssue(c.Request().Context(), actor, issueID, usecase.ResolveIssueInput{
		ResolutionNotes:    req.ResolutionNotes,
		CompensationAmount: req.CompensationAmount,
		CompensationType:   req.CompensationType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, issue, "Issue resolved successfully")
}
