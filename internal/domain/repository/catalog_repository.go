package repository

import (
	"context"
	"errors"

	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrServiceNotFound is returned when a laundry service is not found.
	ErrServiceNotFound = errors.New("service not found")
	// ErrBranchNotFound is returned when a branch is not found.
	ErrBranchNotFound = errors.New("branch not found")
)

// ServiceFilter narrows service listings. Nil fields are ignored.
type ServiceFilter struct {
	Category   *entity.ServiceCategory
	BranchID   *uuid.UUID
	ActiveOnly bool
}

// CatalogRepository defines the interface for service and branch persistence.
type CatalogRepository interface {
	// FindServiceByID retrieves a single laundry service by its unique ID.
	FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// ListServices retrieves services matching the filter, ordered by name.
	ListServices(ctx context.Context, filter ServiceFilter) ([]*entity.Service, error)

	// CreateService persists a new laundry service.
	CreateService(ctx context.Context, service *entity.Service) error

	// UpdateService modifies an existing laundry service.
	UpdateService(ctx context.Context, service *entity.Service) error

	// DeleteService removes a laundry service permanently. Callers soft
	// deactivate instead when orders still reference the service.
	DeleteService(ctx context.Context, id uuid.UUID) error

	// FindBranchByID retrieves a single branch by its unique ID.
	FindBranchByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)

	// ListBranches retrieves branches, active ones first.
	ListBranches(ctx context.Context, activeOnly bool) ([]*entity.Branch, error)

	// ListBranchesWithStats retrieves branches together with their order and
	// staff counts for the admin overview.
	ListBranchesWithStats(ctx context.Context) ([]*entity.Branch, error)

	// CreateBranch persists a new branch.
	CreateBranch(ctx context.Context, branch *entity.Branch) error

	// UpdateBranch modifies an existing branch.
	UpdateBranch(ctx context.Context, branch *entity.Branch) error
}
