package usecase

import (
	"context"

	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListServicesInput narrows the public service catalog listing.
type ListServicesInput struct {
	Category *entity.ServiceCategory
	BranchID *uuid.UUID
	// IncludeInactive is honored for staff and admin callers only.
	IncludeInactive bool
}

// CreateServiceInput defines a new catalog service.
type CreateServiceInput struct {
	Name             string
	Category         entity.ServiceCategory
	ServiceType      string
	BasePrice        float64
	PricingUnit      string
	EstimatedHours   int
	IsExpress        bool
	BranchID         *uuid.UUID
	Description      string
	CareInstructions string
}

// UpdateServiceInput defines partial service changes. Nil fields are left
// unchanged.
type UpdateServiceInput struct {
	Name             *string
	Category         *entity.ServiceCategory
	BasePrice        *float64
	PricingUnit      *string
	EstimatedHours   *int
	IsExpress        *bool
	Description      *string
	CareInstructions *string
	IsActive         *bool
}

// CreateBranchInput defines a new branch location.
type CreateBranchInput struct {
	Name         string
	Address      string
	City         string
	State        string
	LGA          string
	Phone        string
	Email        string
	Coordinates  *entity.Coordinates
	OpeningHours entity.OpeningHours
}

// UpdateBranchInput defines partial branch changes. Nil fields are left
// unchanged.
type UpdateBranchInput struct {
	Name         *string
	Address      *string
	City         *string
	State        *string
	LGA          *string
	Phone        *string
	Email        *string
	Coordinates  *entity.Coordinates
	OpeningHours entity.OpeningHours
	IsActive     *bool
}

// --- Output DTOs ---

// NearbyBranch pairs a branch with its distance from the queried point.
type NearbyBranch struct {
	Branch         *entity.Branch `json:"branch"`
	DistanceMeters float64        `json:"distance_meters"`
}

// CatalogUsecase defines the interface for service and branch catalog
// operations.
type CatalogUsecase interface {
	// ListServices returns catalog services, active only for public callers.
	ListServices(ctx context.Context, input ListServicesInput) ([]*entity.Service, error)

	// GetService fetches one catalog service.
	GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// CreateService adds a service to the catalog.
	CreateService(ctx context.Context, input CreateServiceInput) (*entity.Service, error)

	// UpdateService applies partial changes to a service.
	UpdateService(ctx context.Context, id uuid.UUID, input UpdateServiceInput) (*entity.Service, error)

	// DeleteService removes a service. Services still referenced by orders
	// are deactivated instead of deleted so order history stays intact.
	DeleteService(ctx context.Context, id uuid.UUID) error

	// ListBranches returns active branches for customer-facing listings.
	ListBranches(ctx context.Context) ([]*entity.Branch, error)

	// ListBranchesWithStats returns every branch with order and staff counts
	// for the admin overview.
	ListBranchesWithStats(ctx context.Context) ([]*entity.Branch, error)

	// GetBranch fetches one branch.
	GetBranch(ctx context.Context, id uuid.UUID) (*entity.Branch, error)

	// NearbyBranches returns active branches ordered by distance from the
	// given point, closest first.
	NearbyBranches(ctx context.Context, lat, lng float64, limit int) ([]NearbyBranch, error)

	// CreateBranch adds a branch location.
	CreateBranch(ctx context.Context, input CreateBranchInput) (*entity.Branch, error)

	// UpdateBranch applies partial changes to a branch.
	UpdateBranch(ctx context.Context, id uuid.UUID, input UpdateBranchInput) (*entity.Branch, error)
}
