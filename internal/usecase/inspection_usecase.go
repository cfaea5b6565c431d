package usecase

import (
	"context"

	"fleetcheck/internal/domain/entity"
	"fleetcheck/internal/domain/repository"
)

// CreateInspectionInput defines the data required to record a field inspection.
// The inspected rider may be identified by internal ID, by national ID number,
// or not at all when only the location could be established.
type CreateInspectionInput struct {
	RiderID     *int64
	IDNumber    string
	HelmetOK    bool
	BoxOK       bool
	IDOK        bool
	ZoneOK      bool
	ClothesOK   bool
	WellBehaved bool
	City        string
	Location    string
	ImageURL    string
	Comments    string
}

// UpdateInspectionInput defines the data required to amend an inspection.
type UpdateInspectionInput struct {
	ID          int64
	RiderID     *int64
	IDNumber    string
	HelmetOK    bool
	BoxOK       bool
	IDOK        bool
	ZoneOK      bool
	ClothesOK   bool
	WellBehaved bool
	City        string
	Location    string
	ImageURL    string
	Comments    string
}

// InspectionUsecase defines the interface for inspection management operations.
// Mutating operations take the acting account so ownership rules can be applied:
// admins may touch any inspection, supervisors only the ones they recorded.
type InspectionUsecase interface {
	Create(ctx context.Context, actor *entity.Account, input *CreateInspectionInput) (*entity.Inspection, error)
	Get(ctx context.Context, id int64) (*entity.Inspection, error)
	List(ctx context.Context, filter repository.InspectionFilter) ([]*entity.Inspection, error)
	Update(ctx context.Context, actor *entity.Account, input *UpdateInspectionInput) (*entity.Inspection, error)
	Delete(ctx context.Context, actor *entity.Account, id int64) error
}
