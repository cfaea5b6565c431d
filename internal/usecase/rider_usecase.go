package usecase

import (
	"context"

	"fleetcheck/internal/domain/entity"
)

// CreateRiderInput defines the data required to enroll a new rider.
type CreateRiderInput struct {
	FirstName   string
	LastName    string
	IDNumber    string
	CityCode    string
	VehicleType string
}

// UpdateRiderInput defines the data required to update an existing rider.
type UpdateRiderInput struct {
	ID          int64
	FirstName   string
	LastName    string
	IDNumber    string
	CityCode    string
	VehicleType string
}

// RiderUsecase defines the interface for rider management operations.
type RiderUsecase interface {
	Create(ctx context.Context, input *CreateRiderInput) (*entity.Rider, error)
	Get(ctx context.Context, id int64) (*entity.Rider, error)
	List(ctx context.Context) ([]*entity.Rider, error)
	Update(ctx context.Context, input *UpdateRiderInput) (*entity.Rider, error)
	Delete(ctx context.Context, id int64) error
}
