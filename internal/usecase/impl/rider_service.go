package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fleetcheck/internal/delivery/context"
	"fleetcheck/internal/domain/entity"
	domainerrors "fleetcheck/internal/domain/errors"
	"fleetcheck/internal/domain/repository"
	"fleetcheck/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// riderService implements the RiderUsecase interface.
type riderService struct {
	riderRepo repository.RiderRepository
	logger    *slog.Logger
}

// RiderServiceParams holds dependencies for riderService, injected by Fx.
type RiderServiceParams struct {
	fx.In

	RiderRepo repository.RiderRepository
	Logger    *slog.Logger
}

// NewRiderService is the constructor for riderService.
func NewRiderService(params RiderServiceParams) usecase.RiderUsecase {
	return &riderService{
		riderRepo: params.RiderRepo,
		logger:    params.Logger,
	}
}

func (srv *riderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create enrolls a new rider.
func (srv *riderService) Create(ctx context.Context, input *usecase.CreateRiderInput) (*entity.Rider, error) {
	if input.FirstName == "" || input.LastName == "" || input.IDNumber == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("first name, last name and id number are required")
	}

	rider := &entity.Rider{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		IDNumber:    input.IDNumber,
		CityCode:    input.CityCode,
		VehicleType: input.VehicleType,
		JoinedAt:    time.Now(),
	}

	if err := srv.riderRepo.Create(ctx, rider); err != nil {
		srv.log(ctx).Warn("Failed to create rider", slog.String("idNumber", input.IDNumber), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create rider")
	}

	srv.log(ctx).Info("Rider enrolled", slog.Int64("riderID", rider.ID))

	return rider, nil
}

// Get retrieves a single rider by ID.
func (srv *riderService) Get(ctx context.Context, id int64) (*entity.Rider, error) {
	rider, err := srv.riderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRiderNotFound) {
			return nil, domainerrors.ErrRiderNotFound.WrapMessage("rider lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find rider")
	}

	return rider, nil
}

// List retrieves all riders.
func (srv *riderService) List(ctx context.Context) ([]*entity.Rider, error) {
	riders, err := srv.riderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list riders")
	}

	return riders, nil
}

// Update modifies an existing rider.
func (srv *riderService) Update(ctx context.Context, input *usecase.UpdateRiderInput) (*entity.Rider, error) {
	rider, err := srv.riderRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrRiderNotFound) {
			return nil, domainerrors.ErrRiderNotFound.WrapMessage("rider lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find rider")
	}

	if input.FirstName != "" {
		rider.FirstName = input.FirstName
	}
	if input.LastName != "" {
		rider.LastName = input.LastName
	}
	if input.IDNumber != "" {
		rider.IDNumber = input.IDNumber
	}
	if input.CityCode != "" {
		rider.CityCode = input.CityCode
	}
	if input.VehicleType != "" {
		rider.VehicleType = input.VehicleType
	}

	if err := srv.riderRepo.Update(ctx, rider); err != nil {
		if errors.Is(err, repository.ErrRiderNotFound) {
			return nil, domainerrors.ErrRiderNotFound.WrapMessage("rider vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update rider")
	}

	srv.log(ctx).Info("Rider updated", slog.Int64("riderID", rider.ID))

	return rider, nil
}

// Delete removes a rider by ID.
func (srv *riderService) Delete(ctx context.Context, id int64) error {
	if err := srv.riderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRiderNotFound) {
			return domainerrors.ErrRiderNotFound.WrapMessage("rider lookup failed")
		}

		return errors.Wrap(err, "failed to delete rider")
	}

	srv.log(ctx).Info("Rider deleted", slog.Int64("riderID", id))

	return nil
}
