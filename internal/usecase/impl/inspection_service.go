package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fleetcheck/internal/delivery/context"
	"fleetcheck/internal/domain/entity"
	domainerrors "fleetcheck/internal/domain/errors"
	"fleetcheck/internal/domain/repository"
	"fleetcheck/internal/domain/service"
	"fleetcheck/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inspectionService implements the InspectionUsecase interface.
type inspectionService struct {
	inspectionRepo repository.InspectionRepository
	riderRepo      repository.RiderRepository
	logger         *slog.Logger
}

// InspectionServiceParams holds dependencies for inspectionService, injected by Fx.
type InspectionServiceParams struct {
	fx.In

	InspectionRepo repository.InspectionRepository
	RiderRepo      repository.RiderRepository
	Logger         *slog.Logger
}

// NewInspectionService is the constructor for inspectionService.
func NewInspectionService(params InspectionServiceParams) usecase.InspectionUsecase {
	return &inspectionService{
		inspectionRepo: params.InspectionRepo,
		riderRepo:      params.RiderRepo,
		logger:         params.Logger,
	}
}

func (srv *inspectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a new field inspection for the acting account.
func (srv *inspectionService) Create(ctx context.Context, actor *entity.Account, input *usecase.CreateInspectionInput) (*entity.Inspection, error) {
	if actor == nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("no authenticated account")
	}

	inspection := &entity.Inspection{
		RiderID:     input.RiderID,
		IDNumber:    input.IDNumber,
		InspectedBy: actor.Email,
		HelmetOK:    input.HelmetOK,
		BoxOK:       input.BoxOK,
		IDOK:        input.IDOK,
		ZoneOK:      input.ZoneOK,
		ClothesOK:   input.ClothesOK,
		WellBehaved: input.WellBehaved,
		City:        input.City,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		Comments:    input.Comments,
		Timestamp:   time.Now(),
	}

	// The subject requirement applies at creation only; later edits may
	// clear fields without re-triggering it.
	if !inspection.HasSubject() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("inspection needs a rider id, an id number or a location")
	}

	if err := srv.resolveRider(ctx, inspection); err != nil {
		return nil, err
	}

	if err := srv.inspectionRepo.Create(ctx, inspection); err != nil {
		srv.log(ctx).Warn("Failed to create inspection", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create inspection")
	}

	srv.log(ctx).Info("Inspection recorded", slog.Int64("inspectionID", inspection.ID), slog.String("inspectedBy", actor.Email))

	return inspection, nil
}

// resolveRider fills RiderID from the national ID number when possible.
// An unknown ID number is kept verbatim; field agents sometimes record
// riders that were never enrolled.
func (srv *inspectionService) resolveRider(ctx context.Context, inspection *entity.Inspection) error {
	if inspection.RiderID != nil || inspection.IDNumber == "" {
		return nil
	}

	rider, err := srv.riderRepo.FindByIDNumber(ctx, inspection.IDNumber)
	if err != nil {
		if errors.Is(err, repository.ErrRiderNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to resolve rider by id number")
	}

	inspection.RiderID = &rider.ID

	return nil
}

// Get retrieves a single inspection by ID.
func (srv *inspectionService) Get(ctx context.Context, id int64) (*entity.Inspection, error) {
	inspection, err := srv.inspectionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInspectionNotFound) {
			return nil, domainerrors.ErrInspectionNotFound.WrapMessage("inspection lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find inspection")
	}

	return inspection, nil
}

// List retrieves inspections matching the filter, newest first.
func (srv *inspectionService) List(ctx context.Context, filter repository.InspectionFilter) ([]*entity.Inspection, error) {
	inspections, err := srv.inspectionRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inspections")
	}

	return inspections, nil
}

// Update amends an inspection, subject to the ownership rule.
func (srv *inspectionService) Update(ctx context.Context, actor *entity.Account, input *usecase.UpdateInspectionInput) (*entity.Inspection, error) {
	inspection, err := srv.inspectionRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrInspectionNotFound) {
			return nil, domainerrors.ErrInspectionNotFound.WrapMessage("inspection lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find inspection")
	}

	if err := service.CanModifyInspection(actor, inspection); err != nil {
		srv.log(ctx).Warn("Inspection update forbidden", slog.Int64("inspectionID", input.ID), slog.Any("error", err))

		return nil, err
	}

	inspection.RiderID = input.RiderID
	inspection.IDNumber = input.IDNumber
	inspection.HelmetOK = input.HelmetOK
	inspection.BoxOK = input.BoxOK
	inspection.IDOK = input.IDOK
	inspection.ZoneOK = input.ZoneOK
	inspection.ClothesOK = input.ClothesOK
	inspection.WellBehaved = input.WellBehaved
	inspection.City = input.City
	inspection.Location = input.Location
	inspection.ImageURL = input.ImageURL
	inspection.Comments = input.Comments

	if err := srv.resolveRider(ctx, inspection); err != nil {
		return nil, err
	}

	if err := srv.inspectionRepo.Update(ctx, inspection); err != nil {
		if errors.Is(err, repository.ErrInspectionNotFound) {
			return nil, domainerrors.ErrInspectionNotFound.WrapMessage("inspection vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update inspection")
	}

	srv.log(ctx).Info("Inspection updated", slog.Int64("inspectionID", inspection.ID))

	return inspection, nil
}

// Delete removes an inspection, subject to the ownership rule.
func (srv *inspectionService) Delete(ctx context.Context, actor *entity.Account, id int64) error {
	inspection, err := srv.inspectionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInspectionNotFound) {
			return domainerrors.ErrInspectionNotFound.WrapMessage("inspection lookup failed")
		}

		return errors.Wrap(err, "failed to find inspection")
	}

	if err := service.CanModifyInspection(actor, inspection); err != nil {
		srv.log(ctx).Warn("Inspection delete forbidden", slog.Int64("inspectionID", id), slog.Any("error", err))

		return err
	}

	if err := srv.inspectionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInspectionNotFound) {
			return domainerrors.ErrInspectionNotFound.WrapMessage("inspection vanished during delete")
		}

		return errors.Wrap(err, "failed to delete inspection")
	}

	srv.log(ctx).Info("Inspection deleted", slog.Int64("inspectionID", id))

	return nil
}
