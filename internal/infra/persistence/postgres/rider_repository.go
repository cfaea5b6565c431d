package postgres

import (
	"context"

	"fleetcheck/internal/domain/entity"
	domainerrors "fleetcheck/internal/domain/errors"
	"fleetcheck/internal/domain/repository"
	"fleetcheck/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// riderRepository implements the domain's RiderRepository interface using GORM.
type riderRepository struct {
	db *gorm.DB
}

// NewRiderRepository is the constructor for riderRepository.
func NewRiderRepository(db *gorm.DB) repository.RiderRepository {
	return &riderRepository{db: db}
}

// FindByID retrieves a single rider by its unique ID.
func (repo *riderRepository) FindByID(ctx context.Context, id int64) (*entity.Rider, error) {
	var riderM model.RiderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&riderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRiderNotFound
		}

		return nil, errors.Wrap(err, "failed to find rider by id")
	}

	return toRiderDomain(&riderM), nil
}

// FindByIDNumber retrieves a single rider by national ID number.
func (repo *riderRepository) FindByIDNumber(ctx context.Context, idNumber string) (*entity.Rider, error) {
	var riderM model.RiderModel
	if err := repo.db.WithContext(ctx).Where("id_number = ?", idNumber).First(&riderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRiderNotFound
		}

		return nil, errors.Wrap(err, "failed to find rider by id number")
	}

	return toRiderDomain(&riderM), nil
}

// List retrieves all riders.
func (repo *riderRepository) List(ctx context.Context) ([]*entity.Rider, error) {
	var riderMs []*model.RiderModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&riderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list riders")
	}

	riders := make([]*entity.Rider, 0, len(riderMs))
	for _, riderM := range riderMs {
		riders = append(riders, toRiderDomain(riderM))
	}

	return riders, nil
}

// Create persists a new rider entity to the database.
func (repo *riderRepository) Create(ctx context.Context, rider *entity.Rider) error {
	riderM := fromRiderDomain(rider)

	if err := repo.db.WithContext(ctx).Create(riderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("id number already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rider")
	}

	rider.ID = riderM.ID

	return nil
}

// Update modifies an existing rider entity in the database.
func (repo *riderRepository) Update(ctx context.Context, rider *entity.Rider) error {
	riderM := fromRiderDomain(rider)

	result := repo.db.WithContext(ctx).Model(&model.RiderModel{}).
		Where("id = ?", riderM.ID).
		Updates(map[string]any{
			"first_name":   riderM.FirstName,
			"last_name":    riderM.LastName,
			"id_number":    riderM.IDNumber,
			"city_code":    riderM.CityCode,
			"vehicle_type": riderM.VehicleType,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("id number already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rider")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRiderNotFound
	}

	return nil
}

// Delete removes a rider by ID.
func (repo *riderRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RiderModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("rider has recorded inspections")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete rider")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRiderNotFound
	}

	return nil
}

// toRiderDomain converts a GORM RiderModel to a domain Rider entity.
func toRiderDomain(data *model.RiderModel) *entity.Rider {
	if data == nil {
		return nil
	}

	return &entity.Rider{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		IDNumber:    data.IDNumber,
		CityCode:    data.CityCode,
		VehicleType: data.VehicleType,
		JoinedAt:    data.JoinedAt,
	}
}

// fromRiderDomain converts a domain Rider entity to a GORM RiderModel for persistence.
func fromRiderDomain(data *entity.Rider) *model.RiderModel {
	if data == nil {
		return nil
	}

	return &model.RiderModel{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		IDNumber:    data.IDNumber,
		CityCode:    data.CityCode,
		VehicleType: data.VehicleType,
		JoinedAt:    data.JoinedAt,
	}
}
