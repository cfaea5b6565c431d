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

// inspectionRepository implements the domain's InspectionRepository interface using GORM.
type inspectionRepository struct {
	db *gorm.DB
}

// NewInspectionRepository is the constructor for inspectionRepository.
func NewInspectionRepository(db *gorm.DB) repository.InspectionRepository {
	return &inspectionRepository{db: db}
}

// FindByID retrieves a single inspection by its unique ID.
func (repo *inspectionRepository) FindByID(ctx context.Context, id int64) (*entity.Inspection, error) {
	var inspectionM model.InspectionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&inspectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInspectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find inspection by id")
	}

	return toInspectionDomain(&inspectionM), nil
}

// List retrieves inspections matching the filter, newest first.
func (repo *inspectionRepository) List(ctx context.Context, filter repository.InspectionFilter) ([]*entity.Inspection, error) {
	query := repo.db.WithContext(ctx).Model(&model.InspectionModel{})
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}

	var inspectionMs []*model.InspectionModel
	if err := query.Order("timestamp DESC").Find(&inspectionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list inspections")
	}

	inspections := make([]*entity.Inspection, 0, len(inspectionMs))
	for _, inspectionM := range inspectionMs {
		inspections = append(inspections, toInspectionDomain(inspectionM))
	}

	return inspections, nil
}

// Create persists a new inspection entity to the database.
func (repo *inspectionRepository) Create(ctx context.Context, inspection *entity.Inspection) error {
	inspectionM := fromInspectionDomain(inspection)

	if err := repo.db.WithContext(ctx).Create(inspectionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRiderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inspection")
	}

	inspection.ID = inspectionM.ID

	return nil
}

// Update modifies an existing inspection entity in the database.
func (repo *inspectionRepository) Update(ctx context.Context, inspection *entity.Inspection) error {
	inspectionM := fromInspectionDomain(inspection)

	// Updates with a map so false booleans and cleared strings are written too.
	result := repo.db.WithContext(ctx).Model(&model.InspectionModel{}).
		Where("id = ?", inspectionM.ID).
		Updates(map[string]any{
			"rider_id":     inspectionM.RiderID,
			"id_number":    inspectionM.IDNumber,
			"helmet_ok":    inspectionM.HelmetOK,
			"box_ok":       inspectionM.BoxOK,
			"id_ok":        inspectionM.IDOK,
			"zone_ok":      inspectionM.ZoneOK,
			"clothes_ok":   inspectionM.ClothesOK,
			"well_behaved": inspectionM.WellBehaved,
			"city":         inspectionM.City,
			"location":     inspectionM.Location,
			"image_url":    inspectionM.ImageURL,
			"comments":     inspectionM.Comments,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrRiderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inspection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInspectionNotFound
	}

	return nil
}

// Delete removes an inspection by ID.
func (repo *inspectionRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InspectionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete inspection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInspectionNotFound
	}

	return nil
}

// toInspectionDomain converts a GORM InspectionModel to a domain Inspection entity.
func toInspectionDomain(data *model.InspectionModel) *entity.Inspection {
	if data == nil {
		return nil
	}

	return &entity.Inspection{
		ID:          data.ID,
		RiderID:     data.RiderID,
		IDNumber:    data.IDNumber,
		InspectedBy: data.InspectedBy,
		HelmetOK:    data.HelmetOK,
		BoxOK:       data.BoxOK,
		IDOK:        data.IDOK,
		ZoneOK:      data.ZoneOK,
		ClothesOK:   data.ClothesOK,
		WellBehaved: data.WellBehaved,
		City:        data.City,
		Location:    data.Location,
		ImageURL:    data.ImageURL,
		Comments:    data.Comments,
		Timestamp:   data.Timestamp,
	}
}

// fromInspectionDomain converts a domain Inspection entity to a GORM InspectionModel for persistence.
func fromInspectionDomain(data *entity.Inspection) *model.InspectionModel {
	if data == nil {
		return nil
	}

	return &model.InspectionModel{
		ID:          data.ID,
		RiderID:     data.RiderID,
		IDNumber:    data.IDNumber,
		InspectedBy: data.InspectedBy,
		HelmetOK:    data.HelmetOK,
		BoxOK:       data.BoxOK,
		IDOK:        data.IDOK,
		ZoneOK:      data.ZoneOK,
		ClothesOK:   data.ClothesOK,
		WellBehaved: data.WellBehaved,
		City:        data.City,
		Location:    data.Location,
		ImageURL:    data.ImageURL,
		Comments:    data.Comments,
		Timestamp:   data.Timestamp,
	}
}
