package impl

import (
	"context"
	"testing"

	"fleetcheck/internal/domain/entity"
	domainerrors "fleetcheck/internal/domain/errors"
	"fleetcheck/internal/domain/repository"
	"fleetcheck/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestInspectionService(riders []*entity.Rider, inspections ...*entity.Inspection) (usecase.InspectionUsecase, *fakeInspectionRepo) {
	inspectionRepo := newFakeInspectionRepo(inspections...)
	service := NewInspectionService(InspectionServiceParams{
		InspectionRepo: inspectionRepo,
		RiderRepo:      newFakeRiderRepo(riders...),
		Logger:         newDiscardLogger(),
	})

	return service, inspectionRepo
}

func supervisor(email string) *entity.Account {
	return &entity.Account{Email: email, Role: entity.RoleSupervisor, Verified: true}
}

func admin(email string) *entity.Account {
	return &entity.Account{Email: email, Role: entity.RoleAdmin, Verified: true}
}

func TestInspectionService_Create_ResolvesRiderByIDNumber(t *testing.T) {
	service, _ := createTestInspectionService([]*entity.Rider{
		{ID: 11, FirstName: "Amir", LastName: "Hassan", IDNumber: "A123456"},
	})

	inspection, err := service.Create(context.Background(), supervisor("s1@fleet.test"), &usecase.CreateInspectionInput{
		IDNumber: "A123456",
		HelmetOK: true,
		City:     "Riyadh",
	})

	require.NoError(t, err)
	require.NotNil(t, inspection.RiderID)
	assert.Equal(t, int64(11), *inspection.RiderID)
	assert.Equal(t, "s1@fleet.test", inspection.InspectedBy)
	assert.False(t, inspection.Timestamp.IsZero())
}

func TestInspectionService_Create_UnknownIDNumberKeptVerbatim(t *testing.T) {
	service, _ := createTestInspectionService(nil)

	inspection, err := service.Create(context.Background(), supervisor("s1@fleet.test"), &usecase.CreateInspectionInput{
		IDNumber: "UNENROLLED-99",
	})

	require.NoError(t, err)
	assert.Nil(t, inspection.RiderID)
	assert.Equal(t, "UNENROLLED-99", inspection.IDNumber)
}

func TestInspectionService_Create_LocationOnlyIsEnough(t *testing.T) {
	service, _ := createTestInspectionService(nil)

	inspection, err := service.Create(context.Background(), supervisor("s1@fleet.test"), &usecase.CreateInspectionInput{
		Location: "King Fahd Road / Exit 9",
	})

	require.NoError(t, err)
	assert.Nil(t, inspection.RiderID)
}

func TestInspectionService_Create_RejectsSubjectlessInspection(t *testing.T) {
	service, _ := createTestInspectionService(nil)

	_, err := service.Create(context.Background(), supervisor("s1@fleet.test"), &usecase.CreateInspectionInput{
		HelmetOK: true,
		City:     "Riyadh",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestInspectionService_Update_OwnershipRule(t *testing.T) {
	existing := &entity.Inspection{ID: 5, InspectedBy: "s1@fleet.test", Location: "somewhere"}

	tests := []struct {
		name      string
		actor     *entity.Account
		forbidden bool
	}{
		{name: "owning supervisor may edit", actor: supervisor("s1@fleet.test")},
		{name: "other supervisor may not", actor: supervisor("s2@fleet.test"), forbidden: true},
		{name: "admin may edit anything", actor: admin("root@fleet.test")},
		{name: "regular user may not", actor: &entity.Account{Email: "u@fleet.test", Role: entity.RoleUser}, forbidden: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := createTestInspectionService(nil, &entity.Inspection{
				ID: existing.ID, InspectedBy: existing.InspectedBy, Location: existing.Location,
			})

			_, err := service.Update(context.Background(), tt.actor, &usecase.UpdateInspectionInput{
				ID:       5,
				Location: existing.Location,
				HelmetOK: true,
			})

			if tt.forbidden {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestInspectionService_Update_SubjectNotRevalidated(t *testing.T) {
	service, inspectionRepo := createTestInspectionService(nil, &entity.Inspection{
		ID: 5, InspectedBy: "s1@fleet.test", Location: "somewhere",
	})

	// Clearing every subject field on update is allowed; the requirement
	// applies at creation only.
	updated, err := service.Update(context.Background(), supervisor("s1@fleet.test"), &usecase.UpdateInspectionInput{
		ID:       5,
		HelmetOK: true,
	})

	require.NoError(t, err)
	assert.Empty(t, updated.Location)
	assert.Empty(t, inspectionRepo.inspections[5].Location)
}

func TestInspectionService_Delete_OwnershipRule(t *testing.T) {
	service, inspectionRepo := createTestInspectionService(nil, &entity.Inspection{
		ID: 5, InspectedBy: "s1@fleet.test", Location: "somewhere",
	})

	err := service.Delete(context.Background(), supervisor("s2@fleet.test"), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	assert.Len(t, inspectionRepo.inspections, 1)

	require.NoError(t, service.Delete(context.Background(), admin("root@fleet.test"), 5))
	assert.Empty(t, inspectionRepo.inspections)
}

func TestInspectionService_List_Filter(t *testing.T) {
	service, _ := createTestInspectionService(nil,
		&entity.Inspection{ID: 1, InspectedBy: "s1@fleet.test", City: "Riyadh", Location: "north"},
		&entity.Inspection{ID: 2, InspectedBy: "s1@fleet.test", City: "Jeddah", Location: "corniche"},
	)

	all, err := service.List(context.Background(), repository.InspectionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	riyadh, err := service.List(context.Background(), repository.InspectionFilter{City: "Riyadh"})
	require.NoError(t, err)
	require.Len(t, riyadh, 1)
	assert.Equal(t, int64(1), riyadh[0].ID)
}

func TestInspectionService_Get_NotFound(t *testing.T) {
	service, _ := createTestInspectionService(nil)

	_, err := service.Get(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInspectionNotFound))
}
