package service

import (
	"testing"

	"fleetcheck/internal/domain/entity"
	domainerrors "fleetcheck/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireRole(t *testing.T) {
	admin := &entity.Account{Email: "admin@fleet.test", Role: entity.RoleAdmin}
	user := &entity.Account{Email: "user@fleet.test", Role: entity.RoleUser}

	assert.NoError(t, RequireRole(admin, entity.RoleAdmin))
	assert.NoError(t, RequireRole(user, entity.RoleAdmin, entity.RoleUser))

	err := RequireRole(user, entity.RoleAdmin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	err = RequireRole(nil, entity.RoleAdmin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCanModifyInspection_OwnershipRule(t *testing.T) {
	supervisor := &entity.Account{Email: "s1@fleet.test", Role: entity.RoleSupervisor}
	otherSupervisor := &entity.Account{Email: "s2@fleet.test", Role: entity.RoleSupervisor}
	admin := &entity.Account{Email: "admin@fleet.test", Role: entity.RoleAdmin}
	regular := &entity.Account{Email: "u@fleet.test", Role: entity.RoleUser}

	inspection := &entity.Inspection{ID: 7, InspectedBy: supervisor.Email}

	// The recording supervisor may edit their own inspection.
	assert.NoError(t, CanModifyInspection(supervisor, inspection))

	// A different supervisor may not.
	err := CanModifyInspection(otherSupervisor, inspection)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	// Admins may edit regardless of who recorded it.
	assert.NoError(t, CanModifyInspection(admin, inspection))

	// Regular users never may, even for records naming their email.
	inspection2 := &entity.Inspection{ID: 8, InspectedBy: regular.Email}
	err = CanModifyInspection(regular, inspection2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
