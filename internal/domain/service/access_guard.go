package service

import (
	"fleetcheck/internal/domain/entity"
	domainerrors "fleetcheck/internal/domain/errors"
)

// RequireRole checks that the account holds one of the allowed roles.
// It is a pure predicate with no side effects; the delivery layer calls it
// before every privileged mutation.
func RequireRole(account *entity.Account, allowed ...entity.Role) error {
	if account == nil {
		return domainerrors.ErrForbidden.WrapMessage("no authenticated account")
	}

	if !entity.Roles(allowed).Contains(account.Role) {
		return domainerrors.ErrForbidden.WrapMessage("role " + account.Role.String() + " is not allowed")
	}

	return nil
}

// CanModifyInspection checks the ownership rule for inspection edits:
// admins may modify any inspection, supervisors only the ones they recorded.
func CanModifyInspection(account *entity.Account, inspection *entity.Inspection) error {
	if account == nil || inspection == nil {
		return domainerrors.ErrForbidden.WrapMessage("no authenticated account")
	}

	if account.Role == entity.RoleAdmin {
		return nil
	}

	if account.Role == entity.RoleSupervisor && inspection.InspectedBy == account.Email {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("inspection belongs to another supervisor")
}
