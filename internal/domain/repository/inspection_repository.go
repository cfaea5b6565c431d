// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"fleetcheck/internal/domain/entity"
)

// ErrInspectionNotFound is a domain-specific error returned when an inspection is not found.
var ErrInspectionNotFound = errors.New("inspection not found")

// InspectionFilter narrows inspection queries. Zero-valued fields are ignored.
type InspectionFilter struct {
	City     string
	Location string
}

// InspectionRepository defines the standard operations for inspection persistence.
type InspectionRepository interface {
	// FindByID retrieves a single inspection by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Inspection, error)

	// List retrieves inspections matching the filter, newest first.
	List(ctx context.Context, filter InspectionFilter) ([]*entity.Inspection, error)

	// Create persists a new inspection entity to the storage.
	Create(ctx context.Context, inspection *entity.Inspection) error

	// Update modifies an existing inspection entity in the storage.
	Update(ctx context.Context, inspection *entity.Inspection) error

	// Delete removes an inspection by ID.
	Delete(ctx context.Context, id int64) error
}
