// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"fleetcheck/internal/domain/entity"
)

// ErrRiderNotFound is a domain-specific error returned when a rider is not found.
var ErrRiderNotFound = errors.New("rider not found")

// RiderRepository defines the standard operations for rider persistence.
type RiderRepository interface {
	// FindByID retrieves a single rider by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Rider, error)

	// FindByIDNumber retrieves a single rider by national ID number.
	FindByIDNumber(ctx context.Context, idNumber string) (*entity.Rider, error)

	// List retrieves all riders.
	List(ctx context.Context) ([]*entity.Rider, error)

	// Create persists a new rider entity to the storage.
	Create(ctx context.Context, rider *entity.Rider) error

	// Update modifies an existing rider entity in the storage.
	Update(ctx context.Context, rider *entity.Rider) error

	// Delete removes a rider by ID.
	Delete(ctx context.Context, id int64) error
}
