package memvehicle

import (
	"context"

	"github.com/AutoVitrine/AutoVitrine/internal/models"
)

// Storage holds the catalog in memory. It is read-only after New, so no
// locking is needed.
type Storage struct {
	vehicles []models.Vehicle
	details  map[string]models.VehicleDetail
}

func New() *Storage {
	return &Storage{
		vehicles: seedVehicles(),
		details:  seedDetails(),
	}
}

// ListAll returns the catalog snapshot in insertion order. Callers must
// not mutate the returned slice elements.
func (s *Storage) ListAll(ctx context.Context) ([]models.Vehicle, error) {
	out := make([]models.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out, nil
}

// GetDetailByID looks up the detail store. The detail store is keyed
// independently of the summary list and may miss entries the list has.
func (s *Storage) GetDetailByID(ctx context.Context, id string) (*models.VehicleDetail, bool, error) {
	d, ok := s.details[id]
	if !ok {
		return nil, false, nil
	}
	return &d, true, nil
}
