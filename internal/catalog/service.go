// Package catalog exposes the manufacturer and brand operations used by the
// handlers that work across both.
package catalog

import (
	"context"

	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
)

type Service struct {
	manufacturers repo.Store[models.Manufacturer]
	brands        repo.Store[models.Brand]
}

func NewService(manufacturers repo.Store[models.Manufacturer], brands repo.Store[models.Brand]) *Service {
	return &Service{manufacturers: manufacturers, brands: brands}
}

func (s *Service) ListManufacturers(ctx context.Context, active bool) ([]models.Manufacturer, error) {
	return s.manufacturers.List(ctx, active)
}

func (s *Service) CreateManufacturer(ctx context.Context, name, origin string) (models.Manufacturer, error) {
	return s.manufacturers.Create(ctx, models.Manufacturer{Name: name, Origin: origin})
}

func (s *Service) ListBrands(ctx context.Context, active bool) ([]models.Brand, error) {
	return s.brands.List(ctx, active)
}

// CreateBrand fails with repo.ErrNotFound when the manufacturer does not exist.
func (s *Service) CreateBrand(ctx context.Context, name string, manufacturerID int) (models.Brand, error) {
	if _, err := s.manufacturers.GetByID(ctx, manufacturerID); err != nil {
		return models.Brand{}, err
	}
	return s.brands.Create(ctx, models.Brand{Name: name, ManufacturerID: manufacturerID})
}

func (s *Service) BrandsByManufacturer(ctx context.Context, manufacturerID int) ([]models.Brand, error) {
	return s.brands.ListBy(ctx, repo.ByManufacturer, manufacturerID)
}
