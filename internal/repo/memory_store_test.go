package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SoftDeleteLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[models.Manufacturer](ManufacturerTable)

	m, err := s.Create(ctx, models.Manufacturer{Name: "Acme", Origin: "US"})
	require.NoError(t, err)
	assert.Equal(t, 1, m.ID)
	assert.True(t, m.Active)

	require.NoError(t, s.SetActive(ctx, m.ID, false))
	require.NoError(t, s.SetActive(ctx, m.ID, false), "deactivating twice is a no-op")

	active, _ := s.List(ctx, true)
	inactive, _ := s.List(ctx, false)
	assert.Empty(t, active)
	require.Len(t, inactive, 1)
	assert.Equal(t, "Acme", inactive[0].Name)

	require.NoError(t, s.SetActive(ctx, m.ID, true))
	active, _ = s.List(ctx, true)
	assert.Len(t, active, 1)

	err = s.SetActive(ctx, 99, false)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore_UpdateKeepsActiveFlag(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[models.Category](CategoryTable)

	c, _ := s.Create(ctx, models.Category{Name: "Phones"})
	require.NoError(t, s.SetActive(ctx, c.ID, false))

	c.Name = "Smartphones"
	c.Active = true
	updated, err := s.Update(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "Smartphones", updated.Name)
	assert.False(t, updated.Active)

	_, err = s.Update(ctx, models.Category{SoftDelete: models.SoftDelete{ID: 42}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ListBy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[models.Model](ModelTable)

	brand := 2
	a, _ := s.Create(ctx, models.Model{Name: "X1", ReleaseYear: 2020, OperatingSystem: "Android", BrandID: &brand})
	_, _ = s.Create(ctx, models.Model{Name: "X2", ReleaseYear: 2021, OperatingSystem: "Android"})
	c, _ := s.Create(ctx, models.Model{Name: "X3", ReleaseYear: 2020, OperatingSystem: "iOS"})
	require.NoError(t, s.SetActive(ctx, c.ID, false))

	tests := []struct {
		name  string
		field string
		value any
		want  []string
	}{
		{"year excludes inactive", ByReleaseYear, 2020, []string{"X1"}},
		{"operating system", ByOperatingSystem, "Android", []string{"X1", "X2"}},
		{"nil brand never matches", ByBrand, brand, []string{"X1"}},
		{"no match", ByReleaseYear, 1999, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListBy(ctx, tt.field, tt.value)
			require.NoError(t, err)
			var names []string
			for _, m := range got {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	_, err := s.ListBy(ctx, "color", "red")
	assert.ErrorIs(t, err, ErrUnknownFilter)
	assert.Equal(t, 1, a.ID)
}

func TestMemoryStore_ListByDateAndKind(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[models.Sale](SaleTable)

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	_, _ = s.Create(ctx, models.Sale{CustomerID: 1, ProductRef: models.ProductRef{Kind: models.KindAccessory, ProductID: 3}, Quantity: 1, Date: day})
	_, _ = s.Create(ctx, models.Sale{CustomerID: 1, ProductRef: models.ProductRef{Kind: models.KindEquipment, ProductID: 3}, Quantity: 1, Date: day.AddDate(0, 0, 1)})

	byDate, err := s.ListBy(ctx, ByDate, day)
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, models.KindAccessory, byDate[0].Kind)

	byKind, err := s.ListBy(ctx, ByKind, "equipo")
	require.NoError(t, err)
	require.Len(t, byKind, 1)
	assert.Equal(t, day.AddDate(0, 0, 1), byKind[0].Date)
}

func TestMemoryStore_Count(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[models.Branch](BranchTable)

	for _, name := range []string{"Centro", "Norte", "Sur"} {
		_, _ = s.Create(ctx, models.Branch{Name: name})
	}
	require.NoError(t, s.SetActive(ctx, 2, false))

	active, _ := s.Count(ctx, true)
	inactive, _ := s.Count(ctx, false)
	assert.Equal(t, 2, active)
	assert.Equal(t, 1, inactive)

	s.Clear()
	active, _ = s.Count(ctx, true)
	assert.Zero(t, active)
}

func TestStores_DashboardMetrics(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()

	_, _ = stores.Brands.Create(ctx, models.Brand{Name: "Zeta", ManufacturerID: 1})
	b, _ := stores.Brands.Create(ctx, models.Brand{Name: "Omega", ManufacturerID: 1})
	require.NoError(t, stores.Brands.SetActive(ctx, b.ID, false))

	m, err := stores.DashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, EntityCount{Active: 1, Inactive: 1}, m.Entities["marcas"])
	assert.Equal(t, EntityCount{}, m.Entities["ventas"])
	assert.Len(t, m.Entities, 14)
}

func TestInMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryUserRepository()

	u, err := r.CreateUser(ctx, models.User{Username: "ana", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)

	_, err = r.CreateUser(ctx, models.User{Username: "ana", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	_, err = r.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)

	users, _ := r.ListUsers(ctx)
	assert.Len(t, users, 1)
}
