package sales

import (
	"context"
	"testing"

	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T) (*Resolver, *repo.Stores) {
	t.Helper()
	stores := repo.NewMemoryStores()
	return NewResolver(stores.Equipment, stores.Accessories), stores
}

func TestResolver_Price(t *testing.T) {
	ctx := context.Background()
	r, stores := newResolver(t)

	acc, err := stores.Accessories.Create(ctx, models.Accessory{Name: "Funda", Price: decimal.RequireFromString("12.50")})
	require.NoError(t, err)
	eq, err := stores.Equipment.Create(ctx, models.Equipment{Price: decimal.RequireFromString("999.99"), ModelID: 1, BrandID: 1, CategoryID: 1, FeatureID: 1, SupplierID: 1})
	require.NoError(t, err)

	p, total, err := r.Price(ctx, models.ProductRef{Kind: models.KindAccessory, ProductID: acc.ID}, 3)
	require.NoError(t, err)
	assert.Equal(t, "Funda", p.Name)
	assert.True(t, total.Equal(decimal.RequireFromString("37.50")), "got %s", total)

	p, total, err = r.Price(ctx, models.ProductRef{Kind: models.KindEquipment, ProductID: eq.ID}, 2)
	require.NoError(t, err)
	assert.Equal(t, "equipo #1", p.Name)
	assert.True(t, total.Equal(decimal.RequireFromString("1999.98")), "got %s", total)
}

func TestResolver_Unresolvable(t *testing.T) {
	ctx := context.Background()
	r, stores := newResolver(t)

	acc, _ := stores.Accessories.Create(ctx, models.Accessory{Name: "Cargador", Price: decimal.NewFromInt(20)})
	require.NoError(t, stores.Accessories.SetActive(ctx, acc.ID, false))

	tests := []struct {
		name string
		ref  models.ProductRef
	}{
		{"unknown kind", models.ProductRef{Kind: "servicio", ProductID: acc.ID}},
		{"unknown id", models.ProductRef{Kind: models.KindAccessory, ProductID: 99}},
		{"wrong collection", models.ProductRef{Kind: models.KindEquipment, ProductID: acc.ID}},
		{"inactive product", models.ProductRef{Kind: models.KindAccessory, ProductID: acc.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(ctx, tt.ref)
			assert.ErrorIs(t, err, ErrProductNotFound)
		})
	}
}

func TestLineTotal(t *testing.T) {
	assert.True(t, LineTotal(decimal.RequireFromString("0.10"), 3).Equal(decimal.RequireFromString("0.30")))
	assert.True(t, LineTotal(decimal.NewFromInt(5), 0).IsZero())
}

func TestResolver_TotalOutOfRange(t *testing.T) {
	ctx := context.Background()
	r, stores := newResolver(t)

	acc, err := stores.Accessories.Create(ctx, models.Accessory{Name: "Vault", Price: decimal.RequireFromString("9999999999.99")})
	require.NoError(t, err)
	ref := models.ProductRef{Kind: models.KindAccessory, ProductID: acc.ID}

	_, _, err = r.Price(ctx, ref, 1000)
	assert.ErrorIs(t, err, ErrTotalOutOfRange)

	_, total, err := r.Price(ctx, ref, 100)
	require.NoError(t, err)
	assert.True(t, total.LessThanOrEqual(MaxLineTotal))
}
