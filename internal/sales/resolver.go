package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a reference names an unknown kind, an
// unknown id or an inactive product.
var ErrProductNotFound = errors.New("product not found")

// ErrTotalOutOfRange is returned when a line total does not fit the stored
// total column.
var ErrTotalOutOfRange = errors.New("line total out of range")

// MaxLineTotal is the largest total a sale line can store.
var MaxLineTotal = decimal.RequireFromString("999999999999.99")

// Product is the sellable view shared by equipment and accessories.
type Product struct {
	Ref   models.ProductRef
	Name  string
	Price decimal.Decimal
}

type getter[T any] interface {
	GetByID(ctx context.Context, id int) (T, error)
}

type Resolver struct {
	equipment   getter[models.Equipment]
	accessories getter[models.Accessory]
}

func NewResolver(equipment repo.Store[models.Equipment], accessories repo.Store[models.Accessory]) *Resolver {
	return &Resolver{equipment: equipment, accessories: accessories}
}

// Resolve looks the reference up in the collection its kind names. Only
// active products resolve.
func (r *Resolver) Resolve(ctx context.Context, ref models.ProductRef) (Product, error) {
	switch ref.Kind {
	case models.KindEquipment:
		e, err := r.equipment.GetByID(ctx, ref.ProductID)
		if err != nil {
			return Product{}, lookupErr(ref, err)
		}
		if !e.Active {
			return Product{}, ErrProductNotFound
		}
		return Product{Ref: ref, Name: e.Label(), Price: e.Price}, nil
	case models.KindAccessory:
		a, err := r.accessories.GetByID(ctx, ref.ProductID)
		if err != nil {
			return Product{}, lookupErr(ref, err)
		}
		if !a.Active {
			return Product{}, ErrProductNotFound
		}
		return Product{Ref: ref, Name: a.Name, Price: a.Price}, nil
	}
	return Product{}, ErrProductNotFound
}

// Price resolves ref and returns the product with the line total for qty units.
func (r *Resolver) Price(ctx context.Context, ref models.ProductRef, qty int) (Product, decimal.Decimal, error) {
	p, err := r.Resolve(ctx, ref)
	if err != nil {
		return p, decimal.Zero, err
	}
	total := LineTotal(p.Price, qty)
	if total.GreaterThan(MaxLineTotal) {
		return p, decimal.Zero, ErrTotalOutOfRange
	}
	return p, total, nil
}

func LineTotal(unitPrice decimal.Decimal, qty int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

func lookupErr(ref models.ProductRef, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrProductNotFound
	}
	return fmt.Errorf("resolve %s %d: %w", ref.Kind, ref.ProductID, err)
}
