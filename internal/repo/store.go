package repo

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("record not found")

// ErrUnknownFilter is returned when a listing is filtered on a field the
// table does not expose.
var ErrUnknownFilter = errors.New("unknown filter field")

const queryTimeout = 3 * time.Second

// Record is implemented by every soft-deletable model through the embedded
// models.SoftDelete.
type Record interface {
	GetID() int
	SetID(id int)
	IsActive() bool
	SetActive(active bool)
}

// RecordPtr ties a model type to the pointer that implements Record.
type RecordPtr[T any] interface {
	*T
	Record
}

// Store is the data access contract shared by all soft-deletable entities.
// Records are never physically removed: SetActive is the only way out of the
// active listing and back into it.
type Store[T any] interface {
	Create(ctx context.Context, rec T) (T, error)
	GetByID(ctx context.Context, id int) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	// List returns the records whose active flag equals active, by id.
	List(ctx context.Context, active bool) ([]T, error)
	// ListBy returns the active records whose field exactly equals value.
	ListBy(ctx context.Context, field string, value any) ([]T, error)
	// SetActive is idempotent; it fails only when id does not exist.
	SetActive(ctx context.Context, id int, active bool) error
	Count(ctx context.Context, active bool) (int, error)
}

// Filter maps a public filter name onto a column and onto an accessor used
// by the in-memory store.
type Filter[T any] struct {
	Column string
	Value  func(*T) any
}

// Table describes how a model is laid out in its table. Fields returns
// pointers to the writable fields in the same order as Columns; id and active
// are handled by the store.
type Table[T any] struct {
	Name    string
	Columns []string
	Fields  func(*T) []any
	Filters map[string]Filter[T]
}
