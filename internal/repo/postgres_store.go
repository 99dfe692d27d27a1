package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// PostgresStore implements Store on top of a single table whose first two
// columns are id and active.
type PostgresStore[T any, PT RecordPtr[T]] struct {
	db    *sql.DB
	table Table[T]

	selectCols string
}

func NewPostgresStore[T any, PT RecordPtr[T]](db *sql.DB, table Table[T]) *PostgresStore[T, PT] {
	return &PostgresStore[T, PT]{
		db:         db,
		table:      table,
		selectCols: "id, active, " + strings.Join(table.Columns, ", "),
	}
}

func (s *PostgresStore[T, PT]) Create(ctx context.Context, rec T) (T, error) {
	cols := append([]string{"active"}, s.table.Columns...)
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		s.table.Name, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p := PT(&rec)
	p.SetActive(true)
	args := append([]any{true}, values(s.table.Fields(&rec))...)

	var id int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return rec, fmt.Errorf("insert into %s: %w", s.table.Name, translate(err))
	}
	p.SetID(id)
	return rec, nil
}

func (s *PostgresStore[T, PT]) GetByID(ctx context.Context, id int) (T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, s.selectCols, s.table.Name)

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rec, err := s.scan(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return rec, ErrNotFound
	}
	return rec, err
}

func (s *PostgresStore[T, PT]) Update(ctx context.Context, rec T) (T, error) {
	sets := make([]string, len(s.table.Columns))
	for i, c := range s.table.Columns {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`,
		s.table.Name, strings.Join(sets, ", "), len(sets)+1)

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	args := append(values(s.table.Fields(&rec)), PT(&rec).GetID())
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return rec, fmt.Errorf("update %s: %w", s.table.Name, translate(err))
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return rec, ErrNotFound
	}
	return s.GetByID(ctx, PT(&rec).GetID())
}

func (s *PostgresStore[T, PT]) List(ctx context.Context, active bool) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE active = $1 ORDER BY id`, s.selectCols, s.table.Name)
	return s.query(ctx, query, active)
}

func (s *PostgresStore[T, PT]) ListBy(ctx context.Context, field string, value any) ([]T, error) {
	f, ok := s.table.Filters[field]
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", s.table.Name, field, ErrUnknownFilter)
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE active = TRUE AND %s = $1 ORDER BY id`,
		s.selectCols, s.table.Name, f.Column)
	return s.query(ctx, query, value)
}

func (s *PostgresStore[T, PT]) SetActive(ctx context.Context, id int, active bool) error {
	query := fmt.Sprintf(`UPDATE %s SET active = $1 WHERE id = $2`, s.table.Name)

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("set active on %s: %w", s.table.Name, err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore[T, PT]) Count(ctx context.Context, active bool) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE active = $1`, s.table.Name)

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int
	err := s.db.QueryRowContext(ctx, query, active).Scan(&n)
	return n, err
}

func (s *PostgresStore[T, PT]) query(ctx context.Context, query string, args ...any) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table.Name, err)
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		rec, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *PostgresStore[T, PT]) scan(row scanner) (T, error) {
	var rec T
	var id int
	var active bool
	dest := append([]any{&id, &active}, s.table.Fields(&rec)...)
	if err := row.Scan(dest...); err != nil {
		return rec, err
	}
	p := PT(&rec)
	p.SetID(id)
	p.SetActive(active)
	return rec, nil
}

// values dereferences the field pointers so they can be sent as arguments.
func values(ptrs []any) []any {
	out := make([]any, len(ptrs))
	for i, p := range ptrs {
		out[i] = reflect.ValueOf(p).Elem().Interface()
	}
	return out
}
