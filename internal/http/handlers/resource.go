package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
	"go.uber.org/zap"
)

// errSkip tells a resource to drop the write silently.
var errSkip = errors.New("write skipped")

// fieldError is returned by apply functions to reject one input field.
type fieldError struct {
	ValidationError
}

func (e *fieldError) Error() string { return e.Field + ": " + e.Description }

type paths struct {
	list       string
	inactive   string
	edit       string
	deactivate string
	restore    string
}

type filterRoute struct {
	path  string
	field string
	param string
	parse func(string) (any, error)
}

// resource serves the form-driven route family of one soft-deletable entity:
// active and inactive listings, create, edit, deactivate, restore and the
// exact-match filters.
type resource[T any, PT repo.RecordPtr[T], In any] struct {
	h       *Handlers
	entity  string
	paths   paths
	store   repo.Store[T]
	filters []filterRoute
	// apply copies a validated input onto rec.
	apply func(ctx context.Context, in *In, rec *T) error
	// create defaults to store.Create.
	create func(ctx context.Context, rec T) (T, error)
}

func (res *resource[T, PT, In]) Mount(r chi.Router) {
	r.Get(res.paths.list, res.list(true))
	r.Post(res.paths.list, res.createHandler)
	r.Get(res.paths.inactive, res.list(false))
	r.Get(res.paths.edit, res.show)
	r.Post(res.paths.edit, res.edit)
	r.Post(res.paths.deactivate, res.setActive(false))
	r.Post(res.paths.restore, res.setActive(true))
	for _, f := range res.filters {
		r.Get(f.path, res.filter(f))
	}
}

func (res *resource[T, PT, In]) list(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := res.store.List(r.Context(), active)
		if err != nil {
			res.h.serverError(w, r, "could not fetch "+res.entity+" records", err)
			return
		}
		_ = writeJSON(w, http.StatusOK, records)
	}
}

func (res *resource[T, PT, In]) createHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := res.decode(w, r)
	if !ok {
		return
	}

	var rec T
	if err := res.apply(r.Context(), in, &rec); err != nil {
		if res.rejected(w, r, err) {
			return
		}
		if errors.Is(err, errSkip) {
			res.h.logger(r).Warn("create skipped", zap.String("entity", res.entity), zap.Error(err))
			http.Redirect(w, r, res.paths.list, http.StatusSeeOther)
			return
		}
		res.h.serverError(w, r, "could not create "+res.entity, err)
		return
	}

	create := res.create
	if create == nil {
		create = res.store.Create
	}
	if _, err := create(r.Context(), rec); err != nil {
		if res.rejected(w, r, err) {
			return
		}
		res.h.serverError(w, r, "could not create "+res.entity, err)
		return
	}
	http.Redirect(w, r, res.paths.list, http.StatusSeeOther)
}

func (res *resource[T, PT, In]) show(w http.ResponseWriter, r *http.Request) {
	rec, ok := res.load(w, r)
	if !ok {
		return
	}
	_ = writeJSON(w, http.StatusOK, rec)
}

// edit replaces the writable fields of an existing record. A skipped edit
// answers 200 with the record as stored.
func (res *resource[T, PT, In]) edit(w http.ResponseWriter, r *http.Request) {
	rec, ok := res.load(w, r)
	if !ok {
		return
	}
	in, ok := res.decode(w, r)
	if !ok {
		return
	}

	stored := rec
	if err := res.apply(r.Context(), in, &rec); err != nil {
		if res.rejected(w, r, err) {
			return
		}
		if errors.Is(err, errSkip) {
			res.h.logger(r).Warn("edit skipped", zap.String("entity", res.entity),
				zap.Int("id", PT(&stored).GetID()), zap.Error(err))
			_ = writeJSON(w, http.StatusOK, stored)
			return
		}
		res.h.serverError(w, r, "could not update "+res.entity, err)
		return
	}

	if _, err := res.store.Update(r.Context(), rec); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, res.entity+" not found", http.StatusNotFound)
			return
		}
		if res.rejected(w, r, err) {
			return
		}
		res.h.serverError(w, r, "could not update "+res.entity, err)
		return
	}
	http.Redirect(w, r, res.paths.list, http.StatusSeeOther)
}

func (res *resource[T, PT, In]) setActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		if err := res.store.SetActive(r.Context(), id, active); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				http.Error(w, res.entity+" not found", http.StatusNotFound)
				return
			}
			res.h.serverError(w, r, "could not change "+res.entity+" state", err)
			return
		}
		http.Redirect(w, r, res.paths.list, http.StatusSeeOther)
	}
}

func (res *resource[T, PT, In]) filter(f filterRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := f.parse(chi.URLParam(r, f.param))
		if err != nil {
			http.Error(w, "invalid "+f.param, http.StatusBadRequest)
			return
		}
		records, err := res.store.ListBy(r.Context(), f.field, value)
		if err != nil {
			res.h.serverError(w, r, "could not fetch "+res.entity+" records", err)
			return
		}
		_ = writeJSON(w, http.StatusOK, records)
	}
}

func (res *resource[T, PT, In]) load(w http.ResponseWriter, r *http.Request) (T, bool) {
	var zero T
	id, ok := idParam(w, r)
	if !ok {
		return zero, false
	}
	rec, err := res.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, res.entity+" not found", http.StatusNotFound)
			return zero, false
		}
		res.h.serverError(w, r, "could not fetch "+res.entity, err)
		return zero, false
	}
	return rec, true
}

func (res *resource[T, PT, In]) decode(w http.ResponseWriter, r *http.Request) (*In, bool) {
	in := new(In)
	if err := decodeInput(w, r, in); err != nil {
		badInput(w, err)
		return nil, false
	}
	if errs := validateInput(in); len(errs) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, errs)
		return nil, false
	}
	return in, true
}

// rejected answers 400 for field errors and unique violations.
func (res *resource[T, PT, In]) rejected(w http.ResponseWriter, r *http.Request, err error) bool {
	var fe *fieldError
	switch {
	case errors.As(err, &fe):
		_ = writeJSON(w, http.StatusBadRequest, []ValidationError{fe.ValidationError})
		return true
	case errors.Is(err, repo.ErrDuplicatedValueUnique):
		_ = writeJSON(w, http.StatusBadRequest, []ValidationError{{Field: "nombre", Description: "Ya existe un registro con ese valor."}})
		return true
	case errors.Is(err, repo.ErrOutOfRange):
		_ = writeJSON(w, http.StatusBadRequest, []ValidationError{{Description: "Un valor numérico excede el rango permitido."}})
		return true
	case errors.Is(err, repo.ErrForeignKey):
		_ = writeJSON(w, http.StatusBadRequest, []ValidationError{{Description: "El registro referenciado no existe."}})
		return true
	}
	return false
}

func parseInt(s string) (any, error) {
	return strconv.Atoi(s)
}

func parseString(s string) (any, error) {
	if s == "" {
		return nil, errors.New("empty value")
	}
	return s, nil
}

func parseDateParam(s string) (any, error) {
	return parseDate(s)
}

func parseKind(s string) (any, error) {
	kind, ok := models.ParseProductKind(s)
	if !ok {
		return nil, errors.New("unknown product kind")
	}
	return kind, nil
}
