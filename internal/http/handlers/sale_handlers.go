package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
	"github.com/rogerio-castellano/electronics-store/internal/sales"
)

func (h *Handlers) saleLines() *resource[models.Sale, *models.Sale, saleInput] {
	return &resource[models.Sale, *models.Sale, saleInput]{
		h:      h,
		entity: "venta",
		store:  h.Stores.Sales,
		paths: paths{
			list:       "/list_ventas",
			inactive:   "/list_ventas_inactivas",
			edit:       "/venta/{id}/editar",
			deactivate: "/eliminar_venta/{id}",
			restore:    "/restaurar_venta/{id}",
		},
		filters: []filterRoute{
			{path: "/ventas/cliente/{id}", field: repo.ByCustomer, param: "id", parse: parseInt},
			{path: "/ventas/fecha/{fecha}", field: repo.ByDate, param: "fecha", parse: parseDateParam},
			{path: "/ventas/tipo/{tipo}", field: repo.ByKind, param: "tipo", parse: parseKind},
		},
		apply: h.applySale,
	}
}

// applySale prices the line against the referenced product. An unknown kind
// or an unresolvable product skips the write.
func (h *Handlers) applySale(ctx context.Context, in *saleInput, s *models.Sale) error {
	kind, ok := models.ParseProductKind(in.Kind)
	if !ok {
		return fmt.Errorf("%w: unknown product kind %q", errSkip, in.Kind)
	}
	ref := models.ProductRef{Kind: kind, ProductID: in.ProductID}

	_, total, err := h.Sales.Price(ctx, ref, in.Quantity)
	if err != nil {
		if errors.Is(err, sales.ErrProductNotFound) {
			return fmt.Errorf("%w: %s %d: %v", errSkip, kind, in.ProductID, err)
		}
		if errors.Is(err, sales.ErrTotalOutOfRange) {
			return &fieldError{ValidationError{Field: "cantidad", Description: "El total de la venta supera el máximo permitido."}}
		}
		return err
	}

	s.CustomerID = in.CustomerID
	s.ProductRef = ref
	s.Quantity = in.Quantity
	s.Date = in.Date
	s.Total = total
	return nil
}

// SalesByProductHandler lists the active sales of one product.
func (h *Handlers) SalesByProductHandler(w http.ResponseWriter, r *http.Request) {
	kind, ok := models.ParseProductKind(chi.URLParam(r, "tipo"))
	if !ok {
		http.Error(w, "invalid tipo", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid ID", http.StatusBadRequest)
		return
	}

	byID, err := h.Stores.Sales.ListBy(r.Context(), repo.ByProduct, id)
	if err != nil {
		h.serverError(w, r, "could not fetch venta records", err)
		return
	}
	out := make([]models.Sale, 0, len(byID))
	for _, s := range byID {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	_ = writeJSON(w, http.StatusOK, out)
}
