package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/electronics-store/internal/models"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
	"go.uber.org/zap"
)

// GetEquipmentHandler godoc
// @Summary List active equipment
// @Description Administrators get the full projection, other users the minimal one
// @Tags equipos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} EquipmentResponse
// @Failure 401 {object} map[string]string
// @Router /equipos [get]
func (h *Handlers) GetEquipmentHandler(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.Stores.Equipment.List(r.Context(), true)
	if err != nil {
		h.serverError(w, r, "could not fetch equipment", err)
		return
	}

	if claimsFrom(r).Administrador {
		resp := make([]EquipmentResponse, len(equipment))
		for i, e := range equipment {
			resp[i] = toEquipmentResponse(e)
		}
		_ = writeJSON(w, http.StatusOK, resp)
		return
	}

	resp := make([]MinimalEquipmentResponse, len(equipment))
	for i, e := range equipment {
		resp[i] = MinimalEquipmentResponse{ID: e.ID, ModelID: e.ModelID, BrandID: e.BrandID, Price: e.Price, Active: e.Active}
	}
	_ = writeJSON(w, http.StatusOK, resp)
}

// CreateEquipmentHandler godoc
// @Summary Create equipment
// @Tags equipos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param equipo body EquipmentCreateRequest true "Equipment to add"
// @Success 201 {object} EquipmentResponse
// @Failure 400 {array} ValidationError
// @Failure 403 {object} Message
// @Router /equipos [post]
func (h *Handlers) CreateEquipmentHandler(w http.ResponseWriter, r *http.Request) {
	if !claimsFrom(r).Administrador {
		writeMessage(w, http.StatusForbidden, "Ud no está habilitado para crear un equipo.")
		return
	}

	var req EquipmentCreateRequest
	if err := readJSON(w, r, &req); err != nil {
		badInput(w, err)
		return
	}
	if errs := validateInput(req); len(errs) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	created, err := h.Stores.Equipment.Create(r.Context(), models.Equipment{
		Name:       req.Name,
		Price:      req.Price,
		ModelID:    req.ModelID,
		BrandID:    req.BrandID,
		CategoryID: req.CategoryID,
		FeatureID:  req.FeatureID,
		SupplierID: req.SupplierID,
	})
	if err != nil {
		h.logger(r).Error("equipment create failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Fallo la creación del nuevo equipo")
		return
	}
	_ = writeJSON(w, http.StatusCreated, toEquipmentResponse(created))
}

// UpdateEquipmentHandler godoc
// @Summary Update equipment
// @Description Only the fields present in the body are changed
// @Tags equipos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param equipo body EquipmentUpdateRequest true "Fields to change"
// @Success 200 {object} EquipmentResponse
// @Failure 400 {array} ValidationError
// @Failure 403 {object} Message
// @Failure 404 {object} Message
// @Router /equipos [put]
func (h *Handlers) UpdateEquipmentHandler(w http.ResponseWriter, r *http.Request) {
	if !claimsFrom(r).Administrador {
		writeMessage(w, http.StatusForbidden, "No tiene permiso para modificar un producto.")
		return
	}

	var req EquipmentUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		badInput(w, err)
		return
	}
	if errs := validateInput(req); len(errs) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	ctx := r.Context()
	e, err := h.Stores.Equipment.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Equipo no encontrado")
			return
		}
		h.serverError(w, r, "could not fetch equipment", err)
		return
	}

	req.applyTo(&e)
	updated, err := h.Stores.Equipment.Update(ctx, e)
	if err == nil && req.Active != nil && *req.Active != updated.Active {
		if err = h.Stores.Equipment.SetActive(ctx, e.ID, *req.Active); err == nil {
			updated.Active = *req.Active
		}
	}
	if err != nil {
		h.logger(r).Error("equipment update failed", zap.Int("id", req.ID), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Fallo la actualización del producto")
		return
	}
	_ = writeJSON(w, http.StatusOK, toEquipmentResponse(updated))
}

// DeleteEquipmentHandler godoc
// @Summary Deactivate equipment
// @Description The record is kept and can be restored from /restaurar_equipo/{id}
// @Tags equipos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param equipo body EquipmentDeleteRequest true "Equipment id"
// @Success 200 {object} Message
// @Failure 403 {object} Message
// @Failure 404 {object} Message
// @Router /equipos [delete]
func (h *Handlers) DeleteEquipmentHandler(w http.ResponseWriter, r *http.Request) {
	if !claimsFrom(r).Administrador {
		writeMessage(w, http.StatusForbidden, "No tiene permiso para eliminar un producto.")
		return
	}

	var req EquipmentDeleteRequest
	if err := readJSON(w, r, &req); err != nil {
		badInput(w, err)
		return
	}
	if errs := validateInput(req); len(errs) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	if err := h.Stores.Equipment.SetActive(r.Context(), req.ID, false); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Producto no encontrado")
			return
		}
		h.logger(r).Error("equipment delete failed", zap.Int("id", req.ID), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Fallo al eliminar el producto")
		return
	}
	writeMessage(w, http.StatusOK, "Producto eliminado con éxito")
}

func (req EquipmentUpdateRequest) applyTo(e *models.Equipment) {
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Price != nil {
		e.Price = *req.Price
	}
	if req.ModelID != nil {
		e.ModelID = *req.ModelID
	}
	if req.BrandID != nil {
		e.BrandID = *req.BrandID
	}
	if req.FeatureID != nil {
		e.FeatureID = *req.FeatureID
	}
	if req.CategoryID != nil {
		e.CategoryID = *req.CategoryID
	}
	if req.SupplierID != nil {
		e.SupplierID = *req.SupplierID
	}
}

func toEquipmentResponse(e models.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:         e.ID,
		Price:      e.Price,
		Active:     e.Active,
		ModelID:    e.ModelID,
		BrandID:    e.BrandID,
		CategoryID: e.CategoryID,
		FeatureID:  e.FeatureID,
		SupplierID: e.SupplierID,
	}
}
