package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/climate-scenarios/internal/utils"
	"github.com/MKhiriev/climate-scenarios/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.ListItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateItemRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	item, err := h.services.ItemService.UpdateItem(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ItemService.DeleteItem(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
