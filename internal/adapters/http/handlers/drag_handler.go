package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// DragHandler exposes the drag/drop protocol over HTTP. A client begins a
// session when a card is picked up, reports hover and leave as the pointer
// crosses columns, and finishes with drop or cancel.
type DragHandler struct {
	coordinator ports.DragCoordinator
}

// NewDragHandler creates a DragHandler.
func NewDragHandler(coordinator ports.DragCoordinator) *DragHandler {
	return &DragHandler{coordinator: coordinator}
}

// BeginDrag handles POST /api/v1/drag.
func (h *DragHandler) BeginDrag(w http.ResponseWriter, r *http.Request) {
	var req dto.BeginDragRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.coordinator.Begin(r.Context(), req.TodoID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToDragSessionResponse(&session))
}

// Hover handles PUT /api/v1/drag/{sid}/hover.
func (h *DragHandler) Hover(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	target, ok := decodeStatus(w, r)
	if !ok {
		return
	}

	session, err := h.coordinator.Hover(r.Context(), sid, target)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDragSessionResponse(&session))
}

// Leave handles DELETE /api/v1/drag/{sid}/hover.
func (h *DragHandler) Leave(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	session, err := h.coordinator.Leave(r.Context(), sid)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDragSessionResponse(&session))
}

// Drop handles POST /api/v1/drag/{sid}/drop.
func (h *DragHandler) Drop(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.coordinator.Drop(r.Context(), sid)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDropResponse(&result))
}

// CancelDrag handles DELETE /api/v1/drag/{sid}.
func (h *DragHandler) CancelDrag(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.coordinator.Cancel(r.Context(), sid); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
