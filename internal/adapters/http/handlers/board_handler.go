package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// BoardHandler renders the three-column board.
type BoardHandler struct {
	reader     ports.TodoReader
	countdowns ports.Countdowns
}

// NewBoardHandler creates a BoardHandler. countdowns may be nil, in which
// case cards carry no countdown.
func NewBoardHandler(reader ports.TodoReader, countdowns ports.Countdowns) *BoardHandler {
	return &BoardHandler{reader: reader, countdowns: countdowns}
}

// GetBoard handles GET /api/v1/board.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	todos, err := h.reader.Query(r.Context(), todo.Filter{})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(todos, h.countdowns))
}
