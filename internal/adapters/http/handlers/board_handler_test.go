package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
	"github.com/jsamuelsen11/taskboard/mocks"
)

func TestGetBoard_RendersColumnsAndCountdowns(t *testing.T) {
	t.Parallel()

	due := testTime.Add(time.Minute)
	store := mocks.NewMockTodoStore(t)
	store.EXPECT().Query(mock.Anything, todo.Filter{}).Return([]todo.Todo{
		{ID: 1, Title: "a", Status: todo.StatusPending},
		{ID: 2, Title: "b", Status: todo.StatusInProgress, DueDate: &due},
	}, nil)

	countdowns := mocks.NewMockCountdowns(t)
	countdowns.EXPECT().Remaining(int64(2)).Return(ports.CountdownState{Overdue: true}, true)

	h := handlers.NewBoardHandler(store, countdowns)
	rec := httptest.NewRecorder()
	h.GetBoard(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.BoardResponse](t, rec)
	if len(resp.Columns) != 3 {
		t.Fatalf("len(Columns) = %d, want 3", len(resp.Columns))
	}
	cards := resp.Columns[1].Cards
	if len(cards) != 1 || cards[0].Countdown == nil {
		t.Fatalf("in-progress cards = %+v, want one card with a countdown", cards)
	}
	if !cards[0].Countdown.Overdue || cards[0].Countdown.Remaining != "00:00:00" {
		t.Errorf("Countdown = %+v, want overdue at 00:00:00", cards[0].Countdown)
	}
}

func TestGetBoard_WithoutCountdowns(t *testing.T) {
	t.Parallel()

	due := testTime
	store := mocks.NewMockTodoStore(t)
	store.EXPECT().Query(mock.Anything, todo.Filter{}).Return([]todo.Todo{
		{ID: 3, Title: "c", Status: todo.StatusInProgress, DueDate: &due},
	}, nil)

	h := handlers.NewBoardHandler(store, nil)
	rec := httptest.NewRecorder()
	h.GetBoard(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.BoardResponse](t, rec)
	if resp.Columns[1].Cards[0].Countdown != nil {
		t.Error("Countdown present without a countdown source")
	}
}
