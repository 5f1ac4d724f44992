package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
)

func TestColumns_CoverEveryStatusInOrder(t *testing.T) {
	t.Parallel()

	cols := dto.Columns()
	statuses := todo.Statuses()
	if assert.Len(t, cols, len(statuses)) {
		for i, s := range statuses {
			assert.Equal(t, s, cols[i].Status)
		}
	}

	cols[0].Label = "mutated"
	assert.Equal(t, "New", dto.Columns()[0].Label, "Columns returns a copy")
}

func TestColumnFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "orange", dto.ColumnFor(todo.StatusInProgress).Color)

	unknown := dto.ColumnFor("archived")
	assert.Equal(t, "archived", unknown.Label)
	assert.Equal(t, "black", unknown.Color)
}
