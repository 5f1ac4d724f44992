package dto

import "github.com/jsamuelsen11/taskboard/internal/domain/todo"

// Column is the presentation of one board stage.
type Column struct {
	Status todo.Status
	Label  string
	Color  string
}

// columns is indexed by board order. Presentation only; the store never
// reads it.
var columns = []Column{
	{Status: todo.StatusPending, Label: "New", Color: "blue"},
	{Status: todo.StatusInProgress, Label: "Ongoing", Color: "orange"},
	{Status: todo.StatusCompleted, Label: "Done", Color: "green"},
}

// unknownColor is used for any status missing from the table.
const unknownColor = "black"

// Columns returns the board columns in display order.
func Columns() []Column {
	return append([]Column(nil), columns...)
}

// ColumnFor returns the presentation for status. Unknown statuses get their
// raw value as label and a neutral colour.
func ColumnFor(status todo.Status) Column {
	for _, c := range columns {
		if c.Status == status {
			return c
		}
	}
	return Column{Status: status, Label: string(status), Color: unknownColor}
}
