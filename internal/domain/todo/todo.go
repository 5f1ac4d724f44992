package todo

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

// Todo is a single task on the board.
//
// DueDate is only meaningful while Status is StatusInProgress. It may be
// present in other stages (it is then ignored) and may be absent in
// StatusInProgress (no countdown runs).
type Todo struct {
	ID          int64
	Title       string
	Description string
	Status      Status
	DueDate     *time.Time
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. The ID is not checked; it is owned by the store.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if t.DueDate != nil && !StorableDueDate(*t.DueDate) {
		fields["due_date"] = "must fall within years 0000-9999 in UTC"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// StorableDueDate reports whether due can be written as an RFC 3339 UTC
// timestamp, which only has room for four-digit years.
func StorableDueDate(due time.Time) bool {
	y := due.UTC().Year()
	return y >= 0 && y <= 9999
}

// HasDeadline reports whether the todo should be counting down: it is in
// progress and carries a due date.
func (t *Todo) HasDeadline() bool {
	return t.Status == StatusInProgress && t.DueDate != nil
}

// Clone returns a deep copy so callers can never alias the store's DueDate.
func (t Todo) Clone() Todo {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

// Equal reports whether both todos carry the same values.
func (t *Todo) Equal(other *Todo) bool {
	if t.ID != other.ID || t.Title != other.Title || t.Description != other.Description || t.Status != other.Status {
		return false
	}
	return SameDueDate(t.DueDate, other.DueDate)
}

// SameDueDate compares two optional deadlines by instant.
func SameDueDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
