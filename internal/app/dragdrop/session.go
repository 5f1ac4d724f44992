// Package dragdrop turns drag gestures into single TodoStore moves.
//
// A Session is the per-gesture state machine:
//
//	Idle --Begin--> Dragging --Hover--> Hovering --Drop--> Idle
//	                   ^                   |
//	                   +-------Leave-------+
//
// Cancel returns any state to Idle without touching the store. A drop while
// Dragging (released outside every column) behaves as Cancel. The payload
// captured by Begin is never modified afterwards.
package dragdrop

import (
	"fmt"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// ErrInvalidTransition is returned for a gesture that is not allowed in the
// session's current state. It wraps domain.ErrConflict.
var ErrInvalidTransition = fmt.Errorf("invalid drag transition: %w", domain.ErrConflict)

// Session is a single drag gesture. The zero value is Idle.
type Session struct {
	state   ports.DragState
	payload ports.DragPayload
	target  todo.Status
}

// State returns the current state.
func (s *Session) State() ports.DragState {
	if s.state == "" {
		return ports.DragIdle
	}
	return s.state
}

// Payload returns the payload captured at Begin.
func (s *Session) Payload() ports.DragPayload { return s.payload }

// Target returns the hovered column, or "" when not hovering.
func (s *Session) Target() todo.Status { return s.target }

// Begin starts a drag of the todo described by payload.
func (s *Session) Begin(payload ports.DragPayload) error {
	if s.State() != ports.DragIdle {
		return fmt.Errorf("begin from %s: %w", s.State(), ErrInvalidTransition)
	}
	s.state = ports.DragDragging
	s.payload = payload
	s.target = ""
	return nil
}

// Hover records that the pointer is over the target column.
func (s *Session) Hover(target todo.Status) error {
	if !target.IsValid() {
		return &domain.ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("invalid: %q", target),
		}}
	}
	switch s.State() {
	case ports.DragDragging, ports.DragHovering:
		s.state = ports.DragHovering
		s.target = target
		return nil
	default:
		return fmt.Errorf("hover from %s: %w", s.State(), ErrInvalidTransition)
	}
}

// Leave records that the pointer left every column.
func (s *Session) Leave() error {
	if s.State() != ports.DragHovering {
		return fmt.Errorf("leave from %s: %w", s.State(), ErrInvalidTransition)
	}
	s.state = ports.DragDragging
	s.target = ""
	return nil
}

// Drop ends the gesture and returns the session to Idle. move is true when
// the store should move payload.TodoID to target.
func (s *Session) Drop() (payload ports.DragPayload, target todo.Status, move bool, err error) {
	switch s.State() {
	case ports.DragHovering:
		payload, target = s.payload, s.target
		s.Cancel()
		return payload, target, target != payload.OriginStatus, nil
	case ports.DragDragging:
		payload = s.payload
		s.Cancel()
		return payload, "", false, nil
	default:
		return ports.DragPayload{}, "", false, fmt.Errorf("drop from %s: %w", s.State(), ErrInvalidTransition)
	}
}

// Cancel returns the session to Idle from any state.
func (s *Session) Cancel() {
	*s = Session{}
}
