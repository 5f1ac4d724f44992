// Package snapshot encodes the todo collection as a flat JSON array and
// decodes it defensively. It is shared by every SnapshotStore adapter.
//
// Decoding never fails: a payload that is not a JSON array decodes to an
// empty collection, and each record is checked against an embedded JSON
// Schema so structurally invalid records and repeated ids are skipped.
// Encoding is deterministic, so re-encoding a decoded snapshot that was
// produced by Encode yields identical bytes.
package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "taskboard://snapshot/todo.json"

var recordSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("adding snapshot schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// record is the persisted shape of one todo. Field order is the encoding
// order.
type record struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate,omitempty"`
}

// rawRecord accepts either a numeric or a string id on the way in.
type rawRecord struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	DueDate     *string         `json:"dueDate"`
}

// Skip describes one record dropped while decoding.
type Skip struct {
	Index  int
	Reason string
}

// Report lists what Decode had to discard. Corrupt is set when the payload
// as a whole could not be read; Skipped lists individual records.
type Report struct {
	Corrupt error
	Skipped []Skip
}

// Clean reports whether the payload decoded without losing anything.
func (r Report) Clean() bool {
	return r.Corrupt == nil && len(r.Skipped) == 0
}

// Encode renders todos as a JSON array. Due dates are written in UTC with
// nanosecond precision.
func Encode(todos []todo.Todo) ([]byte, error) {
	records := make([]record, 0, len(todos))
	for _, t := range todos {
		rec := record{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status.String(),
		}
		if t.DueDate != nil {
			if !todo.StorableDueDate(*t.DueDate) {
				return nil, fmt.Errorf("encoding snapshot: todo %d: due date %s outside years 0000-9999", t.ID, t.DueDate.UTC().Format(time.RFC3339))
			}
			due := t.DueDate.UTC().Format(time.RFC3339Nano)
			rec.DueDate = &due
		}
		records = append(records, rec)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a payload produced by Encode. Empty input decodes to an
// empty collection with a clean report.
func Decode(data []byte) ([]todo.Todo, Report) {
	var report Report
	todos := []todo.Todo{}

	if len(bytes.TrimSpace(data)) == 0 {
		return todos, report
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		report.Corrupt = fmt.Errorf("payload is not a JSON array: %w", err)
		return todos, report
	}

	schema, err := recordSchema()
	if err != nil {
		report.Corrupt = err
		return todos, report
	}

	seen := make(map[int64]bool, len(raws))
	for i, raw := range raws {
		t, err := decodeRecord(schema, raw)
		if err != nil {
			report.Skipped = append(report.Skipped, Skip{Index: i, Reason: err.Error()})
			continue
		}
		if seen[t.ID] {
			report.Skipped = append(report.Skipped, Skip{Index: i, Reason: fmt.Sprintf("duplicate id %d", t.ID)})
			continue
		}
		seen[t.ID] = true
		todos = append(todos, t)
	}
	return todos, report
}

func decodeRecord(schema *jsonschema.Schema, raw json.RawMessage) (todo.Todo, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return todo.Todo{}, err
	}
	if err := schema.Validate(doc); err != nil {
		return todo.Todo{}, describe(err)
	}

	var rec rawRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return todo.Todo{}, err
	}
	id, err := parseID(rec.ID)
	if err != nil {
		return todo.Todo{}, err
	}

	t := todo.Todo{
		ID:          id,
		Title:       rec.Title,
		Description: rec.Description,
		Status:      todo.Status(rec.Status),
	}
	if rec.DueDate != nil {
		due, err := time.Parse(time.RFC3339Nano, *rec.DueDate)
		if err != nil {
			return todo.Todo{}, fmt.Errorf("dueDate: %w", err)
		}
		due = due.UTC()
		t.DueDate = &due
	}
	return t, nil
}

func parseID(raw json.RawMessage) (int64, error) {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("id: %w", err)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id: %w", err)
	}
	return n, nil
}

// describe flattens a schema validation error into its leaf messages.
func describe(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	var msgs []string
	collect(ve, &msgs)
	return errors.New(strings.Join(msgs, "; "))
}

func collect(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, loc+": "+ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collect(cause, msgs)
	}
}
