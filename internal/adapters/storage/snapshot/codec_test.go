package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
)

func sampleTodos() []todo.Todo {
	due := time.Date(2026, 2, 3, 4, 5, 6, 789, time.FixedZone("X", 3600))
	return []todo.Todo{
		{ID: 2, Title: "write report", Description: "q1 numbers", Status: todo.StatusInProgress, DueDate: &due},
		{ID: 1, Title: "buy milk", Status: todo.StatusPending},
		{ID: 5, Title: "done thing", Description: "<b>&</b>", Status: todo.StatusCompleted},
	}
}

func TestEncode_Format(t *testing.T) {
	t.Parallel()
	due := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	got, err := Encode([]todo.Todo{
		{ID: 1, Title: "a", Status: todo.StatusPending},
		{ID: 2, Title: "b", Description: "d", Status: todo.StatusInProgress, DueDate: &due},
	})

	require.NoError(t, err)
	want := `[{"id":1,"title":"a","description":"","status":"pending"},` +
		`{"id":2,"title":"b","description":"d","status":"in_progress","dueDate":"2026-02-03T04:05:06Z"}]`
	assert.Equal(t, want, string(got))
}

func TestEncode_Empty(t *testing.T) {
	t.Parallel()
	got, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestEncode_DueDateYearRange(t *testing.T) {
	t.Parallel()

	last := time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)
	data, err := Encode([]todo.Todo{{ID: 1, Title: "a", Status: todo.StatusInProgress, DueDate: &last}})
	require.NoError(t, err)
	decoded, report := Decode(data)
	require.True(t, report.Clean(), "report = %+v", report)
	require.Len(t, decoded, 1)
	assert.True(t, decoded[0].DueDate.Equal(last))

	past := time.Date(9999, 12, 31, 23, 0, 0, 0, time.FixedZone("EST", -5*3600))
	_, err = Encode([]todo.Todo{{ID: 2, Title: "b", Status: todo.StatusInProgress, DueDate: &past}})
	assert.ErrorContains(t, err, "todo 2")
}

func TestRoundTrip_FixedPoint(t *testing.T) {
	t.Parallel()
	first, err := Encode(sampleTodos())
	require.NoError(t, err)

	decoded, report := Decode(first)
	require.True(t, report.Clean(), "report = %+v", report)
	second, err := Encode(decoded)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	require.Len(t, decoded, 3)
	assert.Equal(t, []int64{2, 1, 5}, []int64{decoded[0].ID, decoded[1].ID, decoded[2].ID})
	assert.True(t, decoded[0].DueDate.Equal(*sampleTodos()[0].DueDate))
	assert.Equal(t, time.UTC, decoded[0].DueDate.Location())
}

func TestDecode_Corrupt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		data        string
		wantCorrupt bool
	}{
		{name: "empty", data: "", wantCorrupt: false},
		{name: "whitespace", data: "  \n", wantCorrupt: false},
		{name: "not json", data: "{{{", wantCorrupt: true},
		{name: "object instead of array", data: `{"id":1}`, wantCorrupt: true},
		{name: "null", data: "null", wantCorrupt: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, report := Decode([]byte(tt.data))

			assert.NotNil(t, got)
			assert.Empty(t, got)
			assert.Equal(t, tt.wantCorrupt, report.Corrupt != nil)
		})
	}
}

func TestDecode_SkipsInvalidRecords(t *testing.T) {
	t.Parallel()
	data := `[
		{"id":1,"title":"ok","description":"","status":"pending"},
		{"id":2,"title":"","status":"pending"},
		{"id":3,"title":"bad status","status":"archived"},
		{"title":"no id","status":"pending"},
		{"id":1,"title":"duplicate","status":"completed"},
		{"id":4,"title":"bad date","status":"in_progress","dueDate":"tomorrow"},
		{"id":0,"title":"zero id","status":"pending"},
		42,
		{"id":"7","title":"string id","status":"in_progress","dueDate":null},
		{"id":"abc","title":"token id","status":"pending"}
	]`

	got, report := Decode([]byte(data))

	require.Nil(t, report.Corrupt)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "ok", got[0].Title)
	assert.Equal(t, int64(7), got[1].ID)
	assert.Nil(t, got[1].DueDate)

	skipped := make([]int, 0, len(report.Skipped))
	for _, s := range report.Skipped {
		skipped = append(skipped, s.Index)
		assert.NotEmpty(t, s.Reason)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 9}, skipped)
}

func TestDecode_DescriptionOptional(t *testing.T) {
	t.Parallel()
	got, report := Decode([]byte(`[{"id":9,"title":"t","status":"completed"}]`))

	require.True(t, report.Clean())
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Description)
}
