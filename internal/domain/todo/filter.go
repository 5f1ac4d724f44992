package todo

// Filter holds optional filter criteria for querying todos.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status Status
}

// Matches reports whether t satisfies the filter.
func (f Filter) Matches(t *Todo) bool {
	return f.Status == "" || t.Status == f.Status
}
