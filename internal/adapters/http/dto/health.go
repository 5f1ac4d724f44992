package dto

import (
	"sort"

	"github.com/jsamuelsen11/taskboard/internal/platform/health"
)

// Readiness values reported by HealthResponse.Status.
const (
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
	checkUp        = "up"
	checkDown      = "down"
)

// HealthResponse is the readiness probe body.
type HealthResponse struct {
	Status string        `json:"status"`
	Checks []HealthCheck `json:"checks"`
}

// HealthCheck is one component's result. Error is set only when Status is
// "down".
type HealthCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ToHealthResponse converts registry results into a response sorted by
// component name.
func ToHealthResponse(results map[string]error) HealthResponse {
	resp := HealthResponse{
		Status: HealthReady,
		Checks: make([]HealthCheck, 0, len(results)),
	}
	if !health.Healthy(results) {
		resp.Status = HealthNotReady
	}

	for name, err := range results {
		c := HealthCheck{Name: name, Status: checkUp}
		if err != nil {
			c.Status, c.Error = checkDown, err.Error()
		}
		resp.Checks = append(resp.Checks, c)
	}
	sort.Slice(resp.Checks, func(i, j int) bool { return resp.Checks[i].Name < resp.Checks[j].Name })

	return resp
}
