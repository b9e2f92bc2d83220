package monitoring

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthStatus represents the health status of the service
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthReport represents the health check response body
type HealthReport struct {
	Status    HealthStatus           `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Service   string                 `json:"service"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// HealthHandler returns a health check handler reporting the given
// service name and detail snapshot on every request.
func HealthHandler(service string, details func() map[string]interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := HealthReport{
			Status:    HealthStatusHealthy,
			Timestamp: time.Now(),
			Service:   service,
		}
		if details != nil {
			report.Details = details()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(report)
	}
}
