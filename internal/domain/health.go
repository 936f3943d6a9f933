package domain

// HealthStatus classifies a diagnostic check outcome.
type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthWarn  HealthStatus = "warn"
	HealthError HealthStatus = "error"
)

// HealthCheck is one diagnostic result.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport aggregates all diagnostic checks.
type HealthReport struct {
	Checks []HealthCheck
}
