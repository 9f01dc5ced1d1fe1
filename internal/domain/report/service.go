package report

import "context"

// Service builds the per-employee attendance aggregation.
type Service interface {
	// Generate scans records matching the filter and returns one row per
	// employee, sorted ascending by employee id.
	Generate(ctx context.Context, filter Filter) ([]Row, error)
}
