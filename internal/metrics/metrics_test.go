package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// getTestMetrics returns metrics registered against an isolated registry
func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}

// TestMetricsInitialization tests that all metrics are properly initialized
func TestMetricsInitialization(t *testing.T) {
	m := getTestMetrics()

	// Test that all metrics are non-nil
	if m.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal should not be nil")
	}
	if m.HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration should not be nil")
	}
	if m.DBConnectionsOpen == nil {
		t.Error("DBConnectionsOpen should not be nil")
	}
	if m.DBConnectionsInUse == nil {
		t.Error("DBConnectionsInUse should not be nil")
	}
	if m.DBConnectionsIdle == nil {
		t.Error("DBConnectionsIdle should not be nil")
	}
	if m.DBConnectionsMax == nil {
		t.Error("DBConnectionsMax should not be nil")
	}
	if m.DBConnectionWaitTotal == nil {
		t.Error("DBConnectionWaitTotal should not be nil")
	}
	if m.DBConnectionWaitDuration == nil {
		t.Error("DBConnectionWaitDuration should not be nil")
	}
	if m.DBQueryDuration == nil {
		t.Error("DBQueryDuration should not be nil")
	}
	if m.DBQueryErrors == nil {
		t.Error("DBQueryErrors should not be nil")
	}
	if m.ExternalAPIRequestDuration == nil {
		t.Error("ExternalAPIRequestDuration should not be nil")
	}
	if m.ExternalAPIRequestsTotal == nil {
		t.Error("ExternalAPIRequestsTotal should not be nil")
	}
	if m.ExternalAPIErrors == nil {
		t.Error("ExternalAPIErrors should not be nil")
	}
	if m.CategoriesTotal == nil {
		t.Error("CategoriesTotal should not be nil")
	}
	if m.ProjectsTotal == nil {
		t.Error("ProjectsTotal should not be nil")
	}
	if m.EditSessionsActive == nil {
		t.Error("EditSessionsActive should not be nil")
	}
	if m.CategoryCreatedTotal == nil {
		t.Error("CategoryCreatedTotal should not be nil")
	}
	if m.CategoryUpdatedTotal == nil {
		t.Error("CategoryUpdatedTotal should not be nil")
	}
	if m.ProjectCreatedTotal == nil {
		t.Error("ProjectCreatedTotal should not be nil")
	}
	if m.ProjectUpdatedTotal == nil {
		t.Error("ProjectUpdatedTotal should not be nil")
	}
	if m.ImagesUploadedTotal == nil {
		t.Error("ImagesUploadedTotal should not be nil")
	}
	if m.UploadsCleanedTotal == nil {
		t.Error("UploadsCleanedTotal should not be nil")
	}
}
