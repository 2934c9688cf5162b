package doctor

import (
	"strings"
	"testing"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/logger"
)

func testCollector() *collector.Collector {
	return collector.New(logger.Noop())
}

func TestHostInfoCheck(t *testing.T) {
	check := &HostInfoCheck{Collector: testCollector()}

	t.Run("name and category", func(t *testing.T) {
		if check.Name() != "host_info" {
			t.Errorf("expected name 'host_info', got %s", check.Name())
		}
		if check.Category() != "METRICS" {
			t.Errorf("expected category 'METRICS', got %s", check.Category())
		}
	})

	t.Run("reads host info", func(t *testing.T) {
		result := check.Run()
		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
		if !strings.Contains(result.Message, "Host info readable") {
			t.Errorf("unexpected message: %s", result.Message)
		}
	})
}

func TestProcessTableCheck(t *testing.T) {
	check := &ProcessTableCheck{Collector: testCollector()}

	t.Run("name and category", func(t *testing.T) {
		if check.Name() != "process_table" {
			t.Errorf("expected name 'process_table', got %s", check.Name())
		}
		if check.Category() != "METRICS" {
			t.Errorf("expected category 'METRICS', got %s", check.Category())
		}
	})

	t.Run("enumerates processes", func(t *testing.T) {
		// The test process itself guarantees a non-empty table.
		result := check.Run()
		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})
}

func TestCPUSampleCheck(t *testing.T) {
	check := &CPUSampleCheck{Collector: testCollector()}

	t.Run("name and category", func(t *testing.T) {
		if check.Name() != "cpu_sample" {
			t.Errorf("expected name 'cpu_sample', got %s", check.Name())
		}
		if check.Category() != "METRICS" {
			t.Errorf("expected category 'METRICS', got %s", check.Category())
		}
	})

	t.Run("samples cpu", func(t *testing.T) {
		result := check.Run()
		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})
}

func TestNewMetricsChecks(t *testing.T) {
	checks := NewMetricsChecks(testCollector())
	if len(checks) != 3 {
		t.Fatalf("expected 3 metrics checks, got %d", len(checks))
	}
	for _, c := range checks {
		if c.Category() != "METRICS" {
			t.Errorf("check %s has category %s, want METRICS", c.Name(), c.Category())
		}
	}
}
