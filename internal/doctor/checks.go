package doctor

import (
	"fmt"
	"sync"
)

// CheckStatus is the outcome level of a single diagnostic check.
type CheckStatus int

const (
	StatusPass CheckStatus = iota
	StatusWarn
	StatusFail
)

var statusNames = map[CheckStatus]string{
	StatusPass: "pass",
	StatusWarn: "warn",
	StatusFail: "fail",
}

// String returns a human-readable status string.
func (s CheckStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// CheckResult contains the outcome of running a check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Fixable    bool        `json:"fixable,omitempty"` // addressable by --fix
}

// Check is one diagnostic probe.
type Check interface {
	// Name identifies the check in reports.
	Name() string

	// Category returns the report section the check belongs to ("CONFIG",
	// "METRICS", "INSTALL", or "NETWORK").
	Category() string

	// Run executes the probe.
	Run() CheckResult

	// Fix attempts an automatic remedy. Nil means fixed, or nothing to do.
	Fix() error
}

// RunAll executes checks one at a time, in order.
func RunAll(checks []Check) []CheckResult {
	results := make([]CheckResult, 0, len(checks))
	for _, c := range checks {
		results = append(results, c.Run())
	}
	return results
}

// RunAllParallel executes every check in its own goroutine. The network
// probe and the CPU sampling check each block for around a second, so the
// doctor command uses this runner to keep the whole report under the
// slowest single check. Results keep the input order.
func RunAllParallel(checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))

	var wg sync.WaitGroup
	wg.Add(len(checks))
	for i, c := range checks {
		go func(slot *CheckResult, c Check) {
			defer wg.Done()
			*slot = c.Run()
		}(&results[i], c)
	}
	wg.Wait()

	return results
}

// GroupByCategory buckets checks into report sections.
func GroupByCategory(checks []Check) map[string][]Check {
	byCategory := make(map[string][]Check)
	for _, c := range checks {
		byCategory[c.Category()] = append(byCategory[c.Category()], c)
	}
	return byCategory
}

// CountByStatus tallies results per status.
func CountByStatus(results []CheckResult) map[CheckStatus]int {
	counts := make(map[CheckStatus]int)
	for _, res := range results {
		counts[res.Status]++
	}
	return counts
}

// HasFailures reports whether any check failed outright.
func HasFailures(results []CheckResult) bool {
	return statusPresent(results, StatusFail)
}

// HasIssues reports whether any check failed or warned.
func HasIssues(results []CheckResult) bool {
	return statusPresent(results, StatusFail) || statusPresent(results, StatusWarn)
}

func statusPresent(results []CheckResult, status CheckStatus) bool {
	for _, res := range results {
		if res.Status == status {
			return true
		}
	}
	return false
}

// FixableCount returns how many current issues an automatic fix could
// address. Passing checks never need fixing, unfixable failures can't be.
func FixableCount(results []CheckResult) int {
	n := 0
	for _, res := range results {
		if !res.Fixable {
			continue
		}
		if res.Status == StatusFail || res.Status == StatusWarn {
			n++
		}
	}
	return n
}

// Summary returns a one-line rollup of the check results.
func Summary(results []CheckResult) string {
	counts := CountByStatus(results)
	issues := counts[StatusFail] + counts[StatusWarn]
	if issues == 0 {
		return "Everything looks good"
	}
	return fmt.Sprintf("%d issue%s found", issues, pluralize(issues))
}

func pluralize(n int) string {
	if n != 1 {
		return "s"
	}
	return ""
}
