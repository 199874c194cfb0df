package collector

import (
	"fmt"
	"strings"
	"time"

	"github.com/routeaudit/routeaudit/internal/routes"
)

// Outcome is the terminal state of one namespace fetch. It is never
// partially populated: either Records holds the full normalized route list
// for the namespace, or Err explains why no routes could be obtained.
type Outcome struct {
	// Namespace identifies which namespace this outcome is for
	Namespace string

	// Records contains the normalized routes (nil if the fetch failed)
	Records []routes.Record

	// Err contains the fetch failure (nil on success)
	Err error

	// Duration is how long the fetch took
	Duration time.Duration
}

// Succeeded reports whether the fetch produced a route list
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// CountSucceeded returns the number of successful outcomes
func CountSucceeded(outcomes []Outcome) int {
	count := 0
	for _, o := range outcomes {
		if o.Err == nil {
			count++
		}
	}
	return count
}

// CountFailed returns the number of failed outcomes
func CountFailed(outcomes []Outcome) int {
	count := 0
	for _, o := range outcomes {
		if o.Err != nil {
			count++
		}
	}
	return count
}

// Failed returns only the failed outcomes
func Failed(outcomes []Outcome) []Outcome {
	filtered := make([]Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// FailureByNamespace maps each failed namespace to its error
func FailureByNamespace(outcomes []Outcome) map[string]error {
	failures := make(map[string]error)
	for _, o := range outcomes {
		if o.Err != nil {
			failures[o.Namespace] = o.Err
		}
	}
	return failures
}

// RouteCount returns the total number of routes across all outcomes
func RouteCount(outcomes []Outcome) int {
	count := 0
	for _, o := range outcomes {
		count += len(o.Records)
	}
	return count
}

// Summary provides aggregate statistics for one collection run
type Summary struct {
	Total       int
	Succeeded   int
	Failed      int
	Routes      int
	MaxDuration time.Duration
}

// Summarize creates a summary of the outcomes
func Summarize(outcomes []Outcome) Summary {
	s := Summary{
		Total:     len(outcomes),
		Succeeded: CountSucceeded(outcomes),
		Failed:    CountFailed(outcomes),
		Routes:    RouteCount(outcomes),
	}

	for _, o := range outcomes {
		if o.Duration > s.MaxDuration {
			s.MaxDuration = o.Duration
		}
	}

	return s
}

// String returns a human-readable representation of the summary
func (s Summary) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Namespaces: %d, ", s.Total))
	sb.WriteString(fmt.Sprintf("Succeeded: %d, ", s.Succeeded))
	sb.WriteString(fmt.Sprintf("Failed: %d, ", s.Failed))
	sb.WriteString(fmt.Sprintf("Routes: %d", s.Routes))

	if s.Total > 0 {
		sb.WriteString(fmt.Sprintf(", Slowest: %s", s.MaxDuration.Round(time.Millisecond)))
	}

	return sb.String()
}
