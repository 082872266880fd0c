package fetcher

import "fmt"

type Outcome uint8

const (
	OutcomeAlreadyPresent Outcome = iota
	OutcomeDownloaded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyPresent:
		return "already-present"
	case OutcomeDownloaded:
		return "downloaded"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Ready reports whether the file is available at its destination.
func (o Outcome) Ready() bool {
	return o == OutcomeAlreadyPresent || o == OutcomeDownloaded
}

// Result is the outcome of a single manifest entry.
type Result struct {
	File    string
	Path    string
	Outcome Outcome
	Written int64
	Err     error
}

// Summary collapses results into counts.
type Summary struct {
	Ready  int
	Failed int
	Total  int
}

func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Outcome.Ready() {
			s.Ready++
		} else {
			s.Failed++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d/%d", s.Ready, s.Total)
}
