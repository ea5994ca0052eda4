package batch

import (
	"io"

	"github.com/gocarina/gocsv"
)

// Result is the outcome of one item.
type Result struct {
	SKU     string `json:"sku" csv:"sku"`
	Success bool   `json:"success" csv:"success"`
	Action  string `json:"action,omitempty" csv:"action"`
	Message string `json:"message,omitempty" csv:"message"`
	Error   string `json:"error,omitempty" csv:"error"`
}

// Summary aggregates results.
type Summary struct {
	Total       int      `json:"total"`
	Succeeded   int      `json:"succeeded"`
	Failed      int      `json:"failed"`
	SuccessRate float64  `json:"success_rate"`
	Successful  []string `json:"successful"`
	Failures    []string `json:"failures"`
}

// Summarize counts successes and failures. SuccessRate is a percentage.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results), Successful: []string{}, Failures: []string{}}
	for _, r := range results {
		if r.Success {
			s.Succeeded++
			s.Successful = append(s.Successful, r.SKU)
		} else {
			s.Failed++
			s.Failures = append(s.Failures, r.SKU)
		}
	}
	if s.Total > 0 {
		s.SuccessRate = float64(s.Succeeded) / float64(s.Total) * 100
	}
	return s
}

// WriteCSV writes one row per result with a header line.
func WriteCSV(w io.Writer, results []Result) error {
	return gocsv.Marshal(results, w)
}
