package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/cellwatch/cellwatch-go/pkg/scenario"
)

// printResult writes a scenario result in text form.
func printResult(w io.Writer, result *scenario.Result) {
	verdict := "PASS"
	if !result.Passed {
		verdict = "FAIL"
	}
	fmt.Fprintf(w, "[%s] %s %s (%s)\n", verdict, result.Scenario.ID, result.Scenario.Name, result.Duration.Round(time.Microsecond))

	if result.Error != nil {
		fmt.Fprintf(w, "  error: %v\n", result.Error)
	}

	for _, sr := range result.StepResults {
		if sr.Passed {
			continue
		}
		fmt.Fprintf(w, "  step %d (%s):", sr.StepIndex+1, sr.Step.Action)
		if sr.Error != nil {
			fmt.Fprintf(w, " %v\n", sr.Error)
			continue
		}
		fmt.Fprintln(w)

		for _, k := range slices.Sorted(maps.Keys(sr.ExpectResults)) {
			if er := sr.ExpectResults[k]; !er.Passed {
				fmt.Fprintf(w, "    %s: %s\n", k, er.Message)
			}
		}
	}
}
