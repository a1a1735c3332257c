// Package runner executes a fixed, ordered list of checks and reports the
// aggregate outcome.
package runner

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/vertti/devready/pkg/check"
	"github.com/vertti/devready/pkg/logging"
	"github.com/vertti/devready/pkg/output"
)

// Step is one labelled check in the run.
type Step struct {
	Label string
	Check check.Checker
}

// Report holds every result in run order.
type Report struct {
	Results []check.Result
}

// OK returns the overall status: no check that ran to completion failed.
func (r Report) OK() bool {
	return check.Overall(r.Results)
}

// Runner runs steps one after another. Checks never short-circuit: a
// failing or skipped step does not stop the ones after it.
type Runner struct {
	Out io.Writer
	Log logrus.FieldLogger
}

// Run executes steps in order, printing progress and each outcome, then
// the final banner.
func (r *Runner) Run(steps []Step) Report {
	log := r.Log
	if log == nil {
		log = logging.Discard()
	}
	log = log.WithField("component", "runner")

	report := Report{Results: make([]check.Result, 0, len(steps))}
	for i, s := range steps {
		output.PrintChecking(r.Out, s.Label)

		result := s.Check.Run()
		if result.Name == "" {
			result.Name = s.Label
		}
		output.PrintResult(r.Out, result)

		entry := log.WithFields(logrus.Fields{
			"step":   i + 1,
			"label":  s.Label,
			"status": result.Status,
		})
		if result.Err != nil {
			entry = entry.WithError(result.Err)
		}
		entry.Debug("check completed")

		report.Results = append(report.Results, result)
	}

	ok := report.OK()
	log.WithFields(logrus.Fields{
		"passed":  check.Count(report.Results, check.StatusOK),
		"failed":  check.Count(report.Results, check.StatusFail),
		"skipped": check.Count(report.Results, check.StatusSkip),
	}).Debug("run finished")

	output.PrintBanner(r.Out, ok)
	return report
}
