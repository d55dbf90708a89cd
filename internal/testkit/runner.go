package testkit

import (
	"time"

	"brix/internal/rt"
)

// Check is a named test body.
type Check struct {
	Name string
	Fn   func(*T)
}

// Result is the structured outcome of one check.
type Result struct {
	Name     string
	Pass     bool
	Messages []string
	Elapsed  time.Duration
}

// Runner executes checks in registration order.
type Runner struct {
	checks []Check
}

// Add registers a named check.
func (r *Runner) Add(name string, fn func(*T)) {
	r.checks = append(r.checks, Check{Name: name, Fn: fn})
}

// Run executes every check and collects results. A runtime fault raised
// inside a body cancels only that check: the fault's diagnostic becomes
// its failure message and the remaining checks still run.
func (r *Runner) Run() Report {
	results := make([]Result, 0, len(r.checks))
	for _, c := range r.checks {
		results = append(results, runCheck(c))
	}
	return Report{Results: results}
}

func runCheck(c Check) Result {
	start := time.Now()
	t := &T{}
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				if rtErr, ok := rec.(*rt.Error); ok {
					t.Failf("%s", rtErr.Error())
					return
				}
				panic(rec)
			}
		}()
		c.Fn(t)
	}()
	return Result{
		Name:     c.Name,
		Pass:     !t.Failed(),
		Messages: t.failures,
		Elapsed:  time.Since(start),
	}
}
