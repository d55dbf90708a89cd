package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"brix/internal/ingest"
	"brix/internal/observ"
	"brix/internal/rt"
	"brix/internal/rt/linalg"
	"brix/internal/testkit"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file...]",
	Short: "Run runtime self-checks over a dataset",
	Long: `Load every dataset matrix (from brix.toml or the given files) and run the
runtime's invariant checks against each: transpose involution, add/sub
round-trip, and inverse verification for square matrices`,
	RunE: runCheck,
}

var checkTimings string

func init() {
	checkCmd.Flags().StringVar(&checkTimings, "timings", "", "print per-phase timings after the report (text|json)")
	checkCmd.Flags().Lookup("timings").NoOptDefVal = "text"
}

func runCheck(cmd *cobra.Command, args []string) error {
	timer := observ.NewTimer()
	paths := args
	if len(paths) == 0 {
		manifest, ok, err := loadDatasetManifest(".")
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(noBrixTomlMessage)
		}
		paths = manifest.resolveFiles()
	}

	ingestPhase := timer.Begin("ingest")
	tables, err := ingest.ReadAll(cmd.Context(), paths)
	if err != nil {
		return err
	}
	timer.End(ingestPhase, fmt.Sprintf("%d file(s)", len(tables)))

	return withHeap(func(h *rt.Heap) error {
		var runner testkit.Runner
		for _, table := range tables {
			m := h.NewFloatMatrixFrom(table.Rows, table.Cols, table.Data)
			addChecks(&runner, h, table.Path, m)
		}

		runPhase := timer.Begin("checks")
		report := runner.Run()
		timer.End(runPhase, fmt.Sprintf("%d check(s)", len(report.Results)))

		report.Render(cmd.OutOrStdout())
		switch checkTimings {
		case "":
		case "json":
			if err := timer.WriteJSON(cmd.OutOrStdout()); err != nil {
				return err
			}
		case "text":
			fmt.Fprint(cmd.OutOrStdout(), timer.Summary())
		default:
			return fmt.Errorf("unsupported timings format %q (must be text or json)", checkTimings)
		}
		if report.Failed() > 0 {
			return fmt.Errorf("%d check(s) failed", report.Failed())
		}
		return nil
	})
}

func addChecks(runner *testkit.Runner, h *rt.Heap, name string, m rt.Handle) {
	runner.Add(name+": transpose involution", func(t *testkit.T) {
		tr := h.MatTranspose(m)
		trtr := h.MatTranspose(tr)
		t.ExpectMatEq(h, trtr, m, 0)
		h.Release(trtr)
		h.Release(tr)
	})
	runner.Add(name+": add/sub round-trip", func(t *testkit.T) {
		sum := h.MatAdd(m, m)
		back := h.MatSub(sum, m)
		t.ExpectMatEq(h, back, m, 0)
		h.Release(back)
		h.Release(sum)
	})
	if h.MatRows(m) == h.MatCols(m) && h.MatRows(m) > 0 {
		runner.Add(name+": inverse verification", func(t *testkit.T) {
			det := h.MatDet(m)
			if det == 0.0 {
				// singular within tolerance; nothing to verify
				return
			}
			inv, rtErr := h.MatInv(m)
			if rtErr != nil {
				t.Failf("%s", rtErr.Error())
				return
			}
			recovered, rtErr := h.MatInv(inv)
			if rtErr != nil {
				h.Release(inv)
				t.Failf("%s", rtErr.Error())
				return
			}
			t.ExpectMatEq(h, recovered, m, 1e6*linalg.SingularTol)
			h.Release(recovered)
			h.Release(inv)
		})
	}
}
