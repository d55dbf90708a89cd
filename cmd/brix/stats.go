package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brix/internal/rt"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] <file>",
	Short: "Print descriptive statistics for a matrix",
	Long:  `Read a CSV file or .bxm snapshot and print sum, mean, median, variance, std, min and max`,
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	return withHeap(func(h *rt.Heap) error {
		m, err := loadFloatMatrix(h, args[0])
		if err != nil {
			return err
		}
		defer h.Release(m)

		fmt.Printf("shape:    %dx%d\n", h.MatRows(m), h.MatCols(m))
		fmt.Printf("sum:      %g\n", h.MatSum(m))
		fmt.Printf("mean:     %g\n", h.MatMean(m))
		fmt.Printf("median:   %g\n", h.MatMedian(m))
		fmt.Printf("variance: %g\n", h.MatVariance(m))
		fmt.Printf("std:      %g\n", h.MatStd(m))
		fmt.Printf("min:      %g\n", h.MatMin(m))
		fmt.Printf("max:      %g\n", h.MatMax(m))
		return nil
	})
}
