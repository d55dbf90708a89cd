package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brix/internal/rt"
)

var detCmd = &cobra.Command{
	Use:   "det <file>",
	Short: "Compute the determinant of a square matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHeap(func(h *rt.Heap) error {
			m, err := loadFloatMatrix(h, args[0])
			if err != nil {
				return err
			}
			defer h.Release(m)
			fmt.Printf("%g\n", h.MatDet(m))
			return nil
		})
	},
}

var invCmd = &cobra.Command{
	Use:   "inv <file>",
	Short: "Compute the inverse of a square matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHeap(func(h *rt.Heap) error {
			m, err := loadFloatMatrix(h, args[0])
			if err != nil {
				return err
			}
			defer h.Release(m)
			inv, rtErr := h.MatInv(m)
			if rtErr != nil {
				return rtErr
			}
			defer h.Release(inv)
			printMatrix(h, inv)
			return nil
		})
	},
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <file>",
	Short: "Transpose a matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHeap(func(h *rt.Heap) error {
			m, err := loadFloatMatrix(h, args[0])
			if err != nil {
				return err
			}
			defer h.Release(m)
			tr := h.MatTranspose(m)
			defer h.Release(tr)
			printMatrix(h, tr)
			return nil
		})
	},
}

var eigVectors bool

func init() {
	eigCmd.Flags().BoolVar(&eigVectors, "vectors", false, "print right eigenvectors instead of eigenvalues")
}

var eigCmd = &cobra.Command{
	Use:   "eig [flags] <file>",
	Short: "Compute eigenvalues (or eigenvectors) of a square matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHeap(func(h *rt.Heap) error {
			m, err := loadFloatMatrix(h, args[0])
			if err != nil {
				return err
			}
			defer h.Release(m)
			if eigVectors {
				vecs := h.MatEigvecs(m)
				defer h.Release(vecs)
				printComplexMatrix(h, vecs)
				return nil
			}
			vals := h.MatEigvals(m)
			defer h.Release(vals)
			printComplexMatrix(h, vals)
			return nil
		})
	},
}

func printComplexMatrix(h *rt.Heap, a rt.Handle) {
	rows, cols := h.CplxRows(a), h.CplxCols(a)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				fmt.Print(" ")
			}
			v := h.CplxAt(a, i, j)
			fmt.Printf("%g%+gi", real(v), imag(v))
		}
		fmt.Println()
	}
}
