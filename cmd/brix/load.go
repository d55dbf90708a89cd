package main

import (
	"fmt"
	"path/filepath"

	"brix/internal/ingest"
	"brix/internal/rt"
	"brix/internal/snapshot"
)

// loadFloatMatrix reads a matrix from a CSV file or a .bxm snapshot into
// the heap. Integer snapshots are promoted so every command downstream
// works on floats.
func loadFloatMatrix(h *rt.Heap, path string) (rt.Handle, error) {
	if filepath.Ext(path) == ".bxm" {
		payload, err := snapshot.Load(path)
		if err != nil {
			return 0, err
		}
		switch payload.Kind {
		case snapshot.KindFloat:
			return h.NewFloatMatrixFrom(payload.Rows, payload.Cols, payload.F64), nil
		case snapshot.KindInt:
			im := h.NewIntMatrixFrom(payload.Rows, payload.Cols, payload.I64)
			fm := h.PromoteIntMat(im)
			h.Release(im)
			return fm, nil
		}
		return 0, fmt.Errorf("unsupported snapshot kind %d", payload.Kind)
	}

	table, err := ingest.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return h.NewFloatMatrixFrom(table.Rows, table.Cols, table.Data), nil
}

func printMatrix(h *rt.Heap, a rt.Handle) {
	rows, cols := h.MatRows(a), h.MatCols(a)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%g", h.MatAt(a, i, j))
		}
		fmt.Println()
	}
}
