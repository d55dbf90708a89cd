// Package ingest reads CSV files into dense row-major buffers for the
// runtime. The runtime core never parses files itself: it receives a
// fully populated buffer through rt's NewFloatMatrixFrom.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Table is a parsed CSV file as a dense row-major float buffer.
type Table struct {
	Path string
	Rows int
	Cols int
	Data []float64
}

// ReadFile parses a CSV file. The first line fixes the column count;
// lines with more than one character count as rows; unparseable fields
// read as 0. These lenient rules match what generated programs expect
// from the ingestion builtin.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: cannot open %q: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ingest: read %q: %w", path, err)
	}
	if len(lines) == 0 {
		return &Table{Path: path}, nil
	}

	cols := strings.Count(lines[0], ",") + 1
	rows := 0
	for _, line := range lines {
		if len(line) > 1 {
			rows++
		}
	}

	data := make([]float64, rows*cols)
	r := 0
	for _, line := range lines {
		if len(line) <= 1 {
			continue
		}
		fields := strings.Split(line, ",")
		for c := 0; c < cols && c < len(fields); c++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(fields[c]), 64)
			if err != nil {
				v = 0
			}
			data[r*cols+c] = v
		}
		r++
		if r == rows {
			break
		}
	}
	return &Table{Path: path, Rows: rows, Cols: cols, Data: data}, nil
}

// ReadAll parses every path concurrently, capped at NumCPU workers, and
// returns the tables in input order. The first failure cancels the rest.
func ReadAll(ctx context.Context, paths []string) ([]*Table, error) {
	tables := make([]*Table, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := ReadFile(path)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}
