package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"brix/internal/ingest"
	"brix/internal/snapshot"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert between CSV matrices and .bxm snapshots",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	inExt, outExt := filepath.Ext(in), filepath.Ext(out)

	switch {
	case inExt != ".bxm" && outExt == ".bxm":
		table, err := ingest.ReadFile(in)
		if err != nil {
			return err
		}
		return snapshot.Save(out, &snapshot.Payload{
			Kind: snapshot.KindFloat,
			Rows: table.Rows,
			Cols: table.Cols,
			F64:  table.Data,
		})
	case inExt == ".bxm" && outExt != ".bxm":
		payload, err := snapshot.Load(in)
		if err != nil {
			return err
		}
		return writeCSV(out, payload)
	default:
		return fmt.Errorf("convert: exactly one of %q and %q must be a .bxm snapshot", in, out)
	}
}

func writeCSV(path string, payload *snapshot.Payload) error {
	var sb strings.Builder
	for i := 0; i < payload.Rows; i++ {
		for j := 0; j < payload.Cols; j++ {
			if j > 0 {
				sb.WriteByte(',')
			}
			switch payload.Kind {
			case snapshot.KindFloat:
				fmt.Fprintf(&sb, "%g", payload.F64[i*payload.Cols+j])
			case snapshot.KindInt:
				fmt.Fprintf(&sb, "%d", payload.I64[i*payload.Cols+j])
			}
		}
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
