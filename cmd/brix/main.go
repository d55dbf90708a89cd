package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"brix/internal/rt"
	"brix/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "brix",
	Short: "Brix runtime toolkit",
	Long:  `Inspect and exercise the Brix value runtime: matrix math, statistics and dataset checks`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(detCmd)
	rootCmd.AddCommand(invCmd)
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(eigCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(checkCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	cobra.OnInitialize(setupColor)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupColor() {
	mode, err := rootCmd.PersistentFlags().GetString("color")
	if err != nil {
		return
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// withHeap runs fn against a fresh heap. A runtime fault is the fatal
// tier: print the diagnostic and terminate, matching what generated
// programs do.
func withHeap(fn func(h *rt.Heap) error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			rtErr, ok := rec.(*rt.Error)
			if !ok {
				panic(rec)
			}
			fmt.Fprintln(os.Stderr, rtErr.Error())
			os.Exit(1)
		}
	}()
	return fn(rt.NewHeap())
}
