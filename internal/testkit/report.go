package testkit

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const time10us = 10 * time.Microsecond

// Report is the collected outcome of a runner pass.
type Report struct {
	Results []Result
}

// Passed returns the number of passing checks.
func (rep Report) Passed() int {
	n := 0
	for _, r := range rep.Results {
		if r.Pass {
			n++
		}
	}
	return n
}

// Failed returns the number of failing checks.
func (rep Report) Failed() int {
	return len(rep.Results) - rep.Passed()
}

var (
	passMark = color.New(color.FgGreen, color.Bold)
	failMark = color.New(color.FgRed, color.Bold)

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	summaryFail = summaryStyle.BorderForeground(lipgloss.Color("9"))
	summaryPass = summaryStyle.BorderForeground(lipgloss.Color("10"))
)

// Render writes one line per check plus a summary block. Names are padded
// by display width so marks and timings line up.
func (rep Report) Render(w io.Writer) {
	nameWidth := 0
	for _, r := range rep.Results {
		if width := runewidth.StringWidth(r.Name); width > nameWidth {
			nameWidth = width
		}
	}

	for _, r := range rep.Results {
		mark := passMark.Sprint("ok  ")
		if !r.Pass {
			mark = failMark.Sprint("FAIL")
		}
		fmt.Fprintf(w, "%s %s %s\n", mark, runewidth.FillRight(r.Name, nameWidth), r.Elapsed.Round(time10us))
		for _, msg := range r.Messages {
			fmt.Fprintf(w, "     %s\n", msg)
		}
	}

	summary := fmt.Sprintf("%d passed, %d failed", rep.Passed(), rep.Failed())
	style := summaryPass
	if rep.Failed() > 0 {
		style = summaryFail
	}
	fmt.Fprintln(w, style.Render(summary))
}

// String renders the report without a writer, for logs and tests.
func (rep Report) String() string {
	var sb strings.Builder
	rep.Render(&sb)
	return sb.String()
}
