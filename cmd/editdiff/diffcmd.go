package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mireth/seqalign/editgraph"
	"github.com/mireth/seqalign/editscript"
	"github.com/mireth/seqalign/seqcost"
)

var (
	styleIns = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))  // green
	styleDel = lipgloss.NewStyle().Foreground(lipgloss.Color("167")) // soft red
	styleEql = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // dim gray
	styleHdr = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
)

func newDiffCmd() *cobra.Command {
	var beam int
	var costProfilePath string
	var context int

	cmd := &cobra.Command{
		Use:   "diff <fileA> <fileB>",
		Short: "Show a line-oriented edit diff between two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			aLines, err := readLines(args[0])
			if err != nil {
				return fmt.Errorf("editdiff: reading %s: %w", args[0], err)
			}
			bLines, err := readLines(args[1])
			if err != nil {
				return fmt.Errorf("editdiff: reading %s: %w", args[1], err)
			}

			policy := seqcost.Unit[string]()
			if costProfilePath != "" {
				cp, err := loadCostProfile(costProfilePath)
				if err != nil {
					return fmt.Errorf("editdiff: loading cost profile: %w", err)
				}
				policy = cp.policy()
				logger.Debugf("loaded cost profile from %s: %+v", costProfilePath, cp)
			}

			cfg := editgraph.NewConfig(editgraph.WithSub())
			if cmd.Flags().Changed("beam") {
				cfg = editgraph.NewConfig(editgraph.WithSub(), editgraph.WithEditBeam(beam))
			}

			collector := editscript.NewCollector[string, string, int]()
			cost, err := editgraph.Align(aLines, bLines, collector, policy, cfg)
			if err != nil {
				return fmt.Errorf("editdiff: aligning %s and %s: %w", args[0], args[1], err)
			}

			renderUnified(cmd.OutOrStdout(), args[0], args[1], collector.Edits, context)
			prog.done(fmt.Sprintf("aligned %d/%d lines at cost %d", len(aLines), len(bLines), cost))
			return nil
		},
	}

	cmd.Flags().IntVar(&beam, "beam", 0, "restrict the search to an edit beam of this width around the main diagonal")
	cmd.Flags().StringVar(&costProfilePath, "cost-profile", "", "TOML file describing insert/delete/substitute costs")
	cmd.Flags().IntVar(&context, "context", 3, "number of unchanged lines of context around each hunk")

	return cmd
}

// readLines splits a file's contents into lines, dropping a single
// trailing empty line produced by a final newline.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// renderUnified writes a unified-diff-style rendering of script to w,
// grouped into hunks and styled with lipgloss (ins=green, del=red,
// eql=dim).
func renderUnified(w io.Writer, pathA, pathB string, script []editscript.Edit[string, string, int], context int) {
	hunks := editscript.Hunks(script, context)
	if len(hunks) == 0 {
		return
	}

	fmt.Fprintln(w, styleHdr.Render("--- "+pathA))
	fmt.Fprintln(w, styleHdr.Render("+++ "+pathB))

	for _, h := range hunks {
		fmt.Fprintln(w, styleHdr.Render(fmt.Sprintf("@@ hunk: %d edits @@", h.Edits)))
		for _, e := range script[h.Start:h.End] {
			switch e.Kind {
			case editscript.Eql:
				fmt.Fprintln(w, styleEql.Render("  "+deref(e.A)))
			case editscript.Ins:
				fmt.Fprintln(w, styleIns.Render("+ "+deref(e.B)))
			case editscript.Del:
				fmt.Fprintln(w, styleDel.Render("- "+deref(e.A)))
			case editscript.Sub:
				fmt.Fprintln(w, styleDel.Render("- "+deref(e.A)))
				fmt.Fprintln(w, styleIns.Render("+ "+deref(e.B)))
			}
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
