package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/listkit/internal/source"
	"github.com/joshuapare/listkit/pkg/list"
	"github.com/joshuapare/listkit/pkg/selection"
)

var (
	selectMode          string
	selectDisallowEmpty bool
	selectKeepAll       bool
	selectDefault       []string
	selectDisabled      []string
	selectFuzzy         bool
)

func init() {
	cmd := newSelectCmd()
	cmd.Flags().StringVar(&selectMode, "mode", "", "Selection mode: none, single or multiple (default from config)")
	cmd.Flags().BoolVar(&selectDisallowEmpty, "disallow-empty", false, "Forbid operations that would select nothing")
	cmd.Flags().BoolVar(&selectKeepAll, "keep-all", false, "Store select-all as the all sentinel")
	cmd.Flags().StringSliceVar(&selectDefault, "default", nil, "Initially selected keys (overrides the document)")
	cmd.Flags().StringSliceVar(&selectDisabled, "disabled", nil, "Additional disabled keys")
	cmd.Flags().BoolVar(&selectFuzzy, "fuzzy", false, "Use fuzzy matching for filter: operations")
	rootCmd.AddCommand(cmd)
}

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <file> <op>...",
		Short: "Apply selection operations and print the result",
		Long: `The select command applies selection operations in order and prints every
selection change followed by the final selection.

Operations:
  select:KEY    select (single) or toggle (multiple) KEY
  replace:KEY   select only KEY
  extend:KEY    select the range from the focused key to KEY
  focus:KEY     focus KEY
  blur          drop focus, keeping the focused key
  all           select every selectable key
  clear         deselect everything
  toggle-all    clear a full selection, otherwise select all
  filter:QUERY  rebuild with a filter ("filter:" clears it)

Example:
  listctl select fruits.yaml select:apple select:banana --mode multiple
  listctl select fruits.yaml focus:apple extend:lime --mode multiple
  listctl select fruits.yaml all --disabled banana`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := selectOptionsFromFlags(cmd)
			if err != nil {
				return err
			}
			return runSelect(cmd.OutOrStdout(), args[0], args[1:], opts)
		},
	}
}

// selectRun holds the resolved inputs of one select invocation.
type selectRun struct {
	mode          selection.Mode
	disallowEmpty bool
	keepAll       bool
	defaults      []string // nil means use the document
	disabled      []string
	fuzzy         bool
}

func selectOptionsFromFlags(cmd *cobra.Command) (selectRun, error) {
	flags := cmd.Flags()

	rawMode := cfg.Selection.Mode
	if flags.Changed("mode") {
		rawMode = selectMode
	}
	mode, err := selection.ParseMode(rawMode)
	if err != nil {
		return selectRun{}, err
	}

	run := selectRun{
		mode:          mode,
		disallowEmpty: cfg.Selection.DisallowEmpty,
		keepAll:       cfg.Selection.KeepAll,
		disabled:      selectDisabled,
		fuzzy:         cfg.Fuzzy(),
	}
	if flags.Changed("disallow-empty") {
		run.disallowEmpty = selectDisallowEmpty
	}
	if flags.Changed("keep-all") {
		run.keepAll = selectKeepAll
	}
	if flags.Changed("fuzzy") {
		run.fuzzy = selectFuzzy
	}
	if flags.Changed("default") {
		run.defaults = selectDefault
		if run.defaults == nil {
			run.defaults = []string{}
		}
	}
	return run, nil
}

type selectResult struct {
	Changes  [][]string `json:"changes"`
	Selected []string   `json:"selected"`
	Focused  string     `json:"focused,omitempty"`
}

func runSelect(w io.Writer, path string, rawOps []string, run selectRun) error {
	ops, err := parseOps(rawOps)
	if err != nil {
		return err
	}

	doc, err := source.Load(path)
	if err != nil {
		return err
	}

	defaults := doc.Selected
	if run.defaults != nil {
		defaults = run.defaults
	}

	var result selectResult
	onChange := func(s selection.Set) {
		keys := s.Keys()
		if s.IsAll() {
			keys = []string{"*"}
		}
		result.Changes = append(result.Changes, keys)
		if !jsonOut {
			fmt.Fprintf(w, "selection: %s\n", s)
		}
	}

	l, err := list.New(list.Options[source.Entry, source.Entry, source.Entry]{
		Source:       doc.Elements(),
		MapItem:      source.MapItem,
		MapSection:   source.MapSection,
		DisabledKeys: append(append([]string(nil), doc.Disabled...), run.disabled...),
		Selection: selection.StateOptions{
			Mode:          run.mode,
			DisallowEmpty: run.disallowEmpty,
			KeepAll:       run.keepAll,
			Selected:      selection.Uncontrolled(selection.NewSet(defaults...), onChange),
		},
	})
	if err != nil {
		return fmt.Errorf("build collection: %w", err)
	}
	defer l.Close()

	for _, o := range ops {
		printVerbose(w, "op %s\n", o.raw)
		if err := apply(l, o, run.fuzzy); err != nil {
			return fmt.Errorf("%s: %w", o.raw, err)
		}
	}

	m := l.Manager()
	result.Selected = m.SelectedKeys()
	result.Focused = m.FocusedKey()
	if result.Selected == nil {
		result.Selected = []string{}
	}

	if jsonOut {
		return printJSON(w, result)
	}
	fmt.Fprintf(w, "selected: %s\n", strings.Join(result.Selected, " "))
	if result.Focused != "" {
		fmt.Fprintf(w, "focused: %s\n", result.Focused)
	}
	return nil
}
