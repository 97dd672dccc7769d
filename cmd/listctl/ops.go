package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/listkit/internal/source"
	"github.com/joshuapare/listkit/pkg/list"
	"github.com/joshuapare/listkit/pkg/selection"
)

// opKind is a selection operation accepted by the select command.
type opKind int

const (
	opSelect opKind = iota
	opReplace
	opExtend
	opFocus
	opBlur
	opSelectAll
	opClear
	opToggleAll
	opFilter
)

var opNames = map[string]opKind{
	"select":     opSelect,
	"replace":    opReplace,
	"extend":     opExtend,
	"focus":      opFocus,
	"blur":       opBlur,
	"all":        opSelectAll,
	"clear":      opClear,
	"toggle-all": opToggleAll,
	"filter":     opFilter,
}

// takesArg reports whether the op is written "name:arg".
func (k opKind) takesArg() bool {
	switch k {
	case opSelect, opReplace, opExtend, opFocus, opFilter:
		return true
	}
	return false
}

type op struct {
	kind opKind
	arg  string
	raw  string
}

// parseOp parses "name" or "name:arg". Keys may contain ':'; only the first
// one separates.
func parseOp(raw string) (op, error) {
	name, arg, hasArg := strings.Cut(raw, ":")
	kind, ok := opNames[name]
	if !ok {
		return op{}, fmt.Errorf("unknown operation %q", raw)
	}
	if kind.takesArg() {
		if !hasArg {
			return op{}, fmt.Errorf("operation %q needs an argument (%s:<value>)", raw, name)
		}
		if arg == "" && kind != opFilter {
			return op{}, fmt.Errorf("operation %q needs a non-empty key", raw)
		}
	} else if hasArg {
		return op{}, fmt.Errorf("operation %q takes no argument", name)
	}
	return op{kind: kind, arg: arg, raw: raw}, nil
}

func parseOps(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))
	for _, a := range args {
		o, err := parseOp(a)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

type entryList = list.List[source.Entry, source.Entry, source.Entry]

// apply runs o against l. Only filter changes can fail.
func apply(l *entryList, o op, fuzzy bool) error {
	m := l.Manager()
	switch o.kind {
	case opSelect:
		m.Select(o.arg)
	case opReplace:
		m.Select(o.arg, selection.WithReplace())
	case opExtend:
		m.ExtendSelection(o.arg)
	case opFocus:
		m.SetFocusedKey(o.arg)
	case opBlur:
		m.SetFocused(false)
	case opSelectAll:
		m.SelectAll()
	case opClear:
		m.ClearSelection()
	case opToggleAll:
		m.ToggleSelectAll()
	case opFilter:
		return l.SetFilter(filterFor(o.arg, fuzzy))
	}
	return nil
}
