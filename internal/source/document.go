// Package source reads list data sources from YAML or JSON documents.
//
// A document is a tree of entries. An entry with child items, or with
// section set, is a section; every other entry is an item:
//
//	items:
//	  - key: fruits
//	    text: Fruits
//	    items:
//	      - key: apple
//	      - key: banana
//	        disabled: true
//	  - key: bread
//	selected: [apple]
//	disabled: [bread]
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/listkit/pkg/types"
)

// Entry is one item or section in a document.
type Entry struct {
	Key      string  `yaml:"key" json:"key"`
	Text     string  `yaml:"text,omitempty" json:"text,omitempty"`
	Disabled bool    `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Section  bool    `yaml:"section,omitempty" json:"section,omitempty"`
	Items    []Entry `yaml:"items,omitempty" json:"items,omitempty"`
}

// IsSection reports whether e is a section.
func (e Entry) IsSection() bool { return e.Section || len(e.Items) > 0 }

// Document is a parsed data source plus optional initial state.
type Document struct {
	Items    []Entry  `yaml:"items"`
	Selected []string `yaml:"selected,omitempty"`
	Disabled []string `yaml:"disabled,omitempty"`
}

// Element is the source element type produced from documents: both items and
// sections are Entries.
type Element = types.Element[Entry, Entry]

// Parse decodes a YAML or JSON document. Unknown fields are rejected. An empty
// input is an empty document.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, &types.Error{Kind: types.ErrKindSource, Msg: "parse document", Err: err}
	}
	return &doc, nil
}

// Load parses the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Elements converts the document tree into tagged source elements.
func (d *Document) Elements() []Element {
	return elements(d.Items)
}

func elements(entries []Entry) []Element {
	out := make([]Element, 0, len(entries))
	for _, e := range entries {
		if e.IsSection() {
			out = append(out, types.SectionElement(e, elements(e.Items)...))
			continue
		}
		out = append(out, types.ItemElement[Entry, Entry](e))
	}
	return out
}

// MapItem maps an item entry to an Item carrying the entry as its value.
func MapItem(e Entry) (types.Item[Entry], error) {
	return types.Item[Entry]{Key: e.Key, Value: e, TextValue: e.Text, Disabled: e.Disabled}, nil
}

// MapSection maps a section entry to a Section carrying the entry as its value.
func MapSection(e Entry) (types.Section[Entry], error) {
	return types.Section[Entry]{Key: e.Key, Value: e, TextValue: e.Text}, nil
}
