package fs

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notenik/pkg/core"
)

// Exporter writes a batch of parsed notes in an interchange format.
type Exporter interface {
	Export(w io.Writer, notes []*core.Note) error
}

// FieldRecord is one field of an exported note.
type FieldRecord struct {
	Label string `json:"label" yaml:"label"`
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

// Record is the exported form of a note: its dialect plus its fields in
// schema order.
type Record struct {
	Title   string        `json:"title" yaml:"title"`
	Dialect string        `json:"dialect" yaml:"dialect"`
	Fields  []FieldRecord `json:"fields" yaml:"fields"`
}

// NewRecord flattens n for export.
func NewRecord(n *core.Note) Record {
	r := Record{Title: n.Title(), Dialect: n.Dialect.String()}
	for _, f := range n.Fields() {
		r.Fields = append(r.Fields, FieldRecord{
			Label: f.Def.Label.Proper,
			Kind:  f.Def.Kind.String(),
			Value: f.Value.String(),
		})
	}
	return r
}

func records(notes []*core.Note) []Record {
	out := make([]Record, len(notes))
	for i, n := range notes {
		out[i] = NewRecord(n)
	}
	return out
}

// Exporters returns the built-in exporters keyed by format name.
func Exporters() map[string]Exporter {
	return map[string]Exporter{
		"json": JSONExporter{Indent: "  "},
		"yaml": YAMLExporter{},
		"yml":  YAMLExporter{},
		"csv":  CSVExporter{},
	}
}

// ExporterFor looks up an exporter by format name.
func ExporterFor(format string) (Exporter, error) {
	e, ok := Exporters()[strings.ToLower(format)]
	if !ok {
		names := make([]string, 0, len(Exporters()))
		for name := range Exporters() {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown export format %q (want one of %s)", format, strings.Join(names, ", "))
	}
	return e, nil
}

// JSONExporter writes an array of records.
type JSONExporter struct {
	Indent string
}

func (e JSONExporter) Export(w io.Writer, notes []*core.Note) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", e.Indent)
	if err := enc.Encode(records(notes)); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// YAMLExporter writes a sequence of records.
type YAMLExporter struct{}

func (YAMLExporter) Export(w io.Writer, notes []*core.Note) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(notes)); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// CSVExporter writes one row per note. The header is every label seen, in
// the order first seen, so notes from one collection share their columns.
type CSVExporter struct{}

func (CSVExporter) Export(w io.Writer, notes []*core.Note) error {
	var header []string
	index := make(map[string]int)
	for _, n := range notes {
		for _, f := range n.Fields() {
			key := f.Def.Common()
			if _, ok := index[key]; !ok {
				index[key] = len(header)
				header = append(header, f.Def.Label.Proper)
			}
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, n := range notes {
		row := make([]string, len(header))
		for _, f := range n.Fields() {
			row[index[f.Def.Common()]] = f.Value.String()
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
