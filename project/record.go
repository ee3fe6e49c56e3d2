package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvsurvey/traverse"
	"gopkg.in/yaml.v3"
)

// fieldsPerRow is the number of entries in a persisted row:
// easting, northing, bearing, distance.
const fieldsPerRow = 4

// Record is the persisted form of a Project: the kind and the raw rows,
// never the derived stations.
type Record struct {
	TraverseType string    `json:"traverse_type" yaml:"traverse_type"`
	Points       [][]Field `json:"points" yaml:"points"`
}

// Field is one persisted row entry. It decodes from a string, a number or
// null (read as ""), and always encodes as a string.
type Field string

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: field %s is neither text nor a number", ErrMalformedRecord, b)
	}
	*f = Field(n.String())
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: field must be a scalar", ErrMalformedRecord, node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*f = ""
	case "!!str", "!!int", "!!float":
		*f = Field(node.Value)
	default:
		return fmt.Errorf("%w: line %d: field %q is neither text nor a number", ErrMalformedRecord, node.Line, node.Value)
	}
	return nil
}

// Record returns the persisted form of p.
func (p *Project) Record() Record {
	r := Record{TraverseType: p.kind.String(), Points: make([][]Field, 0, len(p.inputs))}
	for _, in := range p.inputs {
		r.Points = append(r.Points, []Field{
			Field(in.Easting), Field(in.Northing), Field(in.Bearing), Field(in.Distance),
		})
	}
	return r
}

// FromRecord rebuilds a Project from its persisted form. Every row is
// validated as AppendLeg would; nothing is computed until Recompute.
func FromRecord(r Record) (*Project, error) {
	kind, err := traverse.ParseKind(r.TraverseType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	p := New(kind)
	for i, row := range r.Points {
		if len(row) != fieldsPerRow {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrMalformedRecord, i+1, len(row), fieldsPerRow)
		}
		in := traverse.LegInput{
			Easting:  string(row[0]),
			Northing: string(row[1]),
			Bearing:  string(row[2]),
			Distance: string(row[3]),
		}
		if err := p.AppendLeg(in); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Format selects a record codec.
type Format int

const (
	// JSON encodes records as indented JSON.
	JSON Format = iota
	// YAML encodes records as YAML.
	YAML
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor picks the codec from a file name's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return JSON, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Encode writes p's record to w.
func Encode(w io.Writer, p *Project, format Format) error {
	r := p.Record()
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(r)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Decode reads a record from r and rebuilds the Project.
func Decode(r io.Reader, format Format) (*Project, error) {
	var rec Record
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return FromRecord(rec)
}
