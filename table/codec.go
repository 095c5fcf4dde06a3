// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package table

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"math"

	"github.com/0xsoniclabs/randgen/sampler"
	"github.com/cockroachdb/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a table file.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

//go:embed schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("schema.json", schemaJSON)

type jsonFile struct {
	Seed     *int64        `json:"seed,omitempty"`
	Outcomes []jsonOutcome `json:"outcomes"`
}

type jsonOutcome struct {
	Value       json.Number `json:"value"`
	Probability *float64    `json:"probability,omitempty"`
}

type yamlFile struct {
	Seed     *int64        `yaml:"seed,omitempty"`
	Outcomes []yamlOutcome `yaml:"outcomes"`
}

type yamlOutcome struct {
	Value       yaml.Node `yaml:"value"`
	Probability *float64  `yaml:"probability,omitempty"`
}

// Decode reads a table in the given format. JSON input is checked against
// the table schema before it is decoded.
func Decode(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch format {
	case JSON:
		return decodeJSON(data)
	case YAML:
		return decodeYAML(data)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %d", format)
	}
}

// Encode writes a table in the given format.
func Encode(w io.Writer, f *File, format Format) error {
	switch format {
	case JSON:
		return encodeJSON(w, f)
	case YAML:
		return encodeYAML(w, f)
	default:
		return errors.Wrapf(ErrUnknownFormat, "format %d", format)
	}
}

func decodeJSON(data []byte) (*File, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "cannot parse json")
	}
	if err := schema.Validate(doc); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid table"), ErrSchemaViolation)
	}

	var raw jsonFile
	dec = json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "cannot decode table")
	}
	f := &File{Seed: raw.Seed, Outcomes: make([]Outcome, len(raw.Outcomes))}
	for i, o := range raw.Outcomes {
		v, err := sampler.ParseNumber(string(o.Value))
		if err != nil {
			return nil, errors.Wrapf(err, "outcome %d", i)
		}
		f.Outcomes[i] = Outcome{Value: v, Probability: o.Probability}
	}
	return f, nil
}

func encodeJSON(w io.Writer, f *File) error {
	raw := jsonFile{Seed: f.Seed, Outcomes: make([]jsonOutcome, len(f.Outcomes))}
	for i, o := range f.Outcomes {
		if o.Value == nil || math.IsInf(o.Value.Float64(), 0) || math.IsNaN(o.Value.Float64()) {
			return errors.Wrapf(ErrUnrepresentableValue, "outcome %d: %v", i, o.Value)
		}
		raw.Outcomes[i] = jsonOutcome{Value: json.Number(o.Value.String()), Probability: o.Probability}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

func decodeYAML(data []byte) (*File, error) {
	var raw yamlFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "cannot parse yaml")
	}
	if len(raw.Outcomes) == 0 {
		return nil, errors.Wrap(ErrSchemaViolation, "no outcomes")
	}
	f := &File{Seed: raw.Seed, Outcomes: make([]Outcome, len(raw.Outcomes))}
	for i, o := range raw.Outcomes {
		var v sampler.Number
		switch o.Value.ShortTag() {
		case "!!int":
			var x int64
			if err := o.Value.Decode(&x); err != nil {
				return nil, errors.Wrapf(err, "outcome %d", i)
			}
			v = sampler.Int(x)
		case "!!float":
			var x float64
			if err := o.Value.Decode(&x); err != nil {
				return nil, errors.Wrapf(err, "outcome %d", i)
			}
			v = sampler.Float(x)
		default:
			return nil, errors.Wrapf(ErrSchemaViolation, "outcome %d: value %q is not a number", i, o.Value.Value)
		}
		if p := o.Probability; p != nil && !(*p > 0 && *p <= 1) {
			return nil, errors.Wrapf(ErrSchemaViolation, "outcome %d: probability %v", i, *p)
		}
		f.Outcomes[i] = Outcome{Value: v, Probability: o.Probability}
	}
	return f, nil
}

func encodeYAML(w io.Writer, f *File) error {
	raw := yamlFile{Seed: f.Seed, Outcomes: make([]yamlOutcome, len(f.Outcomes))}
	for i, o := range f.Outcomes {
		node := yaml.Node{Kind: yaml.ScalarNode}
		switch v := o.Value.(type) {
		case sampler.Int:
			node.Tag, node.Value = "!!int", v.String()
		case sampler.Float:
			if math.IsNaN(float64(v)) {
				return errors.Wrapf(ErrUnrepresentableValue, "outcome %d: %v", i, v)
			}
			node.Tag, node.Value = "!!float", yamlFloat(float64(v))
		default:
			return errors.Wrapf(ErrUnrepresentableValue, "outcome %d: %v", i, o.Value)
		}
		raw.Outcomes[i] = yamlOutcome{Value: node, Probability: o.Probability}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return err
	}
	return enc.Close()
}

func yamlFloat(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return ".inf"
	case math.IsInf(x, -1):
		return "-.inf"
	default:
		return sampler.Float(x).String()
	}
}
