package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Header is a single name/value pair
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered header list with unique, non-empty names
type Headers []Header

// NewHeaders normalizes pairs into a Headers value.
// Blank names are dropped. A repeated name keeps its first position and takes
// the last value supplied.
func NewHeaders(pairs ...Header) Headers {
	out := make(Headers, 0, len(pairs))
	index := make(map[string]int, len(pairs))
	for _, p := range pairs {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		if i, ok := index[name]; ok {
			out[i].Value = p.Value
			continue
		}
		index[name] = len(out)
		out = append(out, Header{Name: name, Value: p.Value})
	}
	return out
}

// Get returns the value for name and whether it is present
func (h Headers) Get(name string) (string, bool) {
	for _, p := range h {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Len returns the number of headers
func (h Headers) Len() int {
	return len(h)
}

// Map returns the headers as a plain map
func (h Headers) Map() map[string]string {
	m := make(map[string]string, len(h))
	for _, p := range h {
		m[p.Name] = p.Value
	}
	return m
}

// MarshalJSON writes headers as a JSON object in insertion order
func (h Headers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range h {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the key order of the document
func (h *Headers) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*h = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("headers must be a JSON object")
	}

	var pairs []Header
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected header key %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("header %q: %w", name, err)
		}
		pairs = append(pairs, Header{Name: name, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*h = NewHeaders(pairs...)
	return nil
}

// MarshalYAML writes headers as a YAML mapping in insertion order
func (h Headers) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range h {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Value},
		)
	}
	return node, nil
}

// UnmarshalYAML reads a YAML mapping keeping the key order of the document
func (h *Headers) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*h = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return errors.New("headers must be a YAML mapping")
	}

	pairs := make([]Header, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var v string
		if err := value.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("header %q: %w", value.Content[i].Value, err)
		}
		pairs = append(pairs, Header{Name: value.Content[i].Value, Value: v})
	}

	*h = NewHeaders(pairs...)
	return nil
}
