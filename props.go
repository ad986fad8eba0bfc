package tabgenie

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Props is an insertion-ordered string map holding table metadata such as
// title or category. The zero value is ready to use.
type Props struct {
	keys   []string
	values map[string]string
}

// Set stores value under key. Updating an existing key keeps its position.
func (p *Props) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// SetNonEmpty stores value under key unless value is empty.
func (p *Props) SetNonEmpty(key, value string) {
	if value != "" {
		p.Set(key, value)
	}
}

// Get returns the value stored under key.
func (p *Props) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Value returns the value stored under key or an empty string.
func (p *Props) Value(key string) string {
	return p.values[key]
}

// Delete removes key.
func (p *Props) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (p *Props) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Len returns the number of stored keys.
func (p *Props) Len() int {
	return len(p.keys)
}

// MarshalJSON encodes the props as a JSON object preserving key order.
func (p *Props) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string values, keeping the key
// order of the document. Existing keys are replaced.
func (p *Props) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = Props{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("props: expected object, got %v", tok)
	}

	var out Props
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("props: unexpected key %v", tok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("props: value of %q: %w", key, err)
		}
		out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = out
	return nil
}

func (p *Props) clone() Props {
	cp := Props{keys: append([]string(nil), p.keys...)}
	if p.values != nil {
		cp.values = make(map[string]string, len(p.values))
		for k, v := range p.values {
			cp.values[k] = v
		}
	}
	return cp
}
