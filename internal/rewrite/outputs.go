package rewrite

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one reframing in response order.
type Entry struct {
	Key   string
	Value string
}

// Outputs is a string-to-string mapping that keeps the order in which keys
// first appeared in the response body.
type Outputs struct {
	entries []Entry
	index   map[string]int
}

// NewOutputs builds an Outputs from entries; later duplicates overwrite the
// value but keep the first position.
func NewOutputs(entries ...Entry) Outputs {
	var out Outputs
	for _, entry := range entries {
		out.set(entry.Key, entry.Value)
	}
	return out
}

func (o *Outputs) set(key, value string) {
	if o.index == nil {
		o.index = map[string]int{}
	}
	if idx, ok := o.index[key]; ok {
		o.entries[idx].Value = value
		return
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, Entry{Key: key, Value: value})
}

// Len returns the number of reframings.
func (o Outputs) Len() int { return len(o.entries) }

// Entries returns a copy of the reframings in response order.
func (o Outputs) Entries() []Entry {
	return append([]Entry(nil), o.entries...)
}

// UnmarshalJSON decodes a JSON object token by token to keep key order.
// A null value decodes to an empty mapping.
func (o *Outputs) UnmarshalJSON(data []byte) error {
	*o = Outputs{}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("outputs: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("outputs: unexpected key %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("outputs: value for %q: %w", key, err)
		}
		o.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON writes the mapping back out in order.
func (o Outputs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range o.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Result is a decoded rewrite response.
type Result struct {
	Outputs Outputs `json:"outputs"`
}

// DecodeResult parses a success body. The body must be a JSON object; a
// missing outputs field, or one holding null, false, 0 or "", yields an
// empty mapping.
func DecodeResult(body []byte) (Result, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return Result{}, err
	}
	if fields == nil {
		return Result{}, fmt.Errorf("response body is not a JSON object")
	}
	var result Result
	raw, ok := fields["outputs"]
	if !ok || isFalsy(raw) {
		return result, nil
	}
	if err := json.Unmarshal(raw, &result.Outputs); err != nil {
		return Result{}, err
	}
	return result, nil
}

func isFalsy(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	}
	return false
}
