package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RawObject is a JSON object whose values stay undecoded, in document order.
type RawObject struct {
	keys   []string
	values map[string]json.RawMessage
}

func (o RawObject) Get(key string) (json.RawMessage, bool) {
	value, ok := o.values[key]
	return value, ok
}

// Set inserts or replaces a value, keeping first-insertion order.
func (o *RawObject) Set(key string, value json.RawMessage) {
	if o.values == nil {
		o.values = map[string]json.RawMessage{}
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o RawObject) Keys() []string {
	return append([]string(nil), o.keys...)
}

func (o RawObject) Len() int {
	return len(o.keys)
}

func (o RawObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(o.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *RawObject) UnmarshalJSON(data []byte) error {
	*o = RawObject{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		o.Set(key, value)
	}
	_, err = dec.Token()
	return err
}
