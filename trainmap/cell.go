package trainmap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Well-known cell members
const (
	KeyType = "type"
	KeyText = "text"
	KeyEVA  = "eva"
)

type member struct {
	key   string
	value json.RawMessage
}

// Cell is one object of the map document with its members in input order
type Cell struct {
	members []member
}

// Len returns the number of members
func (c Cell) Len() int { return len(c.members) }

// Keys returns the member names in order
func (c Cell) Keys() []string {
	keys := make([]string, len(c.members))
	for i, m := range c.members {
		keys[i] = m.key
	}
	return keys
}

// Get returns the raw JSON value of a member
func (c Cell) Get(key string) (json.RawMessage, bool) {
	for _, m := range c.members {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

// Set replaces a member in place, or appends it when the cell has no such key
func (c *Cell) Set(key string, value json.RawMessage) {
	for i := range c.members {
		if c.members[i].key == key {
			c.members[i].value = value
			return
		}
	}
	c.members = append(c.members, member{key: key, value: value})
}

// SetString stores a JSON string member
func (c *Cell) SetString(key, value string) {
	c.Set(key, encodeString(value))
}

// GetString returns a member that holds a JSON string
func (c Cell) GetString(key string) (string, bool) {
	raw, ok := c.Get(key)
	if !ok {
		return "", false
	}
	if !isJSONString(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Type returns the cell's type tag, or "" when absent or not a string
func (c Cell) Type() string {
	t, _ := c.GetString(KeyType)
	return t
}

// Text returns the cell's text (the station name on destination cells)
func (c Cell) Text() (string, bool) { return c.GetString(KeyText) }

// EVA returns the station identifier set on destination cells
func (c Cell) EVA() (string, bool) { return c.GetString(KeyEVA) }

// SetEVA sets the eva member
func (c *Cell) SetEVA(eva string) { c.SetString(KeyEVA, eva) }

// Clone returns a deep copy
func (c Cell) Clone() Cell {
	out := Cell{members: make([]member, len(c.members))}
	for i, m := range c.members {
		out.members[i] = member{key: m.key, value: append(json.RawMessage(nil), m.value...)}
	}
	return out
}

// UnmarshalJSON keeps every member verbatim. A repeated key keeps its first
// position and its last value.
func (c *Cell) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("cell must be a JSON object, got %s", describe(tok))
	}
	c.members = c.members[:0]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected member name %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("member %q: %w", key, err)
		}
		c.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON writes the members back in order
func (c Cell) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, m := range c.members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.Write(encodeString(m.key))
		b.WriteByte(':')
		if len(m.value) == 0 {
			b.WriteString("null")
			continue
		}
		b.Write(m.value)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// encodeString encodes s as a JSON string without HTML escaping
func encodeString(s string) json.RawMessage {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return bytes.TrimRight(b.Bytes(), "\n")
}

func isJSONString(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '"'
}

func describe(tok json.Token) string {
	switch v := tok.(type) {
	case nil:
		return "null"
	case json.Delim:
		if v == '[' {
			return "array"
		}
		return string(v)
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}
