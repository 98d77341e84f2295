package model

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/types"
)

// LogEntry is one decoded file of a CI run log archive.
type LogEntry struct {
	FileName string `json:"fileName"`
	Content  string `json:"-"`
}

// PayloadObject is a JSON object whose top-level key order is kept as it appeared in the
// source text.
type PayloadObject struct {
	keys   []string
	fields map[string]any
}

func NewPayloadObject() *PayloadObject {
	return &PayloadObject{fields: map[string]any{}}
}

// ParsePayloadObject decodes a JSON object. Anything else, including arrays and scalars, is
// rejected with types.ErrInvalidPayload.
func ParsePayloadObject(raw []byte) (*PayloadObject, error) {
	obj := NewPayloadObject()
	if err := obj.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return obj, nil
}

func (x *PayloadObject) Keys() []string {
	if x == nil {
		return nil
	}
	return append([]string(nil), x.keys...)
}

func (x *PayloadObject) Get(key string) (any, bool) {
	if x == nil {
		return nil, false
	}
	v, ok := x.fields[key]
	return v, ok
}

func (x *PayloadObject) Len() int {
	if x == nil {
		return 0
	}
	return len(x.keys)
}

// Map returns the decoded object as a plain map.
func (x *PayloadObject) Map() map[string]any {
	out := make(map[string]any, x.Len())
	if x == nil {
		return out
	}
	for k, v := range x.fields {
		out[k] = v
	}
	return out
}

func (x *PayloadObject) Set(key string, value any) {
	if x.fields == nil {
		x.fields = map[string]any{}
	}
	if _, ok := x.fields[key]; !ok {
		x.keys = append(x.keys, key)
	}
	x.fields[key] = value
}

func (x *PayloadObject) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range x.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(x.fields[k])
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode payload value", goerr.V("key", k))
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (x *PayloadObject) UnmarshalJSON(raw []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return goerr.Wrap(types.ErrInvalidPayload, err.Error())
	}
	if fields == nil {
		return goerr.Wrap(types.ErrInvalidPayload, "payload is not a JSON object")
	}

	// Second pass over the token stream only to recover key order.
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return goerr.Wrap(types.ErrInvalidPayload, err.Error())
	}

	var keys []string
	seen := make(map[string]struct{}, len(fields))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return goerr.Wrap(types.ErrInvalidPayload, err.Error())
		}
		key, ok := tok.(string)
		if !ok {
			return goerr.Wrap(types.ErrInvalidPayload, "unexpected token in object", goerr.V("token", tok))
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return goerr.Wrap(types.ErrInvalidPayload, err.Error())
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	x.keys = keys
	x.fields = fields
	return nil
}
