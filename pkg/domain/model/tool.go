package model

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/zeebo/blake3"
)

type ToolParamType string

const (
	ToolParamString  ToolParamType = "string"
	ToolParamBoolean ToolParamType = "boolean"
	ToolParamNumber  ToolParamType = "number"
)

type ToolParam struct {
	Name        string        `json:"name"`
	Type        ToolParamType `json:"type"`
	Description string        `json:"description"`
	Required    bool          `json:"required"`
}

type ToolSpec struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []ToolParam `json:"params"`
}

// ToolArgs are loosely typed tool arguments as received from a transport.
type ToolArgs map[string]any

func (x ToolArgs) has(key string) bool {
	v, ok := x[key]
	return ok && v != nil
}

// String returns a string argument. Numbers are accepted and formatted.
func (x ToolArgs) String(key string) (string, error) {
	if !x.has(key) {
		return "", nil
	}
	switch v := x[key].(type) {
	case string:
		return strings.TrimSpace(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", goerr.Wrap(types.ErrInvalidOption, "argument must be a string", goerr.V("key", key), goerr.V("value", v))
	}
}

func (x ToolArgs) RequireString(key string) (string, error) {
	v, err := x.String(key)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "argument is required", goerr.V("key", key))
	}
	return v, nil
}

// Bool returns a boolean argument. "true"/"false" strings are accepted.
func (x ToolArgs) Bool(key string) (bool, error) {
	if !x.has(key) {
		return false, nil
	}
	switch v := x[key].(type) {
	case bool:
		return v, nil
	case string:
		if v == "" {
			return false, nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, goerr.Wrap(types.ErrInvalidOption, "argument must be a boolean", goerr.V("key", key), goerr.V("value", v))
		}
		return b, nil
	default:
		return false, goerr.Wrap(types.ErrInvalidOption, "argument must be a boolean", goerr.V("key", key), goerr.V("value", v))
	}
}

// Int64 returns an integer argument. Numeric strings are accepted.
func (x ToolArgs) Int64(key string) (int64, error) {
	if !x.has(key) {
		return 0, nil
	}
	invalid := func(v any) error {
		return goerr.Wrap(types.ErrInvalidOption, "argument must be an integer", goerr.V("key", key), goerr.V("value", v))
	}

	switch v := x[key].(type) {
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, invalid(v)
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, invalid(v)
		}
		return n, nil
	case string:
		if v == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, invalid(v)
		}
		return n, nil
	default:
		return 0, invalid(v)
	}
}

// ToolResponse is the envelope every tool call returns.
type ToolResponse struct {
	Success   bool   `json:"success"`
	Summary   string `json:"summary"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Integrity string `json:"integrity"`
}

func NewToolResponse(summary string, data any) *ToolResponse {
	return &ToolResponse{
		Success:   true,
		Summary:   summary,
		Data:      data,
		Integrity: IntegrityToken(data),
	}
}

func NewToolErrorResponse(summary string, err error) *ToolResponse {
	resp := &ToolResponse{
		Summary:   summary,
		Integrity: IntegrityToken(nil),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// IntegrityToken is the hex BLAKE3-256 digest of the JSON encoding of data.
func IntegrityToken(data any) string {
	raw, err := json.Marshal(data)
	if err != nil {
		raw = []byte("null")
	}
	sum := blake3.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
