// Package styledec converts JSON style-sheet payloads into flat parameter
// tables, normalising numbers and letting callers adjust the payload before
// and after decoding.
package styledec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Context carries identifiers tied to a style payload.
type Context struct {
	Name string
}

// PreHook lets callers mutate or normalise the raw payload before decoding.
type PreHook func(Context, map[string]any) (map[string]any, error)

// PostHook lets callers adjust or validate the decoded table.
type PostHook func(Context, map[string]any) error

// Option configures a Decoder instance.
type Option func(*Decoder)

// Decoder converts style payloads into parameter tables.
type Decoder struct {
	preHooks  []PreHook
	postHooks []PostHook
}

// WithPreHook applies hook prior to decoding.
func WithPreHook(hook PreHook) Option {
	return func(d *Decoder) {
		if hook != nil {
			d.preHooks = append(d.preHooks, hook)
		}
	}
}

// WithPostHook applies hook after decoding completes.
func WithPostHook(hook PostHook) Option {
	return func(d *Decoder) {
		if hook != nil {
			d.postHooks = append(d.postHooks, hook)
		}
	}
}

// New constructs a Decoder with the supplied options.
func New(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Decode parses payload into a parameter table. JSON numbers become float64
// throughout, including inside nested category objects and arrays.
func (d *Decoder) Decode(ctx Context, payload []byte) (map[string]any, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("styledec: payload is empty for style %q", ctx.Name)
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("styledec: decode style %q: %w", ctx.Name, err)
	}

	table, ok := normalizeValue(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("styledec: style %q is not an object", ctx.Name)
	}

	for _, hook := range d.preHooks {
		next, err := hook(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("styledec: pre-hook for style %q failed: %w", ctx.Name, err)
		}
		if next != nil {
			table = next
		}
	}

	for _, hook := range d.postHooks {
		if err := hook(ctx, table); err != nil {
			return nil, fmt.Errorf("styledec: post-hook for style %q failed: %w", ctx.Name, err)
		}
	}
	return table, nil
}

// Decode parses payload using a default Decoder.
func Decode(ctx Context, payload []byte) (map[string]any, error) {
	return New().Decode(ctx, payload)
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return v.String()
		}
		return f
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			out[key] = normalizeValue(entry)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, entry := range v {
			out[i] = normalizeValue(entry)
		}
		return out
	default:
		return v
	}
}
