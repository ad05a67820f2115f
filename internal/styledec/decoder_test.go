package styledec

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeNormalizesNumbers(t *testing.T) {
	payload := []byte(`{
		"figure.dpi": 300,
		"axes": {"grid": true, "labelpad": 3},
		"figure.facecolor": [0.95, 0.95, 0.95, 1]
	}`)

	table, err := Decode(Context{Name: "print"}, payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got, ok := table["figure.dpi"].(float64); !ok || got != 300.0 {
		t.Fatalf("figure.dpi = %v (%T), want float64 300", table["figure.dpi"], table["figure.dpi"])
	}

	nested, ok := table["axes"].(map[string]any)
	if !ok {
		t.Fatalf("axes = %T, want nested object", table["axes"])
	}
	if got, ok := nested["labelpad"].(float64); !ok || got != 3.0 {
		t.Fatalf("axes.labelpad = %v (%T)", nested["labelpad"], nested["labelpad"])
	}

	list, ok := table["figure.facecolor"].([]any)
	if !ok || len(list) != 4 {
		t.Fatalf("figure.facecolor = %v", table["figure.facecolor"])
	}
	if got, ok := list[3].(float64); !ok || got != 1.0 {
		t.Fatalf("facecolor alpha = %v (%T)", list[3], list[3])
	}
}

func TestDecodeFailures(t *testing.T) {
	if _, err := Decode(Context{Name: "empty"}, nil); err == nil {
		t.Fatal("empty payload should fail")
	}
	if _, err := Decode(Context{Name: "broken"}, []byte(`{"a":`)); err == nil {
		t.Fatal("malformed payload should fail")
	}
	_, err := Decode(Context{Name: "list"}, []byte(`[1, 2]`))
	if err == nil || !strings.Contains(err.Error(), "list") {
		t.Fatalf("non-object payload err = %v, want style name in message", err)
	}
}

func TestDecodeHooks(t *testing.T) {
	decoder := New(
		WithPreHook(func(ctx Context, table map[string]any) (map[string]any, error) {
			table["injected"] = ctx.Name
			return table, nil
		}),
		WithPostHook(func(_ Context, table map[string]any) error {
			if _, ok := table["injected"]; !ok {
				return errors.New("pre-hook entry missing")
			}
			return nil
		}),
	)

	table, err := decoder.Decode(Context{Name: "hooked"}, []byte(`{"a": 1}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if table["injected"] != "hooked" {
		t.Fatalf("injected = %v", table["injected"])
	}
}

func TestDecodePostHookFailure(t *testing.T) {
	sentinel := errors.New("rejected")
	decoder := New(WithPostHook(func(Context, map[string]any) error {
		return sentinel
	}))

	if _, err := decoder.Decode(Context{Name: "x"}, []byte(`{}`)); !errors.Is(err, sentinel) {
		t.Fatalf("Decode err = %v, want wrapped sentinel", err)
	}
}
