package rc

import (
	"errors"
	"testing"
)

func TestContextInert(t *testing.T) {
	registry := newTestRegistry(t)

	ctx, err := NewContext(registry, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if ctx.SnapshotID() != "" {
		t.Fatalf("inert context has snapshot id %q", ctx.SnapshotID())
	}

	before := registry.Merged()
	if err := ctx.Do(func() error { return nil }); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !registry.Merged().Equal(before) {
		t.Fatal("inert context changed registry state")
	}
}

func TestContextAppliesAndRestores(t *testing.T) {
	registry := newTestRegistry(t)

	ctx, err := NewContext(registry, "axis-1", map[string]any{
		"ticklen":         10.0,
		"gridminor.alpha": 0.9,
	})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if ctx.Axis() != "axis-1" {
		t.Fatalf("Axis() = %v, want axis-1", ctx.Axis())
	}
	if ctx.SnapshotID() == "" {
		t.Fatal("active context missing snapshot id")
	}

	err = ctx.Do(func() error {
		if got := getFloat(t, registry, "ticklen"); got != 10.0 {
			t.Fatalf("ticklen inside scope = %v, want 10.0", got)
		}
		if got := getFloat(t, registry, "xtick.minor.size"); !almost(got, 5.0) {
			t.Fatalf("xtick.minor.size inside scope = %v, want 5.0", got)
		}
		if got := getFloat(t, registry, "gridminor.alpha"); got != 0.9 {
			t.Fatalf("gridminor.alpha inside scope = %v, want 0.9", got)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	if got := getFloat(t, registry, "ticklen"); got != 4.0 {
		t.Fatalf("ticklen after scope = %v, want 4.0", got)
	}
	if got := getFloat(t, registry, "xtick.minor.size"); !almost(got, 2.0) {
		t.Fatalf("xtick.minor.size after scope = %v, want 2.0", got)
	}
	if got := getFloat(t, registry, "gridminor.alpha"); got != 0.1 {
		t.Fatalf("gridminor.alpha after scope = %v, want 0.1", got)
	}
}

func TestContextMergesMultipleOverrideMaps(t *testing.T) {
	registry := newTestRegistry(t)

	ctx, err := NewContext(registry, nil,
		map[string]any{"ticklen": 8.0},
		map[string]any{"ticklen": 6.0, "figure.dpi": 200.0},
	)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	err = ctx.Do(func() error {
		// Later maps win on collision.
		if got := getFloat(t, registry, "ticklen"); got != 6.0 {
			t.Fatalf("ticklen inside scope = %v, want 6.0", got)
		}
		if got := getFloat(t, registry, "figure.dpi"); got != 200.0 {
			t.Fatalf("figure.dpi inside scope = %v, want 200.0", got)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := getFloat(t, registry, "figure.dpi"); got != 90.0 {
		t.Fatalf("figure.dpi after scope = %v, want 90.0", got)
	}
}

func TestContextRestoresDerivedTargetsNotRatios(t *testing.T) {
	registry := newTestRegistry(t)

	ctx, err := NewContext(registry, nil, map[string]any{
		"tickratio":  0.25,
		"minorwidth": 0.5,
	})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if err := ctx.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if got := getFloat(t, registry, "xtick.minor.size"); !almost(got, 1.0) {
		t.Fatalf("xtick.minor.size inside scope = %v, want 1.0", got)
	}
	if got := getFloat(t, registry, "gridminor.linewidth"); !almost(got, 0.3) {
		t.Fatalf("gridminor.linewidth inside scope = %v, want 0.3", got)
	}
	if err := ctx.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	// Ratio globals own no concrete keys, so restoration covers their derived
	// targets rather than the ratio itself. The still-overridden ratios must
	// not leak back into any target while other snapshot keys re-fire the
	// rules: every target comes back, on both axes and in the special store.
	for _, key := range []string{"xtick.minor.size", "ytick.minor.size"} {
		if got := getFloat(t, registry, key); !almost(got, 2.0) {
			t.Fatalf("%s after scope = %v, want 2.0", key, got)
		}
	}
	for _, key := range []string{"xtick.minor.width", "ytick.minor.width", "gridminor.linewidth"} {
		if got := getFloat(t, registry, key); !almost(got, 0.48) {
			t.Fatalf("%s after scope = %v, want 0.48", key, got)
		}
	}
}

func TestContextRestoresAfterFunctionError(t *testing.T) {
	registry := newTestRegistry(t)

	ctx, err := NewContext(registry, nil, map[string]any{"linewidth": 2.0})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	boom := errors.New("render failed")
	if err := ctx.Do(func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Do err = %v, want render failure", err)
	}
	if got := getFloat(t, registry, "linewidth"); got != 0.6 {
		t.Fatalf("linewidth after failed scope = %v, want 0.6", got)
	}
}

func TestContextRestoresAfterPanic(t *testing.T) {
	registry := newTestRegistry(t)

	ctx, err := NewContext(registry, nil, map[string]any{"ticklen": 9.0})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		ctx.Do(func() error { panic("mid-render") })
	}()

	if got := getFloat(t, registry, "ticklen"); got != 4.0 {
		t.Fatalf("ticklen after panic = %v, want 4.0", got)
	}
}

func TestContextBeginFailureSkipsFunction(t *testing.T) {
	registry := newTestRegistry(t)

	ctx, err := NewContext(registry, nil, map[string]any{"no.such.key": 1.0})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	ran := false
	doErr := ctx.Do(func() error {
		ran = true
		return nil
	})
	if !errors.Is(doErr, ErrUnknownKey) {
		t.Fatalf("Do err = %v, want ErrUnknownKey", doErr)
	}
	if ran {
		t.Fatal("fn ran despite Begin failure")
	}
}

func TestContextRejectsNonMapOverrides(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := NewContext(registry, nil, "ticklen")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("NewContext err = %v, want ErrInvalidArgument", err)
	}
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("NewContext err = %T, want *InvalidArgumentError", err)
	}
}

func TestContextRequiresRegistry(t *testing.T) {
	if _, err := NewContext(nil, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("NewContext(nil) err = %v, want ErrInvalidArgument", err)
	}
}

func TestContextsNestInStackOrder(t *testing.T) {
	registry := newTestRegistry(t)

	outer, err := NewContext(registry, nil, map[string]any{"ticklen": 8.0})
	if err != nil {
		t.Fatalf("NewContext(outer): %v", err)
	}

	err = outer.Do(func() error {
		inner, err := NewContext(registry, nil, map[string]any{"ticklen": 12.0})
		if err != nil {
			t.Fatalf("NewContext(inner): %v", err)
		}
		return inner.Do(func() error {
			if got := getFloat(t, registry, "ticklen"); got != 12.0 {
				t.Fatalf("ticklen in inner scope = %v, want 12.0", got)
			}
			return nil
		})
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := getFloat(t, registry, "ticklen"); got != 4.0 {
		t.Fatalf("ticklen after nested scopes = %v, want 4.0", got)
	}
}
