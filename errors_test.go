package rc

import (
	"errors"
	"testing"
)

func TestUnknownKeyErrorMessages(t *testing.T) {
	cases := []struct {
		err  *UnknownKeyError
		want string
	}{
		{&UnknownKeyError{Key: "xyz"}, `rc: invalid key "xyz"`},
		{&UnknownKeyError{Key: "subplots.zzz", Category: "subplots"}, `rc: invalid key "subplots.zzz" for category "subplots"`},
		{&UnknownKeyError{Key: "xtick.bogus", Global: "ticklen"}, `rc: invalid key "xtick.bogus" for global property "ticklen"`},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
		if !errors.Is(tc.err, ErrUnknownKey) {
			t.Errorf("%v should unwrap to ErrUnknownKey", tc.err)
		}
	}
}

func TestInvalidArgumentErrorUnwrap(t *testing.T) {
	err := &InvalidArgumentError{Reason: "context requires a registry"}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatal("InvalidArgumentError should unwrap to ErrInvalidArgument")
	}
	if got := err.Error(); got != "rc: context requires a registry" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestWrapRuleError(t *testing.T) {
	if wrapRuleError("x", nil) != nil {
		t.Fatal("nil error should stay nil")
	}

	base := errors.New("boom")
	err := wrapRuleError("a * b", base)
	var ruleErr *RuleError
	if !errors.As(err, &ruleErr) {
		t.Fatalf("err = %T, want *RuleError", err)
	}
	if ruleErr.Expr != "a * b" || !errors.Is(err, base) {
		t.Fatalf("wrapped = %+v", ruleErr)
	}

	// Re-wrapping keeps the original expression and does not double-wrap.
	again := wrapRuleError("other", err)
	var inner *RuleError
	if !errors.As(again, &inner) || inner.Expr != "a * b" {
		t.Fatalf("re-wrapped = %+v", inner)
	}
	if !errors.Is(again, base) {
		t.Fatal("re-wrapping lost the cause")
	}
}
