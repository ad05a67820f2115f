package rc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKey indicates a key neither backing store recognises.
	ErrUnknownKey = errors.New("rc: unknown key")
	// ErrInvalidArgument indicates malformed override-context construction.
	ErrInvalidArgument = errors.New("rc: invalid argument")
)

// UnknownKeyError carries the key that failed to resolve plus, when relevant,
// the category or global property the write was made on behalf of.
type UnknownKeyError struct {
	Key      string
	Category string // set when the failure happened inside a batch set
	Global   string // set when the key is a child of a global property
}

func (e *UnknownKeyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Global != "":
		return fmt.Sprintf("rc: invalid key %q for global property %q", e.Key, e.Global)
	case e.Category != "":
		return fmt.Sprintf("rc: invalid key %q for category %q", e.Key, e.Category)
	default:
		return fmt.Sprintf("rc: invalid key %q", e.Key)
	}
}

func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownKey
}

// InvalidArgumentError reports a malformed argument at context construction.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "rc: " + e.Reason
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// RuleError wraps a derived-rule compilation or evaluation failure.
type RuleError struct {
	Expr string
	Err  error
}

func (e *RuleError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("rc: rule %q: %v", e.Expr, e.Err)
}

func (e *RuleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func wrapRuleError(expr string, err error) error {
	if err == nil {
		return nil
	}
	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		if ruleErr.Expr == "" {
			ruleErr.Expr = expr
		}
		return ruleErr
	}
	return &RuleError{Expr: expr, Err: err}
}
