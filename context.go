package rc

import (
	"fmt"

	"github.com/google/uuid"
)

// Context applies a temporary batch of overrides against a registry and
// restores the prior settings state when it ends. It exists so a single
// rendering pass can tweak settings without leaving residue; the associated
// axis handle is kept for identity only and never dereferenced.
//
// Contexts nest safely only in strict stack order: the innermost must end
// before the outer one.
type Context struct {
	registry   *Registry
	axis       any
	overrides  map[string]any
	special    map[string]any
	rcparams   map[string]any
	snapshotID string
	inert      bool
}

// NewContext merges the override maps into one batch and, when the batch is
// nonempty, immediately snapshots both backing stores. Any non-map override
// argument fails with an InvalidArgumentError. An empty batch produces an
// inert context whose Begin and End do nothing, since the common caller path
// changes no settings at all.
func NewContext(registry *Registry, axis any, overrides ...any) (*Context, error) {
	if registry == nil {
		return nil, &InvalidArgumentError{Reason: "context requires a registry"}
	}
	merged := map[string]any{}
	for _, arg := range overrides {
		entries, ok := arg.(map[string]any)
		if !ok {
			return nil, &InvalidArgumentError{
				Reason: fmt.Sprintf("context accepts map overrides only, got %T", arg),
			}
		}
		for key, value := range entries {
			merged[key] = value
		}
	}

	ctx := &Context{registry: registry, axis: axis}
	if len(merged) == 0 {
		ctx.inert = true
		return ctx, nil
	}
	ctx.overrides = merged
	ctx.special = copyTable(registry.special)
	ctx.rcparams = registry.store.Copy()
	ctx.snapshotID = uuid.NewString()
	return ctx, nil
}

// Axis returns the handle the context was associated with.
func (c *Context) Axis() any {
	return c.axis
}

// SnapshotID identifies the pre-scope snapshot for tracing. Empty for inert
// contexts, which never snapshot.
func (c *Context) SnapshotID() string {
	return c.snapshotID
}

// Begin applies every override through the registry's Set path in sorted key
// order.
func (c *Context) Begin() error {
	if c == nil || c.inert {
		return nil
	}
	for _, key := range sortedKeys(c.overrides) {
		if err := c.registry.Set(key, c.overrides[key]); err != nil {
			return err
		}
	}
	return nil
}

// End restores the pre-scope snapshot, special-store entries winning over
// external ones on key collision. Alias-controlled keys go first: their
// redirected global writes re-fire derived rules, so the plain concrete keys
// (which include the rule targets) must be written afterwards or a
// still-overridden ratio global would clobber restored targets. Restoration
// continues past individual failures so one bad entry cannot strand the rest
// of the state; the first failure is reported once every key has been
// attempted.
func (c *Context) End() error {
	if c == nil || c.inert {
		return nil
	}
	restore := make(map[string]any, len(c.rcparams)+len(c.special))
	for key, value := range c.rcparams {
		restore[key] = value
	}
	for key, value := range c.special {
		restore[key] = value
	}
	var aliased, plain []string
	for _, key := range sortedKeys(restore) {
		if _, ok := c.registry.aliases.OwnerOf(key); ok {
			aliased = append(aliased, key)
		} else {
			plain = append(plain, key)
		}
	}
	var firstErr error
	for _, key := range append(aliased, plain...) {
		if err := c.registry.Set(key, restore[key]); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Do runs fn between Begin and End, guaranteeing End on every exit path
// including panics. A Begin failure is returned as-is without running fn; an
// End failure is reported only when fn itself succeeded.
func (c *Context) Do(fn func() error) (err error) {
	if err := c.Begin(); err != nil {
		return err
	}
	defer func() {
		endErr := c.End()
		if err == nil {
			err = endErr
		}
	}()
	return fn()
}
