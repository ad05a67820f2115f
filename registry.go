package rc

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-plotrc/pkg/colors"
	"github.com/goliatone/go-plotrc/pkg/figures"
	"github.com/goliatone/go-plotrc/pkg/store"
)

// DefaultCycle names the canonical palette every registry starts from. It is
// also the palette the cycle parameter is reset to before a new cycle value
// is applied, so C0-style references resolve against a known sequence.
const DefaultCycle = "colorblind"

const (
	cycleKey     = "cycle"
	propCycleKey = "axes.prop_cycle"
)

// Resolution sources reported by Set logging and Explain traces.
const (
	SourceGlobal   = "global"
	SourceCycle    = "cycle"
	SourceRCParams = "rcparams"
	SourceSpecial  = "special"
	SourceCategory = "category"
)

// Option configures a Registry at construction.
type Option func(*config)

type config struct {
	store     store.Store
	style     string
	special   map[string]any
	rules     []Rule
	resolver  *colors.Resolver
	figures   *figures.Manager
	evaluator Evaluator
	cache     ProgramCache
	functions *FunctionRegistry
	logger    MutationLogger
}

// WithStore injects the external parameter store. Defaults to an in-memory
// store seeded with BaselineParams.
func WithStore(s store.Store) Option {
	return func(cfg *config) {
		cfg.store = s
	}
}

// WithStyle selects the named baseline style applied at construction and on
// Reset. Defaults to store.StyleDefault.
func WithStyle(name string) Option {
	return func(cfg *config) {
		cfg.style = name
	}
}

// WithSpecial replaces the special-parameter seed table.
func WithSpecial(table map[string]any) Option {
	return func(cfg *config) {
		if table == nil {
			return
		}
		cfg.special = copyTable(table)
	}
}

// WithRules replaces the derived-parameter rule table.
func WithRules(rules ...Rule) Option {
	return func(cfg *config) {
		cfg.rules = append([]Rule(nil), rules...)
	}
}

// WithColors injects the color-resolution collaborator.
func WithColors(resolver *colors.Resolver) Option {
	return func(cfg *config) {
		cfg.resolver = resolver
	}
}

// WithFigures injects the live-figure collaborator that receives cycle pushes.
func WithFigures(manager *figures.Manager) Option {
	return func(cfg *config) {
		cfg.figures = manager
	}
}

// WithEvaluator configures the derived-rule expression engine.
func WithEvaluator(evaluator Evaluator) Option {
	return func(cfg *config) {
		cfg.evaluator = evaluator
	}
}

// WithProgramCache registers a compiled-program cache for the default engine.
func WithProgramCache(cache ProgramCache) Option {
	return func(cfg *config) {
		cfg.cache = cache
	}
}

// WithFunctionRegistry exposes custom functions to derived-rule expressions.
func WithFunctionRegistry(registry *FunctionRegistry) Option {
	return func(cfg *config) {
		if registry == nil {
			return
		}
		cfg.functions = registry.Clone()
	}
}

// WithLogger attaches a mutation logger; nil restores the noop default.
func WithLogger(logger MutationLogger) Option {
	return func(cfg *config) {
		if logger == nil {
			cfg.logger = noopMutationLogger{}
			return
		}
		cfg.logger = logger
	}
}

func applyOptions(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Registry is the central settings component. It holds the current value of
// each global property, owns the special store for parameters the external
// library does not recognise, and routes every read and write through alias
// resolution and derived-value propagation.
//
// The mutation model is single-writer and synchronous; the registry itself
// takes no locks.
type Registry struct {
	cfg config

	store      store.Store
	special    map[string]any
	globals    map[string]any
	aliases    *AliasTable
	rules      []compiledRule
	resolver   *colors.Resolver
	figs       *figures.Manager
	logger     MutationLogger
	atDefaults bool
}

// New constructs a registry and runs the full initialization sequence: reset
// the external store to its baseline style, seed the special and global
// tables, write the plain defaults through, then set the color cycle and
// every global property via the normal Set path so propagation and derived
// rules fire uniformly.
func New(opts ...Option) (*Registry, error) {
	cfg := applyOptions(opts)
	if cfg.store == nil {
		cfg.store = store.NewMemoryStore(BaselineParams())
	}
	if cfg.style == "" {
		cfg.style = store.StyleDefault
	}
	if cfg.special == nil {
		cfg.special = SpecialDefaults
	}
	if cfg.rules == nil {
		cfg.rules = DefaultRules
	}
	if cfg.resolver == nil {
		base, _ := colors.Palette(DefaultCycle)
		cfg.resolver = colors.NewResolver(base)
	}
	if cfg.logger == nil {
		cfg.logger = noopMutationLogger{}
	}
	if cfg.evaluator == nil {
		var exprOpts []ExprEvaluatorOption
		if cfg.cache != nil {
			exprOpts = append(exprOpts, ExprWithProgramCache(cfg.cache))
		}
		if cfg.functions != nil {
			exprOpts = append(exprOpts, ExprWithFunctionRegistry(cfg.functions))
		}
		cfg.evaluator = NewExprEvaluator(exprOpts...)
	}

	r := &Registry{cfg: cfg}
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) init() error {
	cfg := r.cfg

	r.store = cfg.store
	r.store.Reset()
	if err := r.store.UseStyle(cfg.style); err != nil {
		return err
	}

	r.special = copyTable(cfg.special)
	r.globals = copyTable(Globals)
	r.aliases = NewAliasTable(Children)
	r.resolver = cfg.resolver
	r.figs = cfg.figures
	r.logger = cfg.logger

	compiled, err := compileRules(cfg.evaluator, cfg.rules)
	if err != nil {
		return err
	}
	r.rules = compiled

	for key, value := range PlainDefaults {
		r.store.Set(key, value)
	}

	if _, err := r.set(cycleKey, DefaultCycle); err != nil {
		return err
	}
	for _, name := range sortedKeys(r.globals) {
		if _, err := r.set(name, r.globals[name]); err != nil {
			return err
		}
	}

	r.atDefaults = true
	return nil
}

// Reset reinitializes the registry from scratch against the same
// collaborators, discarding every mutation made since construction.
func (r *Registry) Reset() error {
	return r.init()
}

// AtDefaults reports whether the registry has seen no mutation since
// construction or the last Reset. Introspection only.
func (r *Registry) AtDefaults() bool {
	return r.atDefaults
}

// Get resolves key against the registry. An empty key returns the full merged
// view, a global property name returns its scalar, and anything else is
// treated as an exact concrete key or a category prefix collecting its direct
// leaves. Keys matching neither store fail with an UnknownKeyError.
func (r *Registry) Get(key string) (any, error) {
	if key == "" {
		return r.Merged(), nil
	}
	if value, ok := r.globals[key]; ok {
		return value, nil
	}

	params := Params{}
	prefix := key + "."
	for _, name := range r.store.Keys() {
		if name == key {
			value, _ := r.store.Get(name)
			return value, nil
		}
		if leaf, ok := categoryLeaf(name, prefix); ok {
			value, _ := r.store.Get(name)
			params[leaf] = value
		}
	}
	for _, name := range sortedKeys(r.special) {
		if name == key {
			return r.special[name], nil
		}
		if leaf, ok := categoryLeaf(name, prefix); ok {
			params[leaf] = r.special[name]
		}
	}
	if len(params) == 0 {
		return nil, &UnknownKeyError{Key: key}
	}
	return params, nil
}

// Merged returns the full settings view: external store entries with special
// store entries layered on top. The result is a copy.
func (r *Registry) Merged() Params {
	merged := Params(r.store.Copy())
	for key, value := range r.special {
		merged[key] = value
	}
	return merged
}

// Set writes value under key. Alias-controlled keys redirect to their owning
// global property; globals propagate to their children and re-fire any
// derived rules they feed; map values fan out as a batch of key.sub writes.
// A batch is not transactional: writes that succeeded before a failing entry
// remain applied.
func (r *Registry) Set(key string, value any) error {
	start := time.Now()
	source, err := r.set(key, value)
	if err != nil {
		return err
	}
	r.atDefaults = false
	event := MutationEvent{
		Key:      key,
		Source:   source,
		Value:    value,
		Duration: time.Since(start),
	}
	if owner, ok := r.aliases.OwnerOf(key); ok {
		event.Global = owner
	}
	r.logger.LogMutation(event)
	return nil
}

func (r *Registry) set(key string, value any) (string, error) {
	if owner, ok := r.aliases.OwnerOf(key); ok {
		key = owner
	}

	if key == cycleKey {
		if err := r.setCycle(value); err != nil {
			return "", err
		}
		return SourceCycle, nil
	}

	if _, ok := r.globals[key]; ok {
		r.globals[key] = value
		if err := r.applyRules(key); err != nil {
			return "", err
		}
		for _, child := range r.aliases.ChildrenOf(key) {
			if !r.write(child, value) {
				return "", &UnknownKeyError{Key: child, Global: key}
			}
		}
		return SourceGlobal, nil
	}

	if batch, ok := value.(map[string]any); ok {
		for _, sub := range sortedKeys(batch) {
			composed := key + "." + sub
			if !r.write(composed, batch[sub]) {
				return "", &UnknownKeyError{Key: composed, Category: key}
			}
		}
		return SourceCategory, nil
	}

	source, ok := r.resolveStore(key)
	if !ok {
		return "", &UnknownKeyError{Key: key}
	}
	r.write(key, value)
	return source, nil
}

// setCycle applies the two-step cycle procedure: reset the cycle parameter to
// the canonical palette so relative color references resolve against it, then
// resolve the requested value and push the result to every live figure.
func (r *Registry) setCycle(value any) error {
	baseline, err := r.resolver.Cycle(DefaultCycle)
	if err != nil {
		return err
	}
	if !r.write(propCycleKey, baseline) {
		return &UnknownKeyError{Key: propCycleKey}
	}

	resolved, err := r.resolver.Cycle(cycleSpecs(value)...)
	if err != nil {
		return err
	}
	if !r.write(propCycleKey, resolved) {
		return &UnknownKeyError{Key: propCycleKey}
	}

	if r.figs != nil {
		for _, fig := range r.figs.All() {
			for _, ax := range fig.Axes() {
				ax.SetColorCycle(append([]string(nil), resolved...))
			}
		}
	}
	return nil
}

func cycleSpecs(value any) []any {
	switch v := value.(type) {
	case []any:
		return v
	case []string:
		specs := make([]any, len(v))
		for i, s := range v {
			specs[i] = s
		}
		return specs
	default:
		return []any{value}
	}
}

func (r *Registry) applyRules(changed string) error {
	for _, rule := range r.rules {
		if !rule.dependsOn(changed) {
			continue
		}
		result, err := rule.program.Evaluate(RuleContext{Snapshot: copyTable(r.globals)})
		if err != nil {
			return wrapRuleError(rule.rule.Expr, err)
		}
		for _, target := range rule.rule.Targets {
			if !r.write(target, result) {
				return &UnknownKeyError{Key: target, Global: changed}
			}
		}
	}
	return nil
}

// resolveStore reports which backing store owns key; the external store takes
// priority over the special store.
func (r *Registry) resolveStore(key string) (string, bool) {
	if r.store.Contains(key) {
		return SourceRCParams, true
	}
	if _, ok := r.special[key]; ok {
		return SourceSpecial, true
	}
	return "", false
}

func (r *Registry) write(key string, value any) bool {
	source, ok := r.resolveStore(key)
	if !ok {
		return false
	}
	if source == SourceRCParams {
		r.store.Set(key, value)
	} else {
		r.special[key] = value
	}
	return true
}

// String renders the linked global properties as an aligned listing.
func (r *Registry) String() string {
	names := sortedKeys(r.globals)
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-*s %v", width+1, name+":", r.globals[name])
	}
	return b.String()
}

func categoryLeaf(name, prefix string) (string, bool) {
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}
	leaf := name[len(prefix):]
	if leaf == "" || strings.Contains(leaf, ".") {
		return "", false
	}
	return leaf, true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
