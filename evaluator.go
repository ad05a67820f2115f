package rc

// RuleContext carries the inputs available to a derived-parameter expression:
// the current global-property values plus optional caller arguments.
type RuleContext struct {
	Snapshot map[string]any
	Args     map[string]any
}

func (ctx RuleContext) withDefaults() RuleContext {
	if ctx.Snapshot == nil {
		ctx.Snapshot = map[string]any{}
	}
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	return ctx
}

// Evaluator executes derived-parameter expressions against a rule context.
type Evaluator interface {
	Evaluate(ctx RuleContext, expr string) (any, error)
	Compile(expr string) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx RuleContext) (any, error)
}

// ProgramCache stores compiled expression programs keyed by expression text.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}
