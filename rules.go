package rc

// Rule binds an arithmetic expression over global-property names to the
// concrete parameters receiving the computed result. Targets resolve against
// the external store first, then the special store.
type Rule struct {
	Expr    string
	Inputs  []string
	Targets []string
}

type compiledRule struct {
	rule    Rule
	program CompiledRule
	inputs  map[string]struct{}
}

func compileRules(evaluator Evaluator, rules []Rule) ([]compiledRule, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		program, err := evaluator.Compile(rule.Expr)
		if err != nil {
			return nil, err
		}
		inputs := make(map[string]struct{}, len(rule.Inputs))
		for _, input := range rule.Inputs {
			inputs[input] = struct{}{}
		}
		compiled = append(compiled, compiledRule{
			rule:    rule,
			program: program,
			inputs:  inputs,
		})
	}
	return compiled, nil
}

func (r compiledRule) dependsOn(global string) bool {
	_, ok := r.inputs[global]
	return ok
}
