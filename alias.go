package rc

// AliasTable resolves global property names to the concrete parameters they
// control, plus the reverse direction used to redirect writes on controlled
// keys. Immutable after construction.
type AliasTable struct {
	children map[string][]string
	owners   map[string]string
}

// NewAliasTable builds both directions from a forward children table. The
// input is copied so later mutation of the source map cannot leak in.
func NewAliasTable(children map[string][]string) *AliasTable {
	table := &AliasTable{
		children: make(map[string][]string, len(children)),
		owners:   make(map[string]string),
	}
	for global, keys := range children {
		copied := append([]string(nil), keys...)
		table.children[global] = copied
		for _, key := range copied {
			table.owners[key] = global
		}
	}
	return table
}

// ChildrenOf returns the ordered concrete keys controlled by global, nil when
// the name owns nothing.
func (t *AliasTable) ChildrenOf(global string) []string {
	keys, ok := t.children[global]
	if !ok {
		return nil
	}
	return append([]string(nil), keys...)
}

// OwnerOf reports the global property governing a concrete key.
func (t *AliasTable) OwnerOf(concrete string) (string, bool) {
	global, ok := t.owners[concrete]
	return global, ok
}
