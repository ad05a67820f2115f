package store

// StyleDefault names the baseline style every store must recognise.
const StyleDefault = "default"

// Store is the external parameter collaborator: membership, get, set, a
// full-copy snapshot, a baseline reset, and named-style selection over
// dotted string keys. Values are opaque to the registry.
type Store interface {
	Contains(key string) bool
	Get(key string) (any, bool)
	Set(key string, value any)
	Copy() map[string]any
	Keys() []string
	Reset()
	UseStyle(name string) error
}
