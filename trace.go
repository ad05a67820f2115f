package rc

import "encoding/json"

// Trace captures provenance for a key lookup: which layer of the registry
// produced the value, and the owning global when the key is alias-controlled.
type Trace struct {
	Key    string `json:"key"`
	Source string `json:"source"`
	Global string `json:"global,omitempty"`
	Value  any    `json:"value,omitempty"`
}

// ToJSON serialises the trace for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a payload previously generated via ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}

// Explain reports where a key currently resolves: as a global property, an
// external-store parameter, or a special parameter. Unresolvable keys fail
// with an UnknownKeyError.
func (r *Registry) Explain(key string) (Trace, error) {
	trace := Trace{Key: key}
	if owner, ok := r.aliases.OwnerOf(key); ok {
		trace.Global = owner
	}
	if value, ok := r.globals[key]; ok {
		trace.Source = SourceGlobal
		trace.Value = value
		return trace, nil
	}
	if value, ok := r.store.Get(key); ok {
		trace.Source = SourceRCParams
		trace.Value = value
		return trace, nil
	}
	if value, ok := r.special[key]; ok {
		trace.Source = SourceSpecial
		trace.Value = value
		return trace, nil
	}
	return Trace{}, &UnknownKeyError{Key: key}
}
