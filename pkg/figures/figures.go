// Package figures tracks live figure handles so registry-wide cycle changes
// can be pushed onto axes that were created before the change. Figures drawn
// earlier do not reread global configuration on their own.
package figures

// Axes receives color-cycle assignments.
type Axes interface {
	SetColorCycle(cycle []string)
}

// Figure exposes the axes currently attached to one figure handle.
type Figure interface {
	Axes() []Axes
}

// Manager keeps the set of live figures, mirroring the backend's open-figure
// enumeration. The zero value is usable.
type Manager struct {
	figs []Figure
}

// NewManager constructs an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds figures to the live set; nil entries are dropped.
func (m *Manager) Register(figs ...Figure) {
	for _, fig := range figs {
		if fig == nil {
			continue
		}
		m.figs = append(m.figs, fig)
	}
}

// All returns a copy of the live figure set in registration order.
func (m *Manager) All() []Figure {
	if len(m.figs) == 0 {
		return nil
	}
	return append([]Figure(nil), m.figs...)
}

// Len reports the number of live figures.
func (m *Manager) Len() int {
	return len(m.figs)
}

// Reset drops every registered figure.
func (m *Manager) Reset() {
	m.figs = nil
}
