//go:build ci

package sound

const (
	CueBustWarning = "bust_warning"
	CueDeviation   = "deviation"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) Init() error {
	return nil
}

func (m *Manager) Play(name string) {
	// No-op
}

func (m *Manager) Close() {
	// No-op
}
