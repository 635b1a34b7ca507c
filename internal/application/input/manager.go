package input

// Manager groups the per-frame input snapshots the engine maintains.
type Manager struct {
	Keyboard *KeyboardInfo
	Mouse    *MouseInfo
}

// NewManager creates snapshots fed by p.
func NewManager(p Poller) *Manager {
	return &Manager{
		Keyboard: NewKeyboardInfo(p),
		Mouse:    NewMouseInfo(p),
	}
}

// Update advances every snapshot by one frame.
func (m *Manager) Update() {
	m.Keyboard.Update()
	m.Mouse.Update()
}
