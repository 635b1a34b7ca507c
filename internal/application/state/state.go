package state

// EngineState describes whether the engine has a scene to run
type EngineState int

const (
	StateNoActiveScene EngineState = iota
	StateSceneActive
)

// String returns the string representation of the engine state
func (s EngineState) String() string {
	switch s {
	case StateNoActiveScene:
		return "NoActiveScene"
	case StateSceneActive:
		return "SceneActive"
	default:
		return "Unknown"
	}
}
