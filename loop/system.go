package loop

// System is one step of the per-frame update. Systems are plain structs that
// keep whatever state they need between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts an ordinary function to a System.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) { f(frame) }
