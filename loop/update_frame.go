package loop

// UpdateFrame is handed to every system during one tick.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
}

func newUpdateFrame(dt float64) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  NewCommands(),
	}
}
