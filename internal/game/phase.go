package game

// Phase is the top-level state of the game.
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

var phaseNames = [...]string{
	PhaseMenu:     "menu",
	PhasePlaying:  "playing",
	PhasePaused:   "paused",
	PhaseGameOver: "gameover",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Command is a zero-argument input from the shell.
type Command uint8

const (
	CmdStart Command = iota
	CmdJump
	CmdTransform
	CmdPauseToggle
	CmdResume
	CmdRestart
	CmdQuit
)

var commandNames = [...]string{
	CmdStart:       "start",
	CmdJump:        "jump",
	CmdTransform:   "transform",
	CmdPauseToggle: "pause",
	CmdResume:      "resume",
	CmdRestart:     "restart",
	CmdQuit:        "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}
