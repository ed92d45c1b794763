package session

import "fmt"

type State int

const (
	AwaitingConsent State = iota
	SelectingCommand
	Eliciting
	Displaying
	AwaitingContinuation
	Exited
	Interrupted
)

var stateNames = [...]string{
	AwaitingConsent:      "AwaitingConsent",
	SelectingCommand:     "SelectingCommand",
	Eliciting:            "Eliciting",
	Displaying:           "Displaying",
	AwaitingContinuation: "AwaitingContinuation",
	Exited:               "Exited",
	Interrupted:          "Interrupted",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

func (s State) Terminal() bool {
	return s == Exited || s == Interrupted
}
