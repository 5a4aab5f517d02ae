package lr

import (
	"fmt"
)

// Action is one of Shift, Reduce, or Accept.
type Action interface {
	isAction()
	String() string
}

type Shift struct {
	State int
}

func (Shift) isAction() {}

func (action Shift) String() string {
	return fmt.Sprintf("shift, and go to state %d", action.State)
}

type Reduce struct {
	// Rule number as numbered by the grammar report.
	Rule int

	Lhs string
}

func (Reduce) isAction() {}

func (action Reduce) String() string {
	return fmt.Sprintf("reduce using rule %d (%s)", action.Rule, action.Lhs)
}

type Accept struct{}

func (Accept) isAction() {}

func (Accept) String() string {
	return "accept"
}
