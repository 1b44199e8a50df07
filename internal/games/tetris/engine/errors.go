package engine

import (
	"errors"
	"fmt"
)

// ErrLockout is returned when a newly drawn piece has no room at its spawn
// position. It is the normal end of a game.
var ErrLockout = errors.New("engine: lockout, no room to spawn")

// ContractViolation reports an attempt to lock a piece with a cell outside
// the grid. It means a caller skipped IsValidMove and is never a normal
// game outcome.
type ContractViolation struct {
	Kind    Kind
	X, Y    int
	Rows    int
	Columns int
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("engine: contract violation: %s cell at (%d,%d) outside %dx%d grid",
		e.Kind, e.X, e.Y, e.Columns, e.Rows)
}

// IsContractViolation reports whether err wraps a *ContractViolation.
func IsContractViolation(err error) bool {
	var cv *ContractViolation
	return errors.As(err, &cv)
}
