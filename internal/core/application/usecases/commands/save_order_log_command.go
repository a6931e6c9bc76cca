package commands

import (
	"errors"

	"ordertracker/internal/pkg/guard"
)

var ErrSaveOrderLogCommandIsNotConstructed = errors.New(
	"SaveOrderLogCommand must be created via NewSaveOrderLogCommand constructor",
)

// SaveOrderLogCommand asks for the current order log to be written out.
type SaveOrderLogCommand struct {
	guard guard.ConstructorGuard
}

// NewSaveOrderLogCommand creates the parameterless save request.
func NewSaveOrderLogCommand() SaveOrderLogCommand {
	return SaveOrderLogCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SaveOrderLogCommand) Validate() error {
	return c.guard.Validate(ErrSaveOrderLogCommandIsNotConstructed)
}
