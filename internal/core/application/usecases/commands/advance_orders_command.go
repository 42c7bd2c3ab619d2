package commands

import (
	"errors"
	"time"

	"harvesthub/internal/pkg/guard"
)

var (
	ErrAdvanceOrdersCommandIsNotConstructed = errors.New(
		"AdvanceOrdersCommand must be created via NewAdvanceOrdersCommand constructor",
	)
	ErrTickTimeIsRequired = errors.New("tick time is required")
)

// AdvanceOrdersCommand represents one simulation tick: apply the time-driven
// lifecycle edges to every active order as of the given instant.
type AdvanceOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewAdvanceOrdersCommand creates a validated tick command.
func NewAdvanceOrdersCommand(now time.Time) (AdvanceOrdersCommand, error) {
	cmd := AdvanceOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNow(now); err != nil {
		return AdvanceOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrdersCommandIsNotConstructed)
}

// Now returns the instant the tick evaluates elapsed time against.
func (c AdvanceOrdersCommand) Now() time.Time {
	return c.now
}

func (c *AdvanceOrdersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return ErrTickTimeIsRequired
	}

	c.now = now
	return nil
}
