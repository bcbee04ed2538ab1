package middleware

import (
	"context"

	"smarthost/internal/app/commands"
)

type Validator interface {
	Validate(ctx context.Context, message any) error
}

// SelfValidating commands check their own fields without touching storage.
type SelfValidating interface {
	Validate() error
}

// CommandRules runs Validate on commands that implement SelfValidating and
// lets every other command through.
type CommandRules struct{}

func (CommandRules) Validate(ctx context.Context, message any) error {
	if v, ok := message.(SelfValidating); ok {
		return v.Validate()
	}
	return nil
}

// Validation rejects a command before its handler runs.
func Validation(v Validator) CommandMiddleware {
	if v == nil {
		panic("middleware: validator required")
	}
	return func(next commands.Bus) commands.Bus {
		return commandFunc(func(ctx context.Context, cmd commands.Command) (any, error) {
			if err := v.Validate(ctx, cmd); err != nil {
				return nil, err
			}
			return next.Dispatch(ctx, cmd)
		})
	}
}
