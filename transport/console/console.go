package console

import (
	"airline/config"
	"airline/infras/otel"
	"airline/shared/failure"
	"airline/shared/prompt"
	"airline/shared/validator"
	"airline/transport/console/router"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const exitLabel = "< EXIT"

type Console struct {
	Config   *config.Config
	Router   router.Router
	Prompter *prompt.Prompter
	Otel     otel.Otel
}

func New(cfg *config.Config, r router.Router, p *prompt.Prompter, otl otel.Otel) *Console {
	return &Console{
		Config:   cfg,
		Router:   r,
		Prompter: p,
		Otel:     otl,
	}
}

// Shutdown flushes the spans recorded during the session.
func (c *Console) Shutdown(ctx context.Context) error {
	return c.Otel.Shutdown(ctx) //nolint:wrapcheck
}

// Run shows the menu and dispatches choices until the operator exits or the
// input stream ends. An operation that fails is reported and the menu is shown again.
func (c *Console) Run(ctx context.Context) error {
	logger := log.With().Str("session_id", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	routes := c.Router.Routes()
	exitChoice := len(routes) + 1

	logger.Info().Str("app", c.Config.App.Name).Msg("Console session started.")

	for {
		c.printMenu(routes, exitChoice)

		choice, err := c.readChoice(exitChoice)
		if errors.Is(err, io.EOF) {
			logger.Info().Msg("Input closed, leaving the menu.")

			return nil
		}

		if err != nil {
			return err
		}

		if choice == exitChoice {
			logger.Info().Msg("Console session ended.")

			return nil
		}

		route := routes[choice-1]

		logger.Info().Int("choice", choice).Str("operation", route.Name).Msg("Dispatching operation.")

		err = route.Run(ctx, c.Prompter)
		if errors.Is(err, io.EOF) {
			logger.Info().Str("operation", route.Name).Msg("Input closed during operation, leaving the menu.")

			return nil
		}

		if err != nil {
			logger.Error().Err(err).Str("operation", route.Name).Str("code", failure.GetCode(err).String()).Msg("Operation failed.")
			c.Prompter.Errorf("Error: %s\n", err.Error())
		}
	}
}

func (c *Console) printMenu(routes []router.Route, exitChoice int) {
	c.Prompter.Println()
	c.Prompter.Println("MAIN MENU")
	c.Prompter.Println("---------")

	for _, route := range routes {
		c.Prompter.Printf("%d. %s\n", route.Choice, route.Label)
	}

	c.Prompter.Printf("%d. %s\n", exitChoice, exitLabel)
}

// readChoice returns only once a choice between 1 and exitChoice is typed.
func (c *Console) readChoice(exitChoice int) (int, error) {
	tag := fmt.Sprintf("gte=1,lte=%d", exitChoice)

	for {
		raw, err := c.Prompter.ReadLine("Please make your choice: ")
		if err != nil {
			return 0, err //nolint:wrapcheck
		}

		choice, err := validator.NumberInRange("choice", raw, tag)
		if err != nil {
			c.Prompter.Println(failure.InvalidMenuChoice.Error())

			continue
		}

		return choice, nil
	}
}
