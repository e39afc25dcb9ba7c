// adminctl is a thin CLI over the client core. It wires the durable state
// store, the session holder and the API client the same way an embedding
// application would, and prints API responses as JSON. Sessions and the
// mock-mode flag survive between invocations.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/sportsclub/admincore/internal/client"
	"github.com/sportsclub/admincore/internal/infra"
	"github.com/sportsclub/admincore/internal/session"
	"github.com/sportsclub/admincore/internal/store"
)

const usage = `usage: adminctl <command> [args]

commands:
  login <email> <password>   authenticate and persist the session
  logout                     clear the persisted session
  whoami                     print the current session user
  mode [mock|real]           show or set the data-source mode
  players                    list players
  teams                      list teams
  trainings                  list trainings
  matches                    list matches
  tests                      list test results
  dashboard                  print the dashboard summary
  clubs                      list clubs
  pending                    list registrations awaiting approval
`

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if err := run(logger, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("a command is required")
	}

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	st, err := store.Open(cfg.StatePath)
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer st.Close()

	mode, err := store.NewModeStore(st)
	if err != nil {
		return fmt.Errorf("load mode: %w", err)
	}
	holder, err := session.NewHolder(store.NewSessionStore(st))
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	api := client.New(cfg.APIBaseURL, mode, holder, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	defer cancel()

	switch cmd := args[0]; cmd {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: adminctl login <email> <password>")
		}
		resp, err := api.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		if err := holder.Set(resp.Token, resp.User); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
		return printJSON(resp.User)

	case "logout":
		if err := holder.Clear(); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "whoami":
		user, ok := holder.User()
		if !ok {
			return fmt.Errorf("not logged in")
		}
		return printJSON(user)

	case "mode":
		if len(args) == 1 {
			if mode.Mock() {
				fmt.Println("mock")
			} else {
				fmt.Println("real")
			}
			return nil
		}
		switch args[1] {
		case "mock":
			return mode.SetMock(true)
		case "real":
			return mode.SetMock(false)
		default:
			return fmt.Errorf("usage: adminctl mode [mock|real]")
		}

	case "players":
		return printResult(api.GetPlayers(ctx, nil))
	case "teams":
		return printResult(api.GetTeams(ctx))
	case "trainings":
		return printResult(api.GetTrainings(ctx, nil))
	case "matches":
		return printResult(api.GetMatches(ctx, nil))
	case "tests":
		return printResult(api.GetTestResults(ctx, nil))
	case "dashboard":
		return printResult(api.GetDashboardStats(ctx))
	case "clubs":
		return printResult(api.GetClubs(ctx))
	case "pending":
		return printResult(api.GetPendingRegistrations(ctx))

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printResult[T any](v T, err error) error {
	if err != nil {
		return err
	}
	return printJSON(v)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
