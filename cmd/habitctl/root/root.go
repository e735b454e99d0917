// AngelaMos | 2026
// root.go

package root

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/taskhabit/internal/config"
	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/notify"
	"github.com/carterperez-dev/taskhabit/internal/persist"
	"github.com/carterperez-dev/taskhabit/internal/session"
	"github.com/carterperez-dev/taskhabit/internal/store"
	"github.com/carterperez-dev/taskhabit/internal/ui"
)

const Version = "1.0.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "habitctl",
	Short:         "Task Habits from the terminal",
	Long:          "habitctl drives the same snapshot store as the API: tasks, habits, points and rewards.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newAddCmd(),
		newListCmd(),
		newToggleCmd(),
		newRemoveCmd(),
		newRewardsCmd(),
		newUnlockCmd(),
		newCoachCmd(),
		newKeysCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

// openStore builds a store over the configured backend and resumes the
// active session if one is recorded and readable. Logs go to stderr at warn level so
// command output stays readable.
func openStore(ctx context.Context) (*store.Store, *config.Config, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	backend, err := persist.Open(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	var notifier notify.Notifier = notify.NewLogNotifier(logger)
	if cfg.Notify.Backend == "redis" && backend.Redis != nil {
		notifier = notify.NewRedisNotifier(backend.Redis.Client, cfg.Notify.Queue)
	}

	adapter := persist.NewAdapter(backend.KV)
	st := store.New(store.Config{
		Resolver: session.NewResolver(session.Config{
			Adapter:    adapter,
			AdminEmail: cfg.Store.AdminEmail,
			Delay:      cfg.Store.LoginDelay,
			Timezone:   cfg.Store.Timezone,
			Logger:     logger,
		}),
		Adapter:           adapter,
		Notifier:          notifier,
		AdminEmail:        cfg.Store.AdminEmail,
		SubscriptionDelay: cfg.Notify.SubscriptionDelay,
		Logger:            logger,
	})

	cleanup := func() {
		if err := backend.Close(); err != nil {
			logger.Warn("close store backend", "error", err)
		}
	}

	if _, err := st.Resume(ctx); err != nil {
		logger.Warn("could not resume previous session", "error", err)
	}

	return st, cfg, cleanup, nil
}

func parseCategory(s string) (domain.Category, error) {
	c := domain.Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category %q, want one of %s", s, categoryList())
	}
	return c, nil
}

func categoryList() string {
	names := make([]string, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, "|")
}

// sessionError turns a missing session into a hint.
func sessionError(err error) error {
	if errors.Is(err, core.ErrUnauthorized) {
		return errors.New("not logged in: run habitctl login <email>")
	}
	return err
}
