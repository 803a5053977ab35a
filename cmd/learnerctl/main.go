package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Timzz-T/learnerhours/internal/config"
	"github.com/Timzz-T/learnerhours/internal/domain/session"
	"github.com/Timzz-T/learnerhours/internal/storage"
	"github.com/Timzz-T/learnerhours/internal/view"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	totalStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

type flags struct {
	backend string
	path    string
	key     string
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "learnerctl",
		Short:         "Manage tracked learning sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&f.backend, "backend", "", "storage backend: file|sqlite")
	root.PersistentFlags().StringVar(&f.path, "path", "", "storage path (directory for file, database for sqlite)")
	root.PersistentFlags().StringVar(&f.key, "key", "", "slot key holding the session list")

	root.AddCommand(newAddCmd(&f))
	root.AddCommand(newListCmd(&f))
	root.AddCommand(newEditCmd(&f))
	root.AddCommand(newRemoveCmd(&f))
	return root
}

// loadService wires the session service from config, env and flag overrides.
func loadService(f *flags) (*session.Service, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	if f.backend != "" {
		cfg.Storage.Backend = f.backend
	}
	if f.path != "" {
		cfg.Storage.Path = f.path
	}
	if f.key != "" {
		cfg.Storage.Key = f.key
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	var slot storage.Slot
	cleanup := func() {}
	switch cfg.Storage.Backend {
	case "sqlite":
		store, err := storage.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			return nil, config.Config{}, nil, err
		}
		slot = store
		cleanup = func() { _ = store.Close() }
	case "file":
		store, err := storage.NewFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, config.Config{}, nil, err
		}
		slot = store
	default:
		return nil, config.Config{}, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return session.NewService(slot, cfg.Storage.Key, nil, logger), cfg, cleanup, nil
}

func newAddCmd(f *flags) *cobra.Command {
	var date, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cfg, cleanup, err := loadService(f)
			if err != nil {
				return err
			}
			defer cleanup()

			sess, err := svc.Add(context.Background(), date, start, end)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf(
				"added %d: %s from %s to %s",
				sess.ID,
				view.FormatDate(sess.Date, cfg.Display.DateLayout),
				view.FormatTime(sess.StartTime),
				view.FormatTime(sess.EndTime),
			)))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "session date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "end time (HH:MM)")
	return cmd
}

func newListCmd(f *flags) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest date first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cfg, cleanup, err := loadService(f)
			if err != nil {
				return err
			}
			defer cleanup()

			sessions, err := svc.LoadAll(context.Background())
			if err != nil {
				return err
			}

			list := view.BuildList(sessions, search, cfg.Display.DateLayout)
			if list.Empty {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render("Past sessions"))
			for _, e := range list.Entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s from %s to %s\n",
					e.ID, e.DisplayDate, e.DisplayStart, e.DisplayEnd)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), totalStyle.Render("Total Time: "+list.Total))
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by date substring")
	return cmd
}

func newEditCmd(f *flags) *cobra.Command {
	var date, start, end string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a session in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			svc, _, cleanup, err := loadService(f)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := context.Background()
			current, err := svc.Get(ctx, id)
			if err != nil {
				return err
			}

			// Unset flags keep the stored value.
			if date == "" {
				date = current.Date
			}
			if start == "" {
				start = current.StartTime
			}
			if end == "" {
				end = current.EndTime
			}

			if _, err := svc.Update(ctx, id, date, start, end); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Entry changed"))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "session date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "end time (HH:MM)")
	return cmd
}

func newRemoveCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			svc, _, cleanup, err := loadService(f)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Remove(context.Background(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Entry changed"))
			return nil
		},
	}
}
