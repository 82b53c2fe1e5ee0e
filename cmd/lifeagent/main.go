package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"lifeagent/internal/bootstrap"
	"lifeagent/internal/platform/config"
	"lifeagent/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:           "lifeagent",
		Short:         "Local focus tracker for the lifeagent browser extension",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dir, "dir", config.DefaultDir(), "config and data directory")

	root.AddCommand(newDaemonCmd(&dir))
	root.AddCommand(newStatusCmd(&dir))
	root.AddCommand(newClassifyCmd(&dir))
	root.AddCommand(newNotesCmd(&dir))
	root.AddCommand(newNotifyCmd(&dir))
	root.AddCommand(newExtensionCmd(&dir))
	root.AddCommand(newTUICmd(&dir))
	return root
}

func loadApp(dir string, log hclog.Logger) (*bootstrap.App, error) {
	cfg, err := config.New(dir)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.New("lifeagent", cfg.LogLevel, os.Stderr)
	}
	return bootstrap.New(cfg, log)
}

func newDaemonCmd(dir *string) *cobra.Command {
	daemon := &cobra.Command{Use: "daemon", Short: "Manage the tracking daemon"}

	daemon.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run the daemon in the foreground",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.New(*dir)
			if err != nil {
				return err
			}
			log, closer, err := logging.OpenFile("lifeagent", cfg.LogLevel, cfg.LogPath)
			if err != nil {
				return err
			}
			defer closer.Close()
			app, err := bootstrap.New(cfg, log)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.DaemonCLI.Run(ctx)
		},
	})
	daemon.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start the daemon in the background",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dir, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.DaemonCLI.Start(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "daemon started on http://%s\n", app.Config.ListenAddr)
			return nil
		},
	})
	daemon.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop the daemon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dir, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.DaemonCLI.Stop(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "daemon stopped")
			return nil
		},
	})
	daemon.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show daemon process status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dir, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			status, err := app.DaemonCLI.Status(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "running=%t pid=%d socket=%s\n", status.Running, status.PID, status.SocketPath)
			if status.Running {
				st := status.Status
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "listen=%s started=%s shell_installed=%t sweeps=%d reminders=%d\n",
					st.ListenAddr, st.StartedAt.Format(time.RFC3339), st.ShellInstalled, st.Sweeps, st.Reminders)
				if st.LastSweepError != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "last_sweep_error=%s\n", st.LastSweepError)
				}
			}
			return nil
		},
	})
	var logTail int
	logs := &cobra.Command{
		Use:   "logs",
		Short: "Show daemon logs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dir, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			payload, err := app.DaemonCLI.Logs(context.Background(), logTail)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), payload)
			return nil
		},
	}
	logs.Flags().IntVar(&logTail, "tail", 200, "log lines to show from the end")
	daemon.AddCommand(logs)
	return daemon
}

type totalJSON struct {
	Category string `json:"category"`
	TotalMS  int64  `json:"total_ms"`
}

type statusJSON struct {
	Running  bool        `json:"running"`
	State    string      `json:"state,omitempty"`
	ActiveID string      `json:"active_tab_id,omitempty"`
	Totals   []totalJSON `json:"totals"`
}

func newStatusCmd(dir *string) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show time accumulated per site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dir, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			status, err := app.DaemonCLI.Status(context.Background())
			if err != nil {
				return err
			}
			st := status.Status
			if asJSON {
				payload := statusJSON{Running: status.Running, State: st.TrackerState, ActiveID: st.ActiveID, Totals: []totalJSON{}}
				for _, item := range st.Totals {
					payload.Totals = append(payload.Totals, totalJSON{Category: item.Category, TotalMS: item.TotalMS})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			}
			if !status.Running {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "daemon is not running")
				return nil
			}
			if st.TrackerState == "tracking" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tracking tab %s since %s\n", st.ActiveID, st.SessionStart.Local().Format("15:04:05"))
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "idle")
			}
			if len(st.Totals) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no time recorded")
				return nil
			}
			for _, item := range st.Totals {
				total := time.Duration(item.TotalMS) * time.Millisecond
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item.Category, total.Truncate(time.Second))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newClassifyCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <url>",
		Short: "Show the category of a URL and whether it counts as distracting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dir, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.TrackerCLI.Classify(context.Background(), args[0])
			if err != nil {
				return err
			}
			category := out.Category
			if category == "" {
				category = "(none)"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "category=%s distracting=%t\n", category, out.Distracting)
			return nil
		},
	}
}

func newNotesCmd(dir *string) *cobra.Command {
	notes := &cobra.Command{Use: "notes", Short: "Captured annotations"}

	notes.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List annotations in capture order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dir, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			items, err := app.NotesCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notes")
				return nil
			}
			for i, item := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i+1, item)
			}
			return nil
		},
	})
	notes.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Append an annotation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dir, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.NotesCLI.Add(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stored note #%d\n", out.Count)
			return nil
		},
	})
	notes.AddCommand(&cobra.Command{
		Use:   "export <path>",
		Short: "Write annotations to a markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dir, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.NotesCLI.Export(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d notes to %s\n", out.Count, out.Path)
			return nil
		},
	})
	return notes
}

func newNotifyCmd(dir *string) *cobra.Command {
	notify := &cobra.Command{Use: "notify", Short: "Notification presenters"}

	var title, message string
	testCmd := &cobra.Command{
		Use:   "test",
		Short: "Send a notification through the configured presenters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dir, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			out := app.NotifyCLI.Send(context.Background(), title, message)
			for _, name := range out.Delivered {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "delivered via %s\n", name)
			}
			for _, failure := range out.Failures {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "failed via %s: %s\n", failure.Presenter, failure.Error)
			}
			return out.Err()
		},
	}
	testCmd.Flags().StringVar(&title, "title", "lifeagent", "notification title")
	testCmd.Flags().StringVar(&message, "message", "Notifications are working.", "notification message")
	notify.AddCommand(testCmd)
	return notify
}

func newExtensionCmd(dir *string) *cobra.Command {
	extension := &cobra.Command{Use: "extension", Short: "Browser extension that feeds the daemon"}
	extension.AddCommand(&cobra.Command{
		Use:   "export <dir>",
		Short: "Write the unpacked extension for chrome://extensions \"Load unpacked\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dir, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ExtensionCLI.Export(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s to %s (daemon %s)\n", strings.Join(out.Files, ", "), out.Dir, out.BaseURL)
			return nil
		},
	})
	return extension
}

func newTUICmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the focus dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			// Logging to stderr would corrupt the alt screen.
			app, err := loadApp(*dir, logging.New("lifeagent", "error", io.Discard))
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}
