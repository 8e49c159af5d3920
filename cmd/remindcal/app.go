package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"remindcal/internal/calendar"
	"remindcal/internal/config"
	"remindcal/internal/ics"
	appLog "remindcal/internal/log"
	"remindcal/internal/model"
	"remindcal/internal/store"
	"remindcal/internal/tui"
)

const version = "0.1.0"

func newApp() *cli.App {
	return &cli.App{
		Name:    "remindcal",
		Usage:   "Browse months and keep a reminder on any day.",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   config.DefaultPath,
				Usage:   "Path to config file",
				EnvVars: []string{"REMINDCAL_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "Reminders file (overrides reminders_file from config)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log at debug level",
			},
		},
		Action: runUI,
		Commands: []*cli.Command{
			previewCommand(),
			exportCommand(),
			importCommand(),
		},
	}
}

// loadConfig reads the config file and applies flag overrides and the log
// level.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", c.String("config"), err)
	}
	if f := c.String("file"); f != "" {
		cfg.RemindersFile = f
	}

	appLog.SetLevel(appLog.ParseLevel(cfg.LogLevel))
	if c.Bool("debug") {
		appLog.SetLevel(appLog.LevelDebug)
	}
	return cfg, nil
}

// openStore reads the reminders file. A file that cannot be decoded is
// fatal; the caller exits.
func openStore(cfg *config.Config) (*store.Store, error) {
	s := store.New(cfg.RemindersFile)
	if err := s.LoadAll(); err != nil {
		return nil, err
	}
	return s, nil
}

// setup is loadConfig followed by openStore.
func setup(c *cli.Context) (*config.Config, *store.Store, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}
	s, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

func runUI(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// Route logs away from the terminal before anything else is written.
	closeLog, err := redirectLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	appLog.Info("remindcal starting", "version", version)
	appLog.Debug("effective config",
		"config_path", c.String("config"),
		"reminders_file", cfg.RemindersFile,
		"week_start", cfg.WeekStart,
		"log_file", cfg.LogFile,
		"mouse", cfg.Mouse,
		"alt_screen", cfg.AltScreen,
	)

	s, err := openStore(cfg)
	if err != nil {
		appLog.Error("cannot read reminders", err, "path", cfg.RemindersFile)
		return err
	}

	return tui.Run(s, tui.Options{
		WeekStart: cfg.FirstWeekday(),
		Mouse:     cfg.Mouse,
		AltScreen: cfg.AltScreen,
	})
}

func redirectLog(path string) (func(), error) {
	if path == "" {
		appLog.SetOutput(io.Discard)
		return func() { appLog.SetOutput(os.Stderr) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	appLog.SetOutput(f)
	return func() {
		appLog.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

func previewCommand() *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Print the reminders of one month.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "year", Usage: "Year (default: current)"},
			&cli.IntFlag{Name: "month", Usage: "Month 1-12 (default: current)"},
		},
		Action: func(c *cli.Context) error {
			_, s, err := setup(c)
			if err != nil {
				return err
			}
			state, err := monthFromFlags(c, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, state.Label())
			fmt.Fprintln(c.App.Writer, calendar.Preview(state, s.Entries()))
			return nil
		},
	}
}

func monthFromFlags(c *cli.Context, now time.Time) (model.DisplayState, error) {
	state := model.CurrentDisplayState(now)
	if c.IsSet("year") {
		state.Year = c.Int("year")
	}
	if c.IsSet("month") {
		m := c.Int("month")
		if m < 1 || m > 12 {
			return state, errors.New("month must be between 1 and 12")
		}
		state.Month = time.Month(m)
	}
	return state, nil
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write all reminders as an iCalendar file.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output .ics path (default: stdout)"},
		},
		Action: func(c *cli.Context) error {
			cfg, s, err := setup(c)
			if err != nil {
				return err
			}

			out := c.String("out")
			if out == "" {
				return ics.Export(c.App.Writer, s.Entries(), cfg.ICSProductID)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := ics.Export(f, s.Entries(), cfg.ICSProductID); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("export %s: %w", out, err)
			}
			appLog.Info("reminders exported", "path", out, "count", s.Len())
			return nil
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Add the events of an iCalendar file as reminders.",
		ArgsUsage: "FILE.ics",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "overwrite", Usage: "Replace reminders already set on the same day"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("import needs exactly one .ics file")
			}
			_, s, err := setup(c)
			if err != nil {
				return err
			}

			f, err := os.Open(c.Args().First())
			if err != nil {
				return err
			}
			defer f.Close()

			entries, err := ics.Import(f)
			if err != nil {
				return fmt.Errorf("import %s: %w", c.Args().First(), err)
			}
			n, err := s.Merge(entries, c.Bool("overwrite"))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "imported %d of %d reminders into %s\n", n, len(entries), s.Path())
			return nil
		},
	}
}
