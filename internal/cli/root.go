package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/five82/wayfarer/internal/app"
	"github.com/five82/wayfarer/internal/cli/formatter"
	"github.com/five82/wayfarer/internal/config"
	"github.com/five82/wayfarer/internal/nav"
	"github.com/five82/wayfarer/internal/prefs"
	"github.com/five82/wayfarer/internal/storage"
)

const defaultWidth = 100

// App holds the hooks commands use to reach the outside world. Tests swap
// them for in-memory sessions and a fixed terminal.
type App struct {
	// Open builds the session once flags are parsed.
	Open func(app.Options) (*app.Session, error)
	// IsInteractive reports whether stdin and stdout are terminals.
	IsInteractive func() bool
	// Width returns the terminal width for plain output.
	Width func() int
	// RunTUI runs the full-screen interface.
	RunTUI func(context.Context, *app.Session) error
	// Pick runs the interactive packing picker.
	Pick func(*app.Session) error
	// Close releases the session once the command has finished, whether or
	// not it failed.
	Close func(*app.Session) error
}

// DefaultApp wires the real session, terminal detection and TUI.
func DefaultApp() *App {
	return &App{
		Open:          app.Open,
		IsInteractive: isInteractive,
		Width:         terminalWidth,
		RunTUI:        func(ctx context.Context, s *app.Session) error { return s.RunTUI(ctx) },
		Pick:          runPicker,
		Close:         (*app.Session).Close,
	}
}

func isInteractive() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

type rootFlags struct {
	configPath string
	prefsPath  string
	logLevel   string
	storage    string
	dayPolicy  string
}

func (f *rootFlags) register(pf *pflag.FlagSet) {
	pf.StringVar(&f.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&f.prefsPath, "prefs", "", "preferences file (default "+prefs.DefaultPath()+")")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error (default silent)")
	pf.StringVar(&f.storage, "storage", "", "storage backend: file, sqlite, memory")
	pf.StringVar(&f.dayPolicy, "day-policy", "", "day selection: persistent, reset")
}

func (f rootFlags) validate() error {
	switch strings.ToLower(strings.TrimSpace(f.storage)) {
	case "", storage.BackendFile, storage.BackendSQLite, storage.BackendMemory:
	default:
		return usageErrorf("choose file, sqlite or memory", "unknown storage backend %q", f.storage)
	}
	if f.dayPolicy != "" {
		if _, ok := nav.ParseDayPolicy(f.dayPolicy); !ok {
			return usageErrorf("choose persistent or reset", "unknown day policy %q", f.dayPolicy)
		}
	}
	return nil
}

// NewRootCmd creates the top-level "wayfarer" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	var flags rootFlags
	var sess *app.Session

	closeSession := func() error {
		if sess == nil {
			return nil
		}
		s := sess
		sess = nil
		if a.Close == nil {
			return s.Close()
		}
		return a.Close(s)
	}

	root := &cobra.Command{
		Use:   "wayfarer",
		Short: "Terminal companion for a planned trip",
		Long: "wayfarer shows a trip's itinerary, flights, stays and guides, and keeps\n" +
			"a packing checklist that survives restarts.\n\n" +
			"Run without arguments in a terminal to open the interactive view.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			s, err := a.Open(app.Options{
				ConfigPath: flags.configPath,
				PrefsPath:  flags.prefsPath,
				Overrides: config.Overrides{
					Storage:   flags.storage,
					DayPolicy: flags.dayPolicy,
					LogLevel:  flags.logLevel,
				},
			})
			if err != nil {
				return err
			}
			sess = s
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeSession()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.IsInteractive() {
				return a.RunTUI(cmd.Context(), sess)
			}
			snap := sess.Store.Snapshot()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOverview(sess.Trip, snap.Progress, a.Width()))
			return nil
		},
	}

	root.SetFlagErrorFunc(flagError)

	flags.register(root.PersistentFlags())

	session := func() *app.Session { return sess }
	root.AddCommand(
		newDaysCmd(a, session),
		newDayCmd(a, session),
		newFlightsCmd(session),
		newStaysCmd(session),
		newGuideCmd(session),
		newPackCmd(a, session),
		newLogsCmd(session),
	)
	closeOnError(root, closeSession)

	return root
}

// closeOnError wraps every RunE in the tree so a failing command still
// closes the session; cobra skips PersistentPostRunE after a RunE error.
func closeOnError(cmd *cobra.Command, closeSession func() error) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args)
			if err != nil {
				if cerr := closeSession(); cerr != nil {
					return errors.Join(err, cerr)
				}
			}
			return err
		}
	}
	for _, sub := range cmd.Commands() {
		closeOnError(sub, closeSession)
	}
}
