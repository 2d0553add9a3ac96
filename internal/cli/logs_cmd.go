package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/five82/wayfarer/internal/config"
	"github.com/five82/wayfarer/internal/logtail"
)

func newLogsCmd(session sessionFunc) *cobra.Command {
	var (
		lines    int
		minLevel string
		caller   bool
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the end of the session log",
		Long: "Show the end of the session log. Logging is off unless log_level is set\n" +
			"(config, --log-level or WAYFARER_LOG_LEVEL) and log_file names a file.",
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := zapcore.ParseLevel(strings.ToLower(minLevel))
			if err != nil {
				return usageErrorf("choose debug, info, warn or error", "unknown level %q", minLevel)
			}
			path := session().Config.LogFile
			if path == "" {
				return usageErrorf("set log_file in "+config.DefaultPath(), "no log file configured")
			}

			raw, err := logtail.Read(path, 0)
			if err != nil {
				return err
			}
			kept := logtail.Filter(raw, level)
			if lines > 0 && len(kept) > lines {
				kept = kept[len(kept)-lines:]
			}
			out := cmd.OutOrStdout()
			if len(kept) == 0 {
				fmt.Fprintln(out, "no log entries")
				return nil
			}
			for _, l := range logtail.ColorizeLines(kept, caller) {
				fmt.Fprintln(out, l)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show (0 for all)")
	cmd.Flags().StringVar(&minLevel, "level", "debug", "minimum level to show")
	cmd.Flags().BoolVar(&caller, "caller", false, "include the source location column")
	return cmd
}
