package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/wayfarer/internal/app"
	"github.com/five82/wayfarer/internal/cli/formatter"
	"github.com/five82/wayfarer/internal/nav"
)

type sessionFunc func() *app.Session

func newDaysCmd(a *App, session sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the itinerary days",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDayList(session().Trip, a.Width()))
			return nil
		},
	}
}

func newDayCmd(a *App, session sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "day <n>",
		Short: "Show one day's stops",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return usageErrorf("use a day number such as 1", "invalid day %q", args[0])
			}

			sess := session()
			sess.Store.SelectDay(n)
			snap := sess.Store.Snapshot()
			out := cmd.OutOrStdout()
			if snap.Screen != nav.ScreenDayDetail {
				fmt.Fprintln(out, formatter.StyleYellow.Render(fmt.Sprintf("Day %d is not part of this trip.", n)))
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.FormatDayList(sess.Trip, a.Width()))
				return nil
			}
			day, _ := sess.Trip.Day(snap.Nav.SelectedDay)
			fmt.Fprintln(out, formatter.FormatDay(day, a.Width()))
			return nil
		},
	}
}

func newFlightsCmd(session sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "flights",
		Short: "Show flight details",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session()
			if !sess.Trip.HasPage(nav.SubViewFlights.String()) {
				return fmt.Errorf("this trip has no flights")
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatFlights(sess.Trip.Flights))
			return nil
		},
	}
}

func newStaysCmd(session sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "stays",
		Aliases: []string{"accommodation"},
		Short:   "Show where you are staying",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session()
			if !sess.Trip.HasPage(nav.SubViewAccommodation.String()) {
				return fmt.Errorf("this trip has no accommodation")
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStays(sess.Trip.Accommodations))
			return nil
		},
	}
}

// guidePages lists the menu pages rendered as guides.
var guidePages = []nav.SubView{
	nav.SubViewWorship,
	nav.SubViewSurvival,
	nav.SubViewDriving,
	nav.SubViewStretch,
	nav.SubViewWeather,
}

func newGuideCmd(session sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "guide <name>",
		Short: "Show a guide page (worship, survival, driving, stretch, weather)",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session()
			available := make([]string, 0, len(guidePages))
			for _, v := range guidePages {
				if sess.Trip.HasPage(v.String()) {
					available = append(available, v.String())
				}
			}
			hint := "available guides: " + strings.Join(available, ", ")

			v, ok := nav.ParseSubView(args[0])
			if !ok || !isGuide(v) {
				return usageErrorf(hint, "unknown guide %q", args[0])
			}
			g, ok := sess.Trip.Guide(v.String())
			if !ok {
				return usageErrorf(hint, "this trip has no %s guide", v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGuide(g))
			return nil
		},
	}
}

func isGuide(v nav.SubView) bool {
	for _, g := range guidePages {
		if g == v {
			return true
		}
	}
	return false
}
