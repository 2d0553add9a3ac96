package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/five82/wayfarer/internal/app"
	"github.com/five82/wayfarer/internal/checklist"
	"github.com/five82/wayfarer/internal/cli/formatter"
	"github.com/five82/wayfarer/internal/state"
)

func newPackCmd(a *App, session sessionFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pack",
		Aliases: []string{"packing"},
		Short:   "Show the packing checklist",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPacking(packingData(session())))
			return nil
		},
	}
	cmd.AddCommand(newPackToggleCmd(session), newPackPickCmd(a, session))
	return cmd
}

func packingData(sess *app.Session) formatter.PackingData {
	snap := sess.Store.Snapshot()
	return formatter.PackingData{
		List:           snap.Checklist,
		Progress:       snap.Progress,
		ImportantNotes: sess.Trip.ImportantNotes,
		PowerBankRules: sess.Trip.PowerBankRules,
	}
}

func newPackToggleCmd(session sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <category> <item>",
		Short: "Flip one item between packed and unpacked",
		Long: "Flip one item between packed and unpacked. Numbers are 1-based and\n" +
			"match the \"category.item\" column of `wayfarer pack`; \"2.3\" is also accepted.",
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ci, ii, err := parseItemRef(args)
			if err != nil {
				return err
			}

			sess := session()
			if err := sess.Store.Toggle(ci, ii); err != nil {
				if errors.Is(err, checklist.ErrOutOfRange) {
					return usageErrorf("run `wayfarer pack` to see item numbers",
						"no packing item %d.%d", ci+1, ii+1)
				}
				return err
			}

			snap := sess.Store.Snapshot()
			it := snap.Checklist[ci].Items[ii]
			mark := "unpacked"
			if it.Packed {
				mark = "packed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", it.Name, mark,
				formatter.Dim(fmt.Sprintf("(%d/%d)", snap.Progress.Packed, snap.Progress.Total)))
			return nil
		},
	}
}

// parseItemRef accepts either "<c> <i>" or "<c>.<i>" and returns 0-based
// indices.
func parseItemRef(args []string) (int, int, error) {
	parts := args
	if len(args) == 1 {
		parts = strings.SplitN(args[0], ".", 2)
	}
	const hint = "use 1-based numbers, e.g. `wayfarer pack toggle 1 2`"
	if len(parts) != 2 {
		return 0, 0, usageErrorf(hint, "expected a category and an item number")
	}
	nums := make([]int, 2)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return 0, 0, usageErrorf(hint, "invalid number %q", p)
		}
		nums[i] = n - 1
	}
	return nums[0], nums[1], nil
}

func newPackPickCmd(a *App, session sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Tick items off interactively",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.IsInteractive() {
				return usageErrorf("use `wayfarer pack toggle` in scripts", "pack pick needs a terminal")
			}
			if err := a.Pick(session()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPacking(packingData(session())))
			return nil
		},
	}
}

// itemRef addresses one checklist item.
type itemRef struct{ c, i int }

func runPicker(sess *app.Session) error {
	snap := sess.Store.Snapshot()

	var selected []itemRef
	groups := make([]*huh.Group, 0, len(snap.Checklist))
	values := make([][]itemRef, len(snap.Checklist))
	for ci, c := range snap.Checklist {
		opts := make([]huh.Option[itemRef], 0, len(c.Items))
		for ii, it := range c.Items {
			opts = append(opts, huh.NewOption(it.Name, itemRef{ci, ii}).Selected(it.Packed))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[itemRef]().
				Title(strings.TrimSpace(c.Icon+" "+c.Name)).
				Options(opts...).
				Value(&values[ci]),
		))
	}
	if len(groups) == 0 {
		return nil
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	for _, v := range values {
		selected = append(selected, v...)
	}
	return applyPicked(sess.Store, snap.Checklist, selected)
}

// applyPicked toggles every item whose packed state differs from the picked
// set.
func applyPicked(store *state.Store, before checklist.Snapshot, picked []itemRef) error {
	want := make(map[itemRef]bool, len(picked))
	for _, r := range picked {
		want[r] = true
	}
	for ci, c := range before {
		for ii, it := range c.Items {
			if it.Packed == want[itemRef{ci, ii}] {
				continue
			}
			if err := store.Toggle(ci, ii); err != nil {
				return err
			}
		}
	}
	return nil
}
