package root

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Josephz007/level-up-progress-tracker/internal/engine"
	"github.com/Josephz007/level-up-progress-tracker/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, penalties, and rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Progress()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconGame, "Level Up: Progress Tracker"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", p.CurrentLevel))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d/%d (%d to next level)",
				p.CurrentXP, p.CurrentLevel*engine.XPPerLevel, p.XPToNextLevel)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			byCat := engine.XPByCategory(p)
			if len(byCat) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📊 XP by Category"))
				cats := make([]string, 0, len(byCat))
				for cat := range byCat {
					cats = append(cats, cat)
				}
				sort.Strings(cats)
				for _, cat := range cats {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s: %d XP\n", cat, byCat[cat])
				}
				fmt.Fprintln(cmd.OutOrStdout(), "")
			}

			active := 0
			for _, pen := range p.Penalties {
				if !pen.Completed {
					active++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconWarn+" Penalties"))
			if active == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("No active penalties!"))
			} else {
				for _, pen := range p.Penalties {
					if pen.Completed {
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "- Due %s: %s %s\n",
						pen.DueDate, pen.Description, ui.Muted.Render("("+pen.ID+")"))
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			r, err := svc.Rewards()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Rewards"))
			for _, rw := range r.Rewards {
				switch {
				case rw.Claimed:
					fmt.Fprintf(cmd.OutOrStdout(), "- Level %d: %s %s\n", rw.Level, rw.Description, ui.Good.Render("— claimed"))
				case engine.Claimable(rw, p.CurrentLevel):
					fmt.Fprintf(cmd.OutOrStdout(), "- Level %d: %s %s\n", rw.Level, rw.Description, ui.Gold.Render("— claimable!"))
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "- Level %d: %s %s\n", rw.Level, rw.Description,
						ui.Muted.Render(fmt.Sprintf("(level %d/%d)", p.CurrentLevel, rw.Level)))
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconMoney+" Money"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", "$"+r.Money.CurrentBalance.String()))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Earned", "$"+r.Money.TotalEarned.String()))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Spent", "$"+r.Money.TotalSpent.String()))

			return nil
		},
	}

	return cmd
}
