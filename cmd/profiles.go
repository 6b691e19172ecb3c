package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathblitz/internal/problemgen"
	"github.com/abhisek/mathblitz/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List difficulty profiles and curriculum levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printProfiles(cmd.OutOrStdout())
	},
}

func printProfiles(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLIVES\tTICK\tBUDGET\tRANGE\tOPERATORS")
	for _, k := range profile.Keys() {
		p, err := profile.Lookup(k)
		if err != nil {
			return err
		}
		lives := fmt.Sprint(p.Lives)
		if p.Unlimited() {
			lives = "∞"
		}
		ops := make([]string, len(p.Operators))
		for i, op := range p.Operators {
			ops[i] = string(op)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d-%d\t%s\n",
			k, lives, p.TimerTick, p.QuestionBudget(), p.Range.Min, p.Range.Max, strings.Join(ops, " "))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tLEVEL")
	for _, c := range problemgen.AllCurricula() {
		fmt.Fprintf(w, "%s\t%s\n", c, c.DisplayName())
	}
	return w.Flush()
}
