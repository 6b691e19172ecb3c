package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathblitz/internal/app"
	"github.com/abhisek/mathblitz/internal/problemgen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Skip the menus and start a game",
	Example: `  mathblitz play --key hard
  mathblitz play --mode curriculum --key smp`,
	RunE: func(cmd *cobra.Command, args []string) error {
		modeVal, _ := cmd.Flags().GetString("mode")
		key, _ := cmd.Flags().GetString("key")

		mode, err := problemgen.ParseMode(modeVal)
		if err != nil {
			return err
		}
		return runApp(cmd, &app.Start{Mode: mode, Key: key})
	},
}

func init() {
	playCmd.Flags().String("mode", string(problemgen.ModeDifficulty), "Question mode: difficulty or curriculum")
	playCmd.Flags().String("key", "", "Difficulty key or curriculum code (default normal)")
}
