package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathblitz",
	Short: "Arcade mental-math game for the terminal",
	Long: `MathBlitz serves timed arithmetic and curriculum questions. Answer fast
to build a combo, level up, and keep your lives.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/mathblitz/config.yaml)")
	flags.String("answer-mode", "", "Answer mode: multiple, essay or random (overrides MATHBLITZ_ANSWER_MODE)")
	flags.Uint64("seed", 0, "Random seed; 0 seeds from the clock")
	flags.String("log-file", "", "Log file path (overrides MATHBLITZ_LOG_FILE)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(versionCmd)
}
