package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"intelliparse/cmd/iparse/cmd/curate"
	"intelliparse/cmd/iparse/cmd/player"
	"intelliparse/cmd/iparse/cmd/process"
	"intelliparse/cmd/iparse/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "iparse",
	Short: "Turn podcast RSS feeds into curated JSON feeds for a media player",
	Long: `Turn podcast RSS feeds into curated JSON feeds for a media player.
- Fetch one or more RSS feeds and normalize their episodes
- Filter by keywords and cap the episode count
- Optionally enrich the selection through an LLM completion service
- Write strict JSON output in the enriched or the minimal player format`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(process.Cmd)
	rootCmd.AddCommand(player.Cmd)
	rootCmd.AddCommand(curate.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolP("verbose", "V", false, "verbose output")
}
