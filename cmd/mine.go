package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/logsift/logsift/internal/config"
	"github.com/logsift/logsift/internal/miner"
	"github.com/logsift/logsift/internal/progress"
)

var mineCmd = &cobra.Command{
	Use:   "mine [flags] <file>...",
	Short: "Mine log files and dump the structure tree",
	Long: `Build the structure tree from one or more log files and print its
refined form as an indented diagnostic dump. Each node shows its level,
alternative token values with occurrence counts, and how many lines
terminate at it.

Files may be plain text or gzip-compressed (.gz); "-" reads stdin.

Examples:
  logsift mine /var/log/app.log
  logsift mine --raw /var/log/app.log
  logsift mine --progress /var/log/*.log.gz
  journalctl -b | logsift mine -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMine,
}

func init() {
	mineCmd.Flags().BoolP("progress", "p", false, "report progress on stderr")
	mineCmd.Flags().Bool("raw", false, "also dump the tree before refinement")

	rootCmd.AddCommand(mineCmd)
}

func runMine(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("raw")

	m := newMiner(cmd)

	files, err := config.ExpandGlobs(args)
	if err != nil {
		return err
	}

	if err := m.Build(files); err != nil {
		return err
	}
	if raw {
		m.Tree().Print(cmd.OutOrStdout())
	}
	m.Refine()
	m.Tree().Print(cmd.OutOrStdout())
	return nil
}

// newMiner builds a Miner honoring the command's progress flag. Progress
// goes to stderr so it never mixes with the mined output.
func newMiner(cmd *cobra.Command) *miner.Miner {
	enabled, err := cmd.Flags().GetBool("progress")
	if err != nil || !enabled {
		enabled = viper.GetBool("progress")
	}
	return miner.New(miner.WithProgress(progress.New(os.Stderr, enabled)))
}
