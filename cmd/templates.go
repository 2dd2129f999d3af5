package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/logsift/logsift/internal/config"
	"github.com/logsift/logsift/internal/output"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [flags] <file>...",
	Short: "Mine log files and list the discovered templates",
	Long: `Build and refine the structure tree, then render each terminal branch
as a one-line template: literal tokens stay as written, recognized value
syntaxes appear as placeholders, and free variables become <*>.
Templates are listed by descending match count.

Examples:
  logsift templates /var/log/app.log
  logsift templates --format json /var/log/*.log.gz
  logsift templates --format table app.log`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().BoolP("progress", "p", false, "report progress on stderr")
	templatesCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return err
	}

	files, err := config.ExpandGlobs(args)
	if err != nil {
		return err
	}

	m := newMiner(cmd)
	tr, err := m.Run(files)
	if err != nil {
		return err
	}

	wr := output.New(cmd.OutOrStdout(), output.ParseFormat(cfg.Format))
	if noColor {
		wr.SetColorMode(output.ColorNever)
	}
	return wr.WriteTemplates(tr.Templates())
}
