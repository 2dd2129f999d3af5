package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/logsift/logsift/internal/output"
	"github.com/logsift/logsift/internal/tree"
	"github.com/logsift/logsift/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <file>",
	Short: "Watch a log file and re-mine templates on change",
	Long: `Mine the file once, print its templates, then keep watching it and
reprint the template list whenever the file changes. Log rotation is
followed: when the file is renamed or removed, the watcher waits for the
path to reappear and mines the new file.

Examples:
  logsift watch /var/log/app.log
  logsift watch --format table --interval 2s app.log`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("interval", watch.DefaultDebounce, "quiet period after a change before re-mining")
	watchCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	interval, _ := cmd.Flags().GetDuration("interval")
	noColor, _ := cmd.Flags().GetBool("no-color")

	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %s", filePath)
	}

	wr := output.New(cmd.OutOrStdout(), output.ParseFormat(viper.GetString("format")))
	if noColor {
		wr.SetColorMode(output.ColorNever)
	}

	watcher := watch.New(watch.Options{
		FilePath: filePath,
		Debounce: interval,
		OnUpdate: func(templates []tree.Template) error {
			fmt.Fprintf(cmd.OutOrStdout(), "==> %s (%s) <==\n", filePath, time.Now().Format("15:04:05"))
			return wr.WriteTemplates(templates)
		},
	})

	// Set up context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- watcher.Run(ctx)
	}()

	select {
	case <-sigChan:
		cancel()
		<-errChan
		return nil
	case err := <-errChan:
		return err
	}
}
