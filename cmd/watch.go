package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/creativeprojects/mailwatch/scheduler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [monitor...]",
	Short: "Keep scanning the monitored folders and display the result on every change",
	RunE:  runWatch,
}

var watchFlags struct {
	i3bar bool
}

func init() {
	addMonitorFlags(watchCmd.Flags())
	watchCmd.Flags().BoolVar(&watchFlags.i3bar, "i3bar", false, "output using the i3bar protocol (logs are sent to stderr)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	monitors, err := selectMonitors(config, adhoc, args)
	if err != nil {
		return err
	}

	var output statusOutput = newTerminalOutput()
	logger := debugLogger()
	if watchFlags.i3bar {
		// stdout is reserved for the status bar
		pterm.DisableOutput()
		output = newI3barOutput(os.Stdout, os.Stderr)
	}

	blocks := newBlocks(monitors, logger)
	err = output.Start()
	if err != nil {
		return err
	}

	tasks := scheduler.New(logger, schedulerBlocks(blocks)...)
	tasks.OnUpdate = func(updated scheduler.Block, err error) {
		if err != nil {
			// the display keeps the last successful result
			output.Error(updated.(*block).Name(), err)
			return
		}
		if err := output.Render(blocks); err != nil {
			output.Error(updated.(*block).Name(), err)
		}
	}
	err = tasks.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
