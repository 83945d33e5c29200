package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [monitor...]",
	Short: "Scan the monitored folders once and display the result",
	RunE:  runStatus,
}

func init() {
	addMonitorFlags(statusCmd.Flags())
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	monitors, err := selectMonitors(config, adhoc, args)
	if err != nil {
		return err
	}
	blocks := newBlocks(monitors, debugLogger())

	table := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Monitor", "Path", "Mails", "State", "Summary"},
	})
	failed := 0
	for _, b := range blocks {
		_, err := b.Update(cmd.Context())
		if err != nil {
			failed++
			table.Data = append(table.Data, []string{b.Name(), b.Path(), "", "error", err.Error()})
			continue
		}
		table.Data = append(table.Data, []string{
			b.Name(),
			b.Path(),
			strconv.Itoa(b.Count()),
			b.State().String(),
			b.Text(),
		})
	}
	err = table.Render()
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d monitor(s) failed", failed)
	}
	return nil
}
