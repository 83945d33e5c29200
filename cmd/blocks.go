package cmd

import (
	"fmt"
	"log"

	"github.com/creativeprojects/mailwatch/cfg"
	"github.com/creativeprojects/mailwatch/lib"
	"github.com/creativeprojects/mailwatch/monitor"
	"github.com/creativeprojects/mailwatch/scheduler"
	"github.com/creativeprojects/mailwatch/widget"
	"github.com/spf13/pflag"
)

const blockName = "maildir"

// block is a monitor with the widget it displays on
type block struct {
	*monitor.Monitor
	widget *widget.Text
}

func newBlocks(configs []cfg.Monitor, logger lib.Logger) []*block {
	blocks := make([]*block, len(configs))
	for i, config := range configs {
		text := widget.NewText(blockName, config.Name).WithText("Maildir")
		blocks[i] = &block{
			Monitor: monitor.New(config, text, logger),
			widget:  text,
		}
	}
	return blocks
}

func schedulerBlocks(blocks []*block) []scheduler.Block {
	output := make([]scheduler.Block, len(blocks))
	for i, b := range blocks {
		output[i] = b
	}
	return output
}

func addMonitorFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&adhoc.path, "path", "p", "", "directory to scan instead of the monitors from the configuration file")
	flags.StringVarP(&adhoc.label, "label", "l", cfg.DefaultLabel, "label displayed in front of the number of mails (with --path)")
	flags.DurationVarP(&adhoc.interval, "interval", "i", cfg.DefaultInterval, "delay between two scans (with --path)")
	flags.Float64Var(&adhoc.rateLimit, "rate-limit", 0, "limit reading speed of the mail files in bytes per second (with --path)")
}

// selectMonitors returns the monitors named in args, or all of them when args is empty.
// A path given on the command line replaces the configuration.
func selectMonitors(config *cfg.Config, flags MonitorFlags, args []string) ([]cfg.Monitor, error) {
	if flags.path != "" {
		if flags.interval <= 0 {
			return nil, fmt.Errorf("interval must be positive, found %s", flags.interval)
		}
		single := cfg.NewMonitor()
		single.Name = blockName
		single.Path = flags.path
		single.Label = flags.label
		single.Interval = cfg.Duration(flags.interval)
		single.RateLimit = flags.rateLimit
		return []cfg.Monitor{single}, nil
	}
	if len(config.Monitors) == 0 {
		return nil, fmt.Errorf("no monitor found in configuration file %q: use --path to scan a directory", global.configFile)
	}
	if len(args) == 0 {
		return config.Monitors, nil
	}
	selected := make([]cfg.Monitor, 0, len(args))
	for _, name := range args {
		found := false
		for _, candidate := range config.Monitors {
			if candidate.Name == name {
				selected = append(selected, candidate)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("monitor not found: %s", name)
		}
	}
	return selected, nil
}

func debugLogger() lib.Logger {
	if global.verbose {
		return log.Default()
	}
	return nil
}
