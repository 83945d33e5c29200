package cmd

import (
	"time"

	"github.com/creativeprojects/mailwatch/cfg"
)

type GlobalFlags struct {
	configFile string
	quiet      bool
	verbose    bool
}

// MonitorFlags define a single monitor from the command line, replacing the configuration file
type MonitorFlags struct {
	path      string
	label     string
	interval  time.Duration
	rateLimit float64
}

var (
	global   GlobalFlags
	adhoc    MonitorFlags
	config   *cfg.Config
	emptyCfg = &cfg.Config{}
)
