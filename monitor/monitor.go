package monitor

import (
	"context"
	"strings"
	"time"

	"github.com/creativeprojects/mailwatch/cfg"
	"github.com/creativeprojects/mailwatch/lib"
	"github.com/creativeprojects/mailwatch/mailbox"
	"github.com/creativeprojects/mailwatch/mdir"
	"github.com/creativeprojects/mailwatch/widget"
	"github.com/google/uuid"
)

// rateLimitBurst is the maximum number of bytes read at once when a rate limit is set
const rateLimitBurst = 4096

// scanner returns the senders found in a directory
type scanner interface {
	Root() string
	Scan(ctx context.Context) (mailbox.ScanResult, error)
}

// Display receives the result of each successful update
type Display interface {
	SetText(text string)
	SetState(state widget.State)
}

// Monitor counts the mail files of a directory. It is not safe for concurrent use:
// the caller must wait for an update to return before starting the next one.
type Monitor struct {
	id       string
	name     string
	label    string
	interval time.Duration
	maildir  scanner
	display  Display
	log      lib.Logger
	text     string
	state    widget.State
	count    int
}

func New(config cfg.Monitor, display Display, logger lib.Logger) *Monitor {
	logger = lib.OrNoLog(logger)
	maildir := mdir.NewWithLogger(config.Path, logger)
	if config.RateLimit > 0 {
		maildir.SetRateLimit(config.RateLimit, rateLimitBurst)
	}
	return &Monitor{
		id:       strings.ReplaceAll(uuid.New().String(), "-", ""),
		name:     config.Name,
		label:    config.Label,
		interval: config.Interval.Duration(),
		maildir:  maildir,
		display:  display,
		log:      logger,
		state:    widget.Idle,
	}
}

// Update scans the directory and sends the summary to the display.
// If the scan fails, the display keeps showing the previous summary.
// The delay before the next update is returned in both cases.
func (m *Monitor) Update(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	result, err := m.maildir.Scan(ctx)
	if err != nil {
		return m.interval, err
	}
	m.count = result.Count()
	m.text = Summary(m.label, result)
	m.state = ComputeState(result.Count())
	m.display.SetText(m.text)
	m.display.SetState(m.state)
	m.log.Printf("%s: %d mail(s) in %q, scanned in %s", m.name, result.Count(), m.maildir.Root(), time.Since(start))
	return m.interval, nil
}

// ID is unique for each monitor
func (m *Monitor) ID() string {
	return m.id
}

func (m *Monitor) Name() string {
	return m.name
}

func (m *Monitor) Path() string {
	return m.maildir.Root()
}

func (m *Monitor) Label() string {
	return m.label
}

func (m *Monitor) Interval() time.Duration {
	return m.interval
}

// Text is the summary from the last successful update
func (m *Monitor) Text() string {
	return m.text
}

// Count is the number of mails found by the last successful update
func (m *Monitor) Count() int {
	return m.count
}

// State is the state from the last successful update
func (m *Monitor) State() widget.State {
	return m.state
}
