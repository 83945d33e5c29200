package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/creativeprojects/mailwatch/term"
	"github.com/creativeprojects/mailwatch/widget"
)

type statusOutput interface {
	Start() error
	Render(blocks []*block) error
	Error(name string, err error)
}

// terminalOutput prints a line each time the status changes
type terminalOutput struct {
	last    string
	started bool
}

func newTerminalOutput() *terminalOutput {
	return &terminalOutput{}
}

func (o *terminalOutput) Start() error {
	term.Info("watching for mails, press Ctrl+C to stop")
	return nil
}

func (o *terminalOutput) Render(blocks []*block) error {
	line, warning := statusLine(blocks)
	if o.started && line == o.last {
		return nil
	}
	o.started = true
	o.last = line
	if line == "" {
		line = "no mail"
	}
	term.Status(line, warning)
	return nil
}

func (o *terminalOutput) Error(name string, err error) {
	term.Errorf("%s: %s", name, err)
}

// statusLine joins the text of the widgets which have something to show
func statusLine(blocks []*block) (string, bool) {
	texts := make([]string, 0, len(blocks))
	warning := false
	for _, b := range blocks {
		if b.widget.State() == widget.Warning {
			warning = true
		}
		if b.widget.Text() == "" {
			continue
		}
		texts = append(texts, b.widget.Text())
	}
	return strings.Join(texts, " | "), warning
}

// i3barOutput writes the i3bar protocol: a header followed by an endless array of status lines
type i3barOutput struct {
	output io.Writer
	errors io.Writer
}

func newI3barOutput(output, errors io.Writer) *i3barOutput {
	return &i3barOutput{
		output: output,
		errors: errors,
	}
}

func (o *i3barOutput) Start() error {
	_, err := io.WriteString(o.output, "{\"version\":1}\n[\n")
	return err
}

func (o *i3barOutput) Render(blocks []*block) error {
	line := make([]widget.I3BarBlock, len(blocks))
	for i, b := range blocks {
		line[i] = b.widget.I3Bar()
	}
	buffer, err := json.Marshal(line)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(o.output, "%s,\n", buffer)
	return err
}

func (o *i3barOutput) Error(name string, err error) {
	fmt.Fprintf(o.errors, "%s: %s\n", name, err)
}
