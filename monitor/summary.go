package monitor

import (
	"fmt"
	"strings"

	"github.com/creativeprojects/mailwatch/mailbox"
	"github.com/creativeprojects/mailwatch/widget"
)

// ComputeState returns Warning as soon as there's one mail
func ComputeState(count int) widget.State {
	if count > 0 {
		return widget.Warning
	}
	return widget.Idle
}

// Summary returns "<label>:<count> <senders>", or an empty string when there's no mail
func Summary(label string, result mailbox.ScanResult) string {
	if result.Count() == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d %s", label, result.Count(), strings.Join(result.Senders(), ", "))
}
