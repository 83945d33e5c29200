package cfg

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// maxSeconds is the longest duration that fits in a time.Duration
const maxSeconds = float64(math.MaxInt64) / float64(time.Second)

// Duration accepts a number of seconds or a duration string like "1m30s"
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a duration", node.Line)
	}
	if seconds, err := strconv.ParseFloat(node.Value, 64); err == nil {
		if math.IsNaN(seconds) || math.Abs(seconds) > maxSeconds {
			return fmt.Errorf("line %d: duration %q out of range", node.Line, node.Value)
		}
		*d = Duration(seconds * float64(time.Second))
		return nil
	}
	duration, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", node.Line, node.Value)
	}
	*d = Duration(duration)
	return nil
}
