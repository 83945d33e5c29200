package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel(GetLevel())

	SetLevel(LevelWarn)
	assert.Equal(t, LevelWarn, GetLevel())

	// lower levels are discarded without panicking
	Debug("debug")
	Infof("%s", "info")
	Warn("warning")
	Error("error")
	Status("I:1 alice@example.com", true)
}
