package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutput_Writer(t *testing.T) {
	var buf bytes.Buffer
	prev := SetWriter(&buf)
	defer SetWriter(prev)

	Success("generated")
	Error("failed")
	Warn("drifted")
	Info("scanning")
	Step("msgs/register.gen.go")

	out := buf.String()
	for _, want := range []string{"generated", "failed", "drifted", "scanning", "msgs/register.gen.go"} {
		assert.Contains(t, out, want)
	}
}

func TestOutput_Verbose(t *testing.T) {
	var buf bytes.Buffer
	prev := SetWriter(&buf)
	defer SetWriter(prev)
	defer SetVerbose(false)

	SetVerbose(false)
	Verbose("hidden")
	assert.Zero(t, buf.Len())

	SetVerbose(true)
	Verbose("shown")
	assert.Contains(t, buf.String(), "shown")
}
