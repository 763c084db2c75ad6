package warnings

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWarnf tests that Warnf writes to the configured writer.
func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	defer restore()

	Warnf("skipping %s\n", "ghost")
	assert.Equal(t, "skipping ghost\n", buf.String())
}

// TestReport tests the single-line warning format.
//
// It verifies:
//   - Errors are prefixed with "warning: "
//   - nil errors produce no output
func TestReport(t *testing.T) {
	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	defer restore()

	Report(errors.New("package ghost not found in metadata"))
	Report(nil)
	assert.Equal(t, "warning: package ghost not found in metadata\n", buf.String())
}

// TestSetWarningWriter tests writer swapping and restoration.
func TestSetWarningWriter(t *testing.T) {
	var first, second bytes.Buffer

	restoreFirst := SetWarningWriter(&first)
	restoreSecond := SetWarningWriter(&second)
	assert.Same(t, &second, WarningWriter())

	restoreSecond()
	assert.Same(t, &first, WarningWriter())

	restoreFirst()

	restoreNil := SetWarningWriter(nil)
	assert.Equal(t, os.Stderr, WarningWriter())
	restoreNil()
}

// TestCollector tests that Collector splits writes into messages.
func TestCollector(t *testing.T) {
	c := &Collector{}
	restore := SetWarningWriter(c)
	defer restore()

	Report(errors.New("one"))
	Warnf("two\n\nthree\n")

	assert.Equal(t, []string{"warning: one", "two", "three"}, c.Messages())
}
