package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSeverityPrefixes tests the prefix written for each severity.
func TestSeverityPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Log(Blank, "plain")
	l.Log(Info, "trained")
	l.Log(Error, "failed")
	l.Log(Severity(9), "odd")

	assert.Equal(t, "plain\nInfo: trained\nError: failed\nSeverity(9): odd\n", buf.String())
}

// TestPrintf tests formatting and nil tolerance.
func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	Printf(New(&buf), Info, "epoch %d loss %.2f", 3, 0.125)
	assert.Equal(t, "Info: epoch 3 loss 0.12\n", buf.String())

	assert.NotPanics(t, func() { Printf(nil, Info, "dropped") })
	assert.NotPanics(t, func() { Discard.Log(Error, "dropped") })
}

// TestConcurrentLines tests that concurrent writers never interleave a line.
func TestConcurrentLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.Log(Info, "0123456789")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 400)
	for _, line := range lines {
		assert.Equal(t, "Info: 0123456789", line)
	}
}
