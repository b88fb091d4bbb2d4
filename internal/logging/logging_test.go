package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewDisabled(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug().Msg("hidden")
	log.Error().Msg("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
}

func TestNewDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	log.Debug().Str("path", "a.txt").Msg("validated")

	out := buf.String()
	for _, want := range []string{"validated", "path=", "a.txt"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output to a buffer should not be colored: %q", out)
	}
}
