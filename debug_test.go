package starfan

import (
	"bytes"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_LogsTickStats(t *testing.T) {
	c := newTestComposition(t, 1)
	var buf bytes.Buffer
	c.SetDebugOutput(&buf)
	c.SetDebugMode(true)
	c.ChangeEnableStatus()

	if err := c.Tick(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "[starfan] tick 1: spawned 1 | culled 0 | alive 1 | fan on") {
		t.Errorf("debug line = %q", out)
	}
}

func TestDebugMode_OffIsSilent(t *testing.T) {
	c := newTestComposition(t, 1)
	var buf bytes.Buffer
	c.SetDebugOutput(&buf)
	for i := 0; i < 5; i++ {
		if err := c.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("debug off wrote %q", buf.String())
	}
}

func TestDebugMode_WarnsAboveThreshold(t *testing.T) {
	c := newTestComposition(t, 1)
	c.SetCullFunc(func(*PhysicalStar, Rect) bool { return false })
	c.ChangeEnableStatus()
	for i := 0; i < debugMaxStars; i++ {
		if err := c.Tick(); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	c.SetDebugOutput(&buf)
	c.SetDebugMode(true)
	if err := c.Tick(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[starfan] warning: 1001 live stars") {
		t.Errorf("missing warning in %q", buf.String())
	}
}

func TestDebugMode_NilOutputDiscards(t *testing.T) {
	c := newTestComposition(t, 1)
	c.SetDebugOutput(nil)
	c.SetDebugMode(true)
	if err := c.Tick(); err != nil {
		t.Fatal(err)
	}
}
