package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-aria/aria/pkg/logging"
)

func TestInit_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(slog.LevelInfo, &buf)
	t.Cleanup(func() { logging.SetLogger(nil) })

	logging.Debug(logging.SubsystemRegistry, "dropped %d", 1)
	logging.Info(logging.SubsystemToggle, "kept %d", 2)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("debug entry passed an info-level logger")
	}
	if !strings.Contains(out, "kept 2") {
		t.Errorf("info entry missing: %q", out)
	}
	if !strings.Contains(out, "subsystem=Toggle") {
		t.Errorf("subsystem attribute missing: %q", out)
	}
}

func TestError_CarriesErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(slog.LevelDebug, &buf)
	t.Cleanup(func() { logging.SetLogger(nil) })

	logging.Error(logging.SubsystemAccordion, errors.New("panel missing"), "init failed")

	out := buf.String()
	if !strings.Contains(out, "panel missing") || !strings.Contains(out, "init failed") {
		t.Errorf("error entry incomplete: %q", out)
	}
}

func TestSetLogger_NilDiscards(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(slog.LevelDebug, &buf)
	logging.SetLogger(nil)

	logging.Warn(logging.SubsystemTabs, "should vanish")
	if buf.Len() != 0 {
		t.Errorf("discarded logger wrote %q", buf.String())
	}
}
