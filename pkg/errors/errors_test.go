package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/go-aria/aria/pkg/errors"
)

type captureHandler struct {
	errs   []*errors.WidgetError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(e *errors.WidgetError) { h.errs = append(h.errs, e) }
func (h *captureHandler) HandlePanic(e *errors.PanicError)  { h.panics = append(h.panics, e) }

func install(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func TestReport_RoutesToHandler(t *testing.T) {
	h := install(t)

	cause := stderrors.New("no matching panel")
	errors.Report(&errors.WidgetError{
		Op:     "toggle.Init",
		Kind:   errors.KindSelector,
		Widget: "toggle",
		Err:    cause,
	})

	if len(h.errs) != 1 {
		t.Fatalf("handled errors = %d, want 1", len(h.errs))
	}
	got := h.errs[0]
	if got.Timestamp.IsZero() {
		t.Error("Report left Timestamp zero")
	}
	if !stderrors.Is(got, cause) {
		t.Error("Unwrap chain broken")
	}
	msg := got.Error()
	if !strings.Contains(msg, "toggle.Init") || !strings.Contains(msg, "selector") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestReport_NilIsNoOp(t *testing.T) {
	h := install(t)
	errors.Report(nil)
	errors.ReportPanic(nil)
	if len(h.errs)+len(h.panics) != 0 {
		t.Error("nil report reached the handler")
	}
}

func TestGuard_RecoversPanic(t *testing.T) {
	h := install(t)

	errors.Guard("accordion.onOpen", func() {
		panic("callback exploded")
	})

	if len(h.panics) != 1 {
		t.Fatalf("handled panics = %d, want 1", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "accordion.onOpen" {
		t.Errorf("Op = %q", p.Op)
	}
	if p.Value != "callback exploded" {
		t.Errorf("Value = %v", p.Value)
	}
	if p.StackTrace == "" {
		t.Error("empty stack trace")
	}
	if p.Timestamp.IsZero() {
		t.Error("zero timestamp")
	}
}

func TestGuard_NilAndCleanCallbacks(t *testing.T) {
	h := install(t)

	errors.Guard("noop", nil)
	var ran bool
	errors.Guard("clean", func() { ran = true })

	if !ran {
		t.Error("clean callback did not run")
	}
	if len(h.panics) != 0 {
		t.Error("clean callbacks reported panics")
	}
}

func TestKind_String(t *testing.T) {
	kinds := map[errors.Kind]string{
		errors.KindUnknown:   "unknown",
		errors.KindConfig:    "config",
		errors.KindSelector:  "selector",
		errors.KindAnimation: "animation",
		errors.KindPanic:     "panic",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
