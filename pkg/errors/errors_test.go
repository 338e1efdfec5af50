package errors

import (
	"fmt"
	"testing"
)

type captureHandler struct {
	errs   []*UIError
	panics []*PanicError
}

func (c *captureHandler) HandleError(err *UIError)    { c.errs = append(c.errs, err) }
func (c *captureHandler) HandlePanic(err *PanicError) { c.panics = append(c.panics, err) }

func TestReportSetsTimestamp(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	Report(&UIError{Op: "test.Op", Kind: KindContract, Err: fmt.Errorf("boom")})

	if len(capture.errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(capture.errs))
	}
	if capture.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp the error")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	func() {
		defer Recover("test.panicking")
		panic("kaboom")
	}()

	if len(capture.panics) != 1 {
		t.Fatalf("expected 1 panic report, got %d", len(capture.panics))
	}
	p := capture.panics[0]
	if p.Op != "test.panicking" || p.Value != "kaboom" {
		t.Errorf("unexpected panic report: %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("panic report should carry a stack trace")
	}
}

func TestErrorFormatting(t *testing.T) {
	err := &UIError{Op: "focus.Manager.Set", Kind: KindContract, Err: fmt.Errorf("dangling path")}
	want := "focus.Manager.Set [contract]: dangling path"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestKindStrings(t *testing.T) {
	kinds := map[ErrorKind]string{
		KindUnknown:  "unknown",
		KindContract: "contract",
		KindLayout:   "layout",
		KindRender:   "render",
		KindFont:     "font",
		KindTheme:    "theme",
		KindPanic:    "panic",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(k), k.String(), want)
		}
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("nil SetHandler should restore LogHandler, got %T", DefaultHandler)
	}
}
