package pkglog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

type captureHandler struct {
	attrs map[string]slog.Value
}

func (h *captureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	if h.attrs == nil {
		h.attrs = make(map[string]slog.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.attrs[a.Key] = a.Value
		return true
	})
	return nil
}

func (h *captureHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *captureHandler) WithGroup(_ string) slog.Handler {
	return h
}

func TestContextHandlerAddsServiceAndCID(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture}

	ctx := SetCorrelationID(context.Background(), "cid-abc")
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)

	if err := handler.Handle(ctx, rec); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if got := capture.attrs["service"].String(); got != ServiceName {
		t.Fatalf("expected service=%s, got %q", ServiceName, got)
	}
	if got := capture.attrs["_cID"].String(); got != "cid-abc" {
		t.Fatalf("expected _cID=cid-abc, got %q", got)
	}
}

func TestContextHandlerSkipsInvalidCID(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture}

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	if err := handler.Handle(context.Background(), rec); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if _, ok := capture.attrs["_cID"]; ok {
		t.Fatalf("did not expect _cID to be set")
	}
}

func TestJSONHandlerRenamesKeys(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(&contextHandler{Handler: newJSONHandler(buf)})

	logger.Info("tick", "section", "live-monitor")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if _, ok := line["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", line)
	}
	if line["severity"] != "INFO" {
		t.Fatalf("expected severity INFO, got %v", line["severity"])
	}
	if line["service"] != ServiceName {
		t.Fatalf("expected service key, got %v", line["service"])
	}
}

func TestSetLevel(t *testing.T) {
	defer level.Set(slog.LevelInfo)

	if !SetLevel("debug") {
		t.Fatal("expected debug to be accepted")
	}
	if level.Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", level.Level())
	}
	if SetLevel("chatty") {
		t.Fatal("expected unknown level to be rejected")
	}
	if level.Level() != slog.LevelDebug {
		t.Fatalf("expected level unchanged, got %v", level.Level())
	}
}
