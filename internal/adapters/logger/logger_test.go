package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.trai.ch/ripple/internal/adapters/logger"
)

func TestLogger_SetOutput(t *testing.T) {
	log, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("expected New to return *logger.Logger")
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.Info("scanning workspace")
	log.Warn("manifest skipped")
	log.Error(errors.New("boom"))

	out := buf.String()
	for _, want := range []string{
		"level=INFO",
		"scanning workspace",
		"level=WARN",
		"manifest skipped",
		"level=ERROR",
		"operation failed",
		"boom",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	log, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("expected New to return *logger.Logger")
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			log.Info("message")
		}
	}()
	for i := 0; i < 100; i++ {
		log.Warn("other")
	}
	<-done
}
