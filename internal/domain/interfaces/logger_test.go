package interfaces

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("system skipped", F("index", 2), F("reason", "bad label"))
	logger.Error("run aborted")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("output contains filtered messages:\n%s", got)
	}
	if !strings.Contains(got, "WARN: system skipped index=2 reason=bad label\n") {
		t.Errorf("missing warn line, got:\n%s", got)
	}
	if !strings.Contains(got, "ERROR: run aborted\n") {
		t.Errorf("missing error line, got:\n%s", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: " error ", want: LevelError},
		{in: "loud", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
