package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		level   zapcore.Level
		wantErr bool
	}{
		{name: "defaults", opts: Options{}, level: zapcore.InfoLevel},
		{name: "debug console", opts: Options{Level: "debug", Format: "console"}, level: zapcore.DebugLevel},
		{name: "warn json", opts: Options{Level: "warn", Format: "json"}, level: zapcore.WarnLevel},
		{name: "bad level", opts: Options{Level: "loud"}, wantErr: true},
		{name: "bad format", opts: Options{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !logger.Core().Enabled(tt.level) {
				t.Errorf("level %s should be enabled", tt.level)
			}
			if tt.level > zapcore.DebugLevel && logger.Core().Enabled(tt.level-1) {
				t.Errorf("level %s should be disabled", tt.level-1)
			}
		})
	}
}
