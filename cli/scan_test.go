package cli

import (
	"slices"
	"testing"

	"github.com/ardnew/clog/log"
)

func TestScanFlags(t *testing.T) {
	args := []string{
		"warn", "--log-level", "debug", "--log-pretty",
		"--no-log-caller=false", "--log-format=json", "-x",
		"--log-level", "--other", "--", "--log-format=text",
	}

	got := scanFlags(args,
		func(name string) bool { return name != "other" },
		func(name string) bool { return name == "log-level" || name == "log-format" },
	)

	want := []flagArg{
		{name: "log-level", value: "debug"},
		{name: "log-pretty"},
		{name: "no-log-caller", value: "false", assigned: true},
		{name: "log-format", value: "json", assigned: true},
		{name: "log-level"},
	}

	if !slices.Equal(got, want) {
		t.Errorf("scanFlags() = %+v, want %+v", got, want)
	}
}

func TestScanConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"none", []string{"warn", "general"}, "def"},
		{"long", []string{"--config", "a.yaml", "warn"}, "a.yaml"},
		{"long assigned", []string{"--config=b.yaml"}, "b.yaml"},
		{"short", []string{"-c", "c.yaml"}, "c.yaml"},
		{"short joined", []string{"-cd.yaml"}, "d.yaml"},
		{"last wins", []string{"-c", "e.yaml", "--config=f.yaml"}, "f.yaml"},
		{"after terminator", []string{"--", "--config=g.yaml"}, "def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scanConfig(tt.args, "def"); got != tt.want {
				t.Errorf("scanConfig() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoolArg(t *testing.T) {
	tests := []struct {
		arg    flagArg
		want   bool
		wantOK bool
	}{
		{flagArg{name: "log-pretty"}, true, true},
		{flagArg{name: "no-log-pretty"}, false, true},
		{flagArg{name: "log-caller", value: "false", assigned: true}, false, true},
		{flagArg{name: "no-log-caller", value: "false", assigned: true}, true, true},
		{flagArg{name: "log-caller", value: "maybe", assigned: true}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.arg.name+"="+tt.arg.value, func(t *testing.T) {
			got, ok := boolArg(tt.arg)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("boolArg() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLogConfig_Scan_ConfiguresLogger(t *testing.T) {
	defer log.Config(log.WithLevel(log.DefaultLevel), log.WithFormat(log.DefaultFormat))

	var cfg logConfig

	cfg.scan([]string{"display", "--log-level=debug", "--log-format", "json", "--no-log-pretty"})

	if cfg.Level != "debug" || cfg.Format != "json" || cfg.Pretty {
		t.Errorf("scan() = %+v", cfg)
	}

	if got := log.Default().Level(); got != log.LevelDebug {
		t.Errorf("logger level = %v, want debug", got)
	}

	if got := log.Default().Format(); got != log.FormatJSON {
		t.Errorf("logger format = %v, want json", got)
	}
}
