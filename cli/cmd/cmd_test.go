package cmd

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"

	"github.com/ardnew/clog/color"
	"github.com/ardnew/clog/config"
	"github.com/ardnew/clog/pkg"
)

// testEnv returns a context whose commands write to the returned buffer
// with ANSI colors and read the configuration file at path.
func testEnv(t *testing.T, path string) (context.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	ctx := WithEnv(context.Background(), Env{
		Out:     &out,
		Palette: color.MakePalette(&out, color.WithProfile(termenv.ANSI)),
		Config:  path,
	})

	return ctx, &out
}

// writeConfig writes cfg to a temporary configuration file.
func writeConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()

	var buf bytes.Buffer
	if err := cfg.Encode(&buf, config.EncodingYAML, 2); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestTimeOptions(t *testing.T) {
	tests := []struct {
		value   string
		count   int
		wantErr bool
	}{
		{"", 0, false},
		{"now", 0, false},
		{"NONE", 1, false},
		{"2024-03-05T07:08:09Z", 1, false},
		{"yesterday", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			opts, err := timeOptions(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("timeOptions(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}

			if tt.wantErr && !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}

			if len(opts) != tt.count {
				t.Errorf("timeOptions(%q) returned %d options, want %d", tt.value, len(opts), tt.count)
			}
		})
	}
}

func TestLine_Run(t *testing.T) {
	cfg := config.Default()
	cfg.Categories["network"] = "NET"
	path := writeConfig(t, cfg)

	tests := []struct {
		name string
		run  func(context.Context, Line) error
		line Line
		want string
	}{
		{
			name: "display by name",
			run:  func(ctx context.Context, l Line) error { return (&DisplayLine{l}).Run(ctx) },
			line: Line{Category: "network", Message: []string{"link", "up"}, Time: "none"},
			want: "[] NET (DISPLAY): link up\n",
		},
		{
			name: "warn by token",
			run:  func(ctx context.Context, l Line) error { return (&WarnLine{l}).Run(ctx) },
			line: Line{Category: "NET", Message: []string{"slow"}, Time: "2024-03-05T07:08:09Z"},
			want: "\x1b[33m[2024.2.5-7:8:9] NET (WARNING): slow\x1b[0m\n",
		},
		{
			name: "error without color",
			run:  func(ctx context.Context, l Line) error { return (&ErrorLine{l}).Run(ctx) },
			line: Line{Category: "system", Message: []string{"down"}, Time: "none", NoColor: true},
			want: "[] SYSTEM (ERROR): down\n",
		},
		{
			name: "verbose generated",
			run:  func(ctx context.Context, l Line) error { return (&VerboseLine{l}).Run(ctx) },
			line: Line{Category: "user", Message: []string{"hi"}, Time: "none", Generate: true},
			want: "\x1b[90m[] USER (VERBOSE): hi\x1b[0m\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testEnv(t, path)

			if err := tt.run(ctx, tt.line); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestLine_Run_Errors(t *testing.T) {
	bare := config.Default()
	delete(bare.Verbosities, config.Warning)

	t.Run("unknown category", func(t *testing.T) {
		ctx, out := testEnv(t, writeConfig(t, config.Default()))

		err := (&WarnLine{Line{Category: "netwk"}}).Run(ctx)
		if !errors.Is(err, ErrInvalidArgument) || !errors.Is(err, pkg.ErrUnknownName) {
			t.Fatalf("expected unknown name error, got %v", err)
		}

		if !strings.Contains(err.Error(), "network") {
			t.Errorf("error %q does not suggest network", err)
		}

		if out.Len() != 0 {
			t.Errorf("unexpected output %q", out.String())
		}
	})

	t.Run("missing verbosity", func(t *testing.T) {
		ctx, _ := testEnv(t, writeConfig(t, bare))

		err := (&WarnLine{Line{Category: "general"}}).Run(ctx)
		if !errors.Is(err, ErrPrint) || !errors.Is(err, pkg.ErrFieldNotFound) {
			t.Fatalf("expected missing field error, got %v", err)
		}
	})

	t.Run("malformed configuration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.FileName)
		if err := os.WriteFile(path, []byte("categories: [\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		ctx, _ := testEnv(t, path)

		err := (&DisplayLine{Line{Category: "general"}}).Run(ctx)
		if !errors.Is(err, ErrLoadConfig) || !errors.Is(err, pkg.ErrParseConfig) {
			t.Fatalf("expected parse error, got %v", err)
		}
	})
}

func TestLine_Run_MissingFileUsesDefaults(t *testing.T) {
	ctx, out := testEnv(t, filepath.Join(t.TempDir(), "absent.yaml"))

	if err := (&DisplayLine{Line{Category: "storage", Time: "none"}}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if want := "[] STORAGE (DISPLAY): \n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestHeaderDivider_Run(t *testing.T) {
	path := writeConfig(t, config.Default())

	t.Run("header", func(t *testing.T) {
		ctx, out := testEnv(t, path)

		h := &Header{
			Cosmetic: Cosmetic{
				Category: "general", Verbosity: "warning",
				Width: 3, Character: "#", Time: "none",
			},
			Format: "<<verbosity>>:<<message>>",
		}

		if err := h.Run(ctx); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if want := "\x1b[33mWARNING:###\x1b[0m\n"; out.String() != want {
			t.Errorf("output = %q, want %q", out.String(), want)
		}
	})

	t.Run("divider", func(t *testing.T) {
		ctx, out := testEnv(t, path)

		d := &Divider{Cosmetic{Category: "GENERAL", Verbosity: "DISPLAY", Width: 4, Time: "none"}}

		if err := d.Run(ctx); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if want := "[] GENERAL (DISPLAY): ----\n"; out.String() != want {
			t.Errorf("output = %q, want %q", out.String(), want)
		}
	})

	t.Run("width too large", func(t *testing.T) {
		ctx, out := testEnv(t, path)

		d := &Divider{Cosmetic{Category: "general", Verbosity: "error", Width: math.MaxInt}}

		err := d.Run(ctx)
		if !errors.Is(err, ErrPrint) || !errors.Is(err, pkg.ErrLineTooLong) {
			t.Fatalf("expected print error, got %v", err)
		}

		if out.Len() != 0 {
			t.Errorf("output = %q, want none", out.String())
		}
	})

	t.Run("unknown verbosity", func(t *testing.T) {
		ctx, _ := testEnv(t, path)

		d := &Divider{Cosmetic{Category: "general", Verbosity: "loud"}}
		if err := d.Run(ctx); !errors.Is(err, pkg.ErrUnknownName) {
			t.Errorf("expected ErrUnknownName, got %v", err)
		}
	})
}

func TestLinebreak_Run(t *testing.T) {
	ctx, out := testEnv(t, filepath.Join(t.TempDir(), "unused.yaml"))

	if err := (Linebreak{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if out.String() != "\n\n" {
		t.Errorf("output = %q, want %q", out.String(), "\n\n")
	}
}

func TestRender_Run(t *testing.T) {
	ctx, out := testEnv(t, "")

	r := &Render{
		Format:    "<<timestamp>>|<<verbosity>>|<<category>>|<<message>>|<<other>>",
		Category:  "cat",
		Verbosity: "verb",
		Message:   []string{"a", "b"},
		Time:      time.Date(2020, time.January, 2, 3, 4, 5, 0, time.UTC).Format(time.RFC3339),
	}

	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if want := "2020.0.2-3:4:5|verb|cat|a b|<<other>>\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}

	r.Time = "later"
	if err := r.Run(ctx); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCheck_Run(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeConfig(t, config.Default())
		ctx, out := testEnv(t, path)

		if err := (Check{}).Run(ctx); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if want := path + ": ok\n"; out.String() != want {
			t.Errorf("output = %q, want %q", out.String(), want)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		cfg := config.Default()
		cfg.Settings.Format = config.Ref("<<lvl>> <<message>>")
		cfg.Settings.Cosmetics.Divider.Width = config.Ref(0)

		ctx, out := testEnv(t, writeConfig(t, cfg))

		err := (Check{}).Run(ctx)
		if !errors.Is(err, ErrCheckConfig) || !errors.Is(err, pkg.ErrInvalidConfig) {
			t.Fatalf("expected check failure, got %v", err)
		}

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 problems, got %q", out.String())
		}

		if !strings.Contains(out.String(), "<<lvl>>") ||
			!strings.Contains(out.String(), "settings.cosmetics.divider.width") {
			t.Errorf("problems not reported: %q", out.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		ctx, _ := testEnv(t, filepath.Join(t.TempDir(), "absent.yaml"))

		err := (Check{}).Run(ctx)
		if !errors.Is(err, ErrCheckConfig) || !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected missing file error, got %v", err)
		}
	})
}

func TestVersion_Run(t *testing.T) {
	ctx, out := testEnv(t, "")

	if err := (Version{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if want := pkg.Name + " " + pkg.Version() + "\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestError(t *testing.T) {
	cause := errors.New("boom")
	err := ErrWriteConfig.Wrap(cause)

	if got, want := err.Error(), "write configuration file: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, ErrWriteConfig) || !errors.Is(err, cause) {
		t.Errorf("errors.Is failed for %v", err)
	}

	if errors.Is(err, ErrPrint) {
		t.Errorf("unexpected match with ErrPrint")
	}

	with := err.With()
	if with == err || with.Error() != err.Error() {
		t.Errorf("With() must return an equivalent copy")
	}

	if got := NewError("").Error(); got != "" {
		t.Errorf("empty Error() = %q", got)
	}
}
