package log

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

type lazyValue string

func (v lazyValue) LogValue() slog.Value { return slog.StringValue(string(v)) }

func TestPrettyTextHandler_ReplaceAttr_ResolvedWithGroups(t *testing.T) {
	var (
		buf  bytes.Buffer
		seen []string
	)

	h := newPrettyTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			seen = append(seen, fmt.Sprintf("%v %s %v", groups, a.Key, a.Value.Kind()))

			if a.Key == "secret" {
				return slog.String(a.Key, "***")
			}

			return a
		},
	})

	slog.New(h).
		WithGroup("req").
		With(slog.Any("user", lazyValue("ann"))).
		Info("done", slog.Group("db", slog.String("secret", "pw")))

	wantSeen := []string{
		"[req] user String",
		"[] level Any",
		"[] msg String",
		"[req db] secret String",
	}
	if strings.Join(seen, "|") != strings.Join(wantSeen, "|") {
		t.Errorf("ReplaceAttr saw %q, want %q", seen, wantSeen)
	}

	want := "level=INFO msg=done req.user=ann req.db.secret=***\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrettyTextHandler_GroupNameWithDot(t *testing.T) {
	var (
		buf    bytes.Buffer
		groups [][]string
	)

	h := newPrettyTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(g []string, a slog.Attr) slog.Attr {
			if a.Key == "k" {
				groups = append(groups, g)
			}

			return a
		},
	})

	slog.New(h).WithGroup("a.b").WithGroup("c").Info("m", slog.Int("k", 1))

	if len(groups) != 1 || strings.Join(groups[0], "|") != "a.b|c" {
		t.Errorf("groups = %q, want [[a.b c]]", groups)
	}
}
