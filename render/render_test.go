package render

import (
	"strings"
	"testing"
	"time"
)

var sampleDate = time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)

func TestTime_ZeroBasedMonthWithoutPadding(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{"march", sampleDate, "2024.2.5-7:8:9"},
		{"january", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), "2020.0.1-0:0:0"},
		{"december", time.Date(1999, time.December, 31, 23, 59, 58, 0, time.UTC), "1999.11.31-23:59:58"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Time(tt.time); got != tt.want {
				t.Errorf("Time() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessage_DefaultFormat(t *testing.T) {
	got := Message("NET", "WARNING", "link down", WithTime(sampleDate))
	want := "[2024.2.5-7:8:9] NET (WARNING): link down"

	if got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}

func TestMessage_ReplacesEveryOccurrence(t *testing.T) {
	format := "<<category>>|<<category>>|<<verbosity>><<verbosity>>|<<message>>/<<message>>|<<timestamp>>=<<timestamp>>"

	got := Message("c", "v", "m", WithTime(sampleDate), WithFormat(format))
	want := "c|c|vv|m/m|2024.2.5-7:8:9=2024.2.5-7:8:9"

	if got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}

	for _, token := range []string{TokenCategory, TokenVerbosity, TokenMessage, TokenTimestamp} {
		if strings.Contains(got, StartTag+token+EndTag) {
			t.Errorf("output still contains %q: %q", token, got)
		}
	}
}

func TestMessage_UnknownTokensLeftVerbatim(t *testing.T) {
	format := "<<level>> <<category>> <<message>> <<>> <<open"

	got := Message("c", "v", "m", WithTime(sampleDate), WithFormat(format))
	want := "<<level>> c m <<>> <<open"

	if got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}

func TestMessage_SubstitutionOrder(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		verbosity string
		message   string
		want      string
	}{
		{
			name:     "message resolves category",
			category: "X", verbosity: "V", message: "<<category>>",
			want: "X",
		},
		{
			name:     "message resolves verbosity",
			category: "X", verbosity: "V", message: "<<verbosity>>",
			want: "V",
		},
		{
			name:     "category resolves verbosity",
			category: "<<verbosity>>", verbosity: "V", message: "<<category>>",
			want: "V",
		},
		{
			name:     "message does not resolve timestamp",
			category: "X", verbosity: "V", message: "<<timestamp>>",
			want: "<<timestamp>>",
		},
		{
			name:     "category does not resolve message",
			category: "<<message>>", verbosity: "V", message: "<<category>>",
			want: "<<message>>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Message(tt.category, tt.verbosity, tt.message,
				WithTime(sampleDate), WithFormat("<<message>>"))
			if got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessage_Timestamp(t *testing.T) {
	t.Run("omitted uses now", func(t *testing.T) {
		before := time.Now()
		got := Message("c", "v", "m", WithFormat("<<timestamp>>"))
		after := time.Now()

		if got == "" {
			t.Fatal("expected a timestamp")
		}

		if got != Time(before) && got != Time(after) {
			t.Errorf("timestamp %q not within [%q, %q]", got, Time(before), Time(after))
		}
	})

	t.Run("clock evaluated per call", func(t *testing.T) {
		calls := 0
		clock := func() time.Time {
			calls++

			return sampleDate.Add(time.Duration(calls) * time.Second)
		}

		first := Message("c", "v", "m", WithFormat("<<timestamp>>"), WithClock(clock))
		second := Message("c", "v", "m", WithFormat("<<timestamp>>"), WithClock(clock))

		if first != "2024.2.5-7:8:10" || second != "2024.2.5-7:8:11" {
			t.Errorf("got %q then %q", first, second)
		}
	})

	t.Run("explicit zero renders empty", func(t *testing.T) {
		got := Message("c", "v", "m", WithTime(time.Time{}))
		if want := "[] c (v): m"; got != want {
			t.Errorf("Message() = %q, want %q", got, want)
		}
	})

	t.Run("without time renders empty", func(t *testing.T) {
		got := Message("c", "v", "m", WithoutTime(), WithFormat("<<timestamp>>|<<message>>"))
		if want := "|m"; got != want {
			t.Errorf("Message() = %q, want %q", got, want)
		}
	})

	t.Run("explicit zero ignores clock", func(t *testing.T) {
		clock := func() time.Time {
			t.Error("clock called for explicit timestamp")

			return sampleDate
		}

		Message("c", "v", "m", WithoutTime(), WithClock(clock))
	})
}

func TestMessage_EmptyFormatSelectsDefault(t *testing.T) {
	got := Message("c", "v", "m", WithTime(sampleDate), WithFormat(""))
	want := Message("c", "v", "m", WithTime(sampleDate))

	if got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		template string
		token    string
		value    string
		want     string
	}{
		{"no tags", "plain text", "message", "x", "plain text"},
		{"single", "a <<message>> b", "message", "x", "a x b"},
		{"other tag kept", "<<category>> <<message>>", "message", "x", "<<category>> x"},
		{"nested start tag", "<<<<message>>>>", "message", "x", "<<x>>"},
		{"prefix text in span", "<<a<<message>>", "message", "x", "<<ax"},
		{"empty value", "[<<timestamp>>]", "timestamp", "", "[]"},
		{"value with tags", "<<message>>", "message", "<<message>>", "<<message>>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Replace(tt.template, tt.token, tt.value); got != tt.want {
				t.Errorf("Replace() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("<<timestamp>> <<message>> <<timestamp>> <<lvl>> <<<<category>> <<open")
	want := []string{"timestamp", "message", "lvl", "category"}

	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Tokens() = %v, want %v", got, want)
	}

	if Tokens("no tokens") != nil {
		t.Error("expected nil for template without tokens")
	}
}
