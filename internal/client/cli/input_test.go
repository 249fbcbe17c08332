package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if out.String() != "Name?\n> " {
		t.Fatalf("prompt = %q", out.String())
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEmptyEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer
	_, err := GetSimpleText(in, "Name?", &out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func stubTerminal(t *testing.T, tty bool, width int, err error) {
	t.Helper()
	origTTY, origSize := isTerminal, terminalSize
	isTerminal = func(int) bool { return tty }
	terminalSize = func(int) (int, int, error) { return width, 24, err }
	t.Cleanup(func() {
		isTerminal, terminalSize = origTTY, origSize
	})
}

func TestRuleWidth(t *testing.T) {
	tests := []struct {
		name  string
		tty   bool
		width int
		err   error
		want  int
	}{
		{name: "not a terminal", tty: false, width: 200, want: defaultRuleWidth},
		{name: "narrow terminal", tty: true, width: 30, want: 30},
		{name: "wide terminal is capped", tty: true, width: 200, want: maxRuleWidth},
		{name: "size error", tty: true, width: 0, err: errors.New("boom"), want: defaultRuleWidth},
		{name: "zero width", tty: true, width: 0, want: defaultRuleWidth},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stubTerminal(t, tc.tty, tc.width, tc.err)
			require.Equal(t, tc.want, ruleWidth())
		})
	}
}
