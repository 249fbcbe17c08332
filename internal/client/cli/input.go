package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	defaultRuleWidth = 40
	maxRuleWidth     = 72
)

// isTerminal and terminalSize are test seams for the x/term calls.
var (
	isTerminal   = term.IsTerminal
	terminalSize = term.GetSize
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ruleWidth is the width of the separator drawn around cards: the terminal
// width capped at maxRuleWidth, or defaultRuleWidth when stdout is not a
// terminal.
func ruleWidth() int {
	fd := int(os.Stdout.Fd())
	if !isTerminal(fd) {
		return defaultRuleWidth
	}
	w, _, err := terminalSize(fd)
	if err != nil || w <= 0 {
		return defaultRuleWidth
	}
	return min(w, maxRuleWidth)
}
