package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Budget(ctx context.Context, args []string) error
	MustHaves(ctx context.Context) error
	Toggle(ctx context.Context, args []string) error
	Swipe(ctx context.Context) error
	Like(ctx context.Context, args []string) error
	Nope(ctx context.Context, args []string) error
	Garage(ctx context.Context) error
	Cars(ctx context.Context) error
	Details(ctx context.Context, args []string) error
}

const helpText = "Available commands: budget [amount], musthaves, toggle <feature>, (s)wipe, (l)ike [id], (n)ope [id], garage, cars, details <id>, exit"

// runREPL starts a simple read–eval–print loop for the wheel CLI.
//
// It reads a line from reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	help              show available commands
//	budget [amount]   show or set the monthly budget
//	musthaves         list feature filters
//	toggle <feature>  switch a filter on or off, e.g. "toggle awd"
//	swipe | s         show the top card of the deck
//	like | l [id]     like the top card (or the given id)
//	nope | n [id]     pass on the top card (or the given id)
//	garage            list liked vehicles
//	cars              list the whole catalog
//	details <id>      show one vehicle
//	exit | quit       leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
//
// reader must be the same one the commands prompt from, so that a line
// typed in answer to a prompt is not consumed as the next command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("wheel %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "budget":
			_ = a.Budget(ctx, args)

		case "musthaves":
			_ = a.MustHaves(ctx)

		case "toggle":
			_ = a.Toggle(ctx, args)

		case "s", "swipe":
			_ = a.Swipe(ctx)

		case "l", "like":
			_ = a.Like(ctx, args)

		case "n", "nope":
			_ = a.Nope(ctx, args)

		case "garage":
			_ = a.Garage(ctx)

		case "cars":
			_ = a.Cars(ctx)

		case "details":
			_ = a.Details(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
