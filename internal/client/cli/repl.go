package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	T(id string, args ...any) string
	help() string
	Exec(ctx context.Context, name string, args []string) error
}

// runREPL starts a simple read–eval–print loop for the GEVP console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches it through a.Exec. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// The prompt shows the current status (from statusFn): the signed-in email
// or "guest". "help" lists the commands the current session may run.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gevp %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help", "?":
			printlnFn(a.help())

		case "exit", "quit":
			printlnFn(a.T("app.bye"))
			return

		default:
			if err := a.Exec(ctx, cmd, parts[1:]); errors.Is(err, errUnknownCommand) {
				printlnFn(a.T("app.unknownCommand", cmd))
			}
		}
	}
}
