package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if user := a.session.CurrentUser(); user != nil {
		return fmt.Sprintf("(%s %s)", user.Username, user.Role)
	}
	return ""
}

// Root greets, reports a restored session if the bootstrap found one, and
// hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Carebook (type 'help' for commands)")

	if user := a.session.CurrentUser(); user != nil {
		fmt.Fprintf(a.out, "Logged in as %s (%s)\n", user.FullName(), user.Role)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
