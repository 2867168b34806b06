package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(context.Background(), newCommandContext(nil), os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run executes one command and then closes the app, whether or not the
// command failed.
func run(ctx context.Context, cc *commandContext, args []string, out io.Writer) error {
	cmd := newRootCommand(cc)
	cmd.SetArgs(args)
	cmd.SetOut(out)

	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, cc.close())
}
