package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/himanshoe/chartytools/cmd/chartytools/commands"
	ferrors "github.com/himanshoe/chartytools/internal/foundation/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:]))
}

// run parses args, executes the selected command and returns the exit status.
func run(ctx context.Context, args []string) int {
	cli := &commands.CLI{}
	parser, err := commands.NewParser(ctx, cli)
	if err != nil {
		// Only reachable when the command structs themselves are malformed.
		slog.Error("Failed to build command line parser", "error", err)
		return ferrors.ExitInternal
	}

	code := ferrors.ExitOK
	adapter := ferrors.NewCLIErrorAdapter(false, slog.Default())
	adapter.SetExit(func(c int) { code = c })

	kctx, err := parser.Parse(args)
	if err != nil {
		adapter.HandleError(ferrors.ValidationError(err.Error()).Build())
		return code
	}

	adapter = ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
	adapter.SetExit(func(c int) { code = c })
	if err := kctx.Run(&commands.Global{Logger: slog.Default(), Out: os.Stdout}, cli); err != nil {
		adapter.HandleError(err)
	}
	return code
}
