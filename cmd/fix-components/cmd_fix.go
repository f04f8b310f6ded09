package main

import (
	"fmt"
	"os"

	"github.com/jobtrackai/fix-components/internal/cli"
	"github.com/jobtrackai/fix-components/internal/payload"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// runFix performs a full pass. Per-file failures are printed, not returned,
// so a partial failure still exits 0.
func runFix(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewRunContext(configFile)
	if err != nil {
		return fmt.Errorf("failed to initialize run context: %w", err)
	}

	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		ctx.UI.SetNonInteractive(true)
	}

	specs, err := payload.Files()
	if err != nil {
		return err
	}

	_, err = cli.RunFix(ctx, specs)
	return err
}
