package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner runs a command and returns its standard output. A command that
// cannot be started or exits with a non-zero status is an error.
type Runner func(ctx context.Context, argv []string) ([]byte, error)

// runCommand runs argv[0] with the remaining arguments and returns raw stdout
// bytes. Standard error is kept in the returned error when the command
// fails.
func runCommand(ctx context.Context, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := c.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return out, fmt.Errorf("%s: %w: %s", strings.Join(argv, " "), err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return out, fmt.Errorf("%s: %w", strings.Join(argv, " "), err)
	}
	return out, nil
}
