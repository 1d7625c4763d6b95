package install

import (
	"context"
	"os/exec"
	"strings"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Commander

type Commander interface {
	Output(ctx context.Context, stdin, command string, args ...string) (
		output string, err error)
}

type execCommander struct{}

func (c *execCommander) Output(ctx context.Context, stdin, command string,
	args ...string) (output string, err error) {
	cmd := exec.CommandContext(ctx, command, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	stdout, err := cmd.CombinedOutput()
	return string(stdout), err
}
