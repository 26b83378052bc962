//go:build !tinygo

package system

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

type Runner interface {
	Run(ctx context.Context, cmd string, args ...string) (stdout, stderr string, err error)
}

// ShellRunner executes commands resolved through PATH, optionally via sudo.
// It returns stdout, stderr, and an error if the command exits non-zero.
type ShellRunner struct {
	Sudo bool
}

func (r ShellRunner) Run(ctx context.Context, cmd string, args ...string) (string, string, error) {
	name := cmd
	if r.Sudo {
		name = "sudo"
		args = append([]string{cmd}, args...)
	}
	c := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	c.Stdout = &outBuf
	c.Stderr = &errBuf
	if err := c.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return outBuf.String(), errBuf.String(), fmt.Errorf("exit %d: %w", exitErr.ExitCode(), err)
		}
		return outBuf.String(), errBuf.String(), err
	}
	return outBuf.String(), errBuf.String(), nil
}
