package adapters

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"beast/internal/ports"
)

// CommandRunnerAdapter executes external programs and forwards their output
// to the logger.
type CommandRunnerAdapter struct{}

func NewCommandRunnerAdapter() CommandRunnerAdapter {
	return CommandRunnerAdapter{}
}

// Run executes name in dir. A non-zero exit is reported through the exit
// code, not the error; the error is reserved for commands that could not be
// started at all.
func (a CommandRunnerAdapter) Run(ctx context.Context, dir string, name string, args ...string) (int, error) {
	command := strings.Join(append([]string{name}, args...), " ")
	log.Info().Str("command", command).Str("dir", dir).Msg("running command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	logLines(stdout.String(), false)
	logLines(stderr.String(), true)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to start command: " + command).
			WithCause(err)
	}
	return 0, nil
}

func logLines(output string, stderr bool) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if stderr {
			log.Warn().Msg(line)
			continue
		}
		log.Info().Msg(line)
	}
}

// runChecked turns a non-zero exit into an error.
func runChecked(ctx context.Context, runner ports.CommandRunnerPort, dir string, name string, args ...string) error {
	code, err := runner.Run(ctx, dir, name, args...)
	if err != nil {
		return err
	}
	if code != 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("%s command failed with exit code %d", name, code))
	}
	return nil
}

var _ ports.CommandRunnerPort = CommandRunnerAdapter{}
