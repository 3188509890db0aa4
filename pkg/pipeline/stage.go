package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// stageResult captures one child-process execution.
type stageResult struct {
	returnCode int
	duration   time.Duration
	logTail    []string
}

// runStage launches argv as an isolated child process, streams its combined
// output into a bounded ring, and waits for exit. A non-zero exit is
// reported in returnCode, not as an error; err covers launch and plumbing
// failures only. The owning run's ID is exported so stages can poll the
// run's cancel flag.
func runStage(ctx context.Context, runID, stage string, argv []string, tailLines int) (*stageResult, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("stage %s has no command", stage)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), "PIPELINE_RUN_ID="+runID)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stage %s stdout pipe: %w", stage, err)
	}
	cmd.Stderr = cmd.Stdout

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start stage %s: %w", stage, err)
	}

	ring := NewLogRing(tailLines)
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		ring.Append(line)
		slog.Info("stage output", "stage", stage, "line", line)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		slog.Warn("Stage output stream broke", "stage", stage, "error", scanErr)
	}

	waitErr := cmd.Wait()
	result := &stageResult{
		returnCode: cmd.ProcessState.ExitCode(),
		duration:   time.Since(started),
		logTail:    ring.Tail(),
	}
	if waitErr != nil {
		if _, isExit := waitErr.(*exec.ExitError); !isExit {
			return nil, fmt.Errorf("wait for stage %s: %w", stage, waitErr)
		}
	}
	return result, nil
}
