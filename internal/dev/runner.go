package dev

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/strata-dev/strata/internal/errors"
)

// RunnerConfig configures how the project binary is built and run.
type RunnerConfig struct {
	// ProjectDir is the directory containing the project's main package.
	ProjectDir string

	// BinaryPath is where the built binary is written. Defaults to a
	// file inside os.TempDir().
	BinaryPath string

	// Env holds extra KEY=VALUE pairs added to the child environment.
	Env []string
}

// BuildResult reports the outcome of one compile.
type BuildResult struct {
	Success  bool
	Duration time.Duration
	Output   string
	Err      error
}

// Runner compiles the project and keeps its binary running, restarting
// it on demand. It is what `strata serve` and `strata dev` drive.
type Runner struct {
	config RunnerConfig
	mu     sync.Mutex
	cmd    *exec.Cmd
}

// NewRunner creates a Runner for the given project.
func NewRunner(config RunnerConfig) *Runner {
	if config.BinaryPath == "" {
		config.BinaryPath = filepath.Join(os.TempDir(), "strata-app-"+filepath.Base(config.ProjectDir))
	}
	return &Runner{config: config}
}

// Build compiles the project's main package into the configured binary.
func (r *Runner) Build(ctx context.Context) BuildResult {
	start := time.Now()

	cmd := exec.CommandContext(ctx, "go", "build", "-o", r.config.BinaryPath, ".")
	cmd.Dir = r.config.ProjectDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start)

	output := stderr.String()
	if output == "" {
		output = stdout.String()
	}

	if err != nil {
		return BuildResult{
			Duration: duration,
			Output:   output,
			Err:      errors.New("E080").WithDetail(output).Wrap(err),
		}
	}
	return BuildResult{Success: true, Duration: duration, Output: output}
}

// Start launches the built binary, stopping any previous instance first.
// The child inherits stdout and stderr so application logs stay visible.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.killLocked()

	cmd := exec.CommandContext(ctx, r.config.BinaryPath)
	cmd.Dir = r.config.ProjectDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), r.config.Env...)

	if err := cmd.Start(); err != nil {
		return errors.New("E080").Wrap(err)
	}
	r.cmd = cmd
	return nil
}

// Restart rebuilds and relaunches the binary.
func (r *Runner) Restart(ctx context.Context) error {
	if res := r.Build(ctx); !res.Success {
		return res.Err
	}
	return r.Start(ctx)
}

// Stop kills the running binary, if any.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.killLocked()
}

// killLocked kills and reaps the current child. The reap happens off
// the lock path; exec.Cmd.Wait is called exactly once per child.
func (r *Runner) killLocked() {
	if r.cmd == nil {
		return
	}
	old := r.cmd
	r.cmd = nil
	if old.Process != nil {
		_ = old.Process.Kill()
	}
	go func() { _ = old.Wait() }()
}

// Wait blocks until the foreground child exits. Only `strata serve`
// uses this; it never mixes Wait with Restart.
func (r *Runner) Wait() error {
	r.mu.Lock()
	cmd := r.cmd
	r.mu.Unlock()
	if cmd == nil {
		return nil
	}
	if err := cmd.Wait(); err != nil {
		return errors.New("E080").WithDetail("application exited: " + err.Error()).Wrap(err)
	}
	return nil
}
