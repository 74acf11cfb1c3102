// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"tenper-cli/internal/project"
	"tenper-cli/internal/runtime"
	"tenper-cli/internal/testutil"

	"github.com/charmbracelet/log"
	"github.com/testcontainers/testcontainers-go"
	tcexec "github.com/testcontainers/testcontainers-go/exec"
)

// containerRunner executes commands inside a running test container.
type containerRunner struct {
	c testcontainers.Container
}

func (r *containerRunner) Run(ctx context.Context, cmd runtime.Command) *runtime.Result {
	code, reader, err := r.c.Exec(ctx, cmd.Argv(), tcexec.Multiplexed())
	if err != nil {
		return &runtime.Result{Command: cmd, ExitCode: 1, Error: err}
	}
	out, _ := io.ReadAll(reader)
	return &runtime.Result{Command: cmd, ExitCode: runtime.ExitCode(code), Output: string(out)}
}

func (r *containerRunner) RunInteractive(ctx context.Context, cmd runtime.Command) *runtime.Result {
	return r.Run(ctx, cmd)
}

// checkTestcontainersAvailable reports whether a container provider can be
// reached. testcontainers panics on some hosts without an engine.
func checkTestcontainersAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return false
	}
	defer provider.Close()
	return true
}

func TestEnsure_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if !checkTestcontainersAvailable() {
		t.Skip("skipping container integration test: testcontainers provider not available")
	}

	sem := testutil.ContainerSemaphore()
	sem <- struct{}{}
	defer func() { <-sem }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "python:3.12-slim",
			Cmd:   []string{"sleep", "infinity"},
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, c)
	if err != nil {
		t.Fatalf("failed to start container: %v", err)
	}

	runner := &containerRunner{c: c}
	if res := runner.Run(ctx, runtime.NewCommand("pip", "install", "--quiet", "virtualenv")); !res.Success() {
		t.Skipf("cannot install virtualenv in container (offline?): %s", res.Output)
	}

	p := NewProvisioner(&Config{
		VirtualenvsDir: "/opt/tenper-it/venvs",
		Binary:         "virtualenv",
		DefaultPython:  "python3",
	}, runner, log.New(io.Discard))
	proj := &project.Project{SessionName: "web", Virtualenv: &project.Virtualenv{}}

	if err := p.Ensure(ctx, proj, false); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	res := runner.Run(ctx, runtime.NewCommand("test", "-f", p.ActivateScript(proj)))
	if !res.Success() {
		t.Errorf("activate script %s missing in container", p.ActivateScript(proj))
	}

	res = runner.Run(ctx, runtime.NewCommand("sh", "-c", ". "+runtime.QuoteArg(p.ActivateScript(proj))+" && echo $VIRTUAL_ENV"))
	if got := strings.TrimSpace(res.Output); got != p.Path(proj) {
		t.Errorf("VIRTUAL_ENV = %q, want %q", got, p.Path(proj))
	}
}
