package shell

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"hcg-setup/internal/logger"
)

// Commander is the surface the orchestration packages use to reach external
// tools. The concrete Runner implements it; tests substitute fakes.
type Commander interface {
	// Run executes a command line for its side effects.
	Run(cmdline string) error
	// Output executes a command line and returns its trimmed stdout.
	Output(cmdline string) (string, error)
	// CommandExists reports whether a tool resolves on the search path.
	CommandExists(name string) bool
}

// Runner executes command lines through the platform shell. The search path
// is an explicit value: it is handed to every child process and used for
// tool resolution, and the parent process environment is never mutated.
//
// Every invocation blocks until the child exits. There are no timeouts and
// no retries; each command is attempted exactly once.
type Runner struct {
	SearchPath string
	DryRun     bool
}

// NewRunner returns a Runner bound to the given search path. With dryRun
// set, commands are printed instead of executed and report success.
func NewRunner(searchPath string, dryRun bool) *Runner {
	return &Runner{SearchPath: searchPath, DryRun: dryRun}
}

// Run executes cmdline for its side effects. Stdin, stdout, and stderr stay
// attached to the parent so interactive tools (firebase login) keep working.
// A non-zero exit comes back as an error; the call site decides whether that
// is fatal or merely logged.
func (r *Runner) Run(cmdline string) error {
	if r.DryRun {
		logger.Info("[INFO] (dry-run) %s\n", cmdline)
		return nil
	}
	logger.Debug("[DEBUG] Running command: %s\n", cmdline)

	cmd := exec.Command("sh", "-c", cmdline)
	cmd.Env = r.childEnv()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", cmdline, err)
	}
	return nil
}

// Output executes cmdline and returns its captured standard output, trimmed
// of surrounding whitespace. A non-zero exit returns an empty string and an
// error; callers that only care about the text treat that as "no output".
func (r *Runner) Output(cmdline string) (string, error) {
	if r.DryRun {
		logger.Info("[INFO] (dry-run) %s\n", cmdline)
		return "", nil
	}
	logger.Debug("[DEBUG] Capturing command: %s\n", cmdline)

	cmd := exec.Command("sh", "-c", cmdline)
	cmd.Env = r.childEnv()

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("command %q failed: %w", cmdline, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CommandExists reports whether name resolves to an executable regular file
// in one of the search path directories. No side effects.
func (r *Runner) CommandExists(name string) bool {
	for _, dir := range strings.Split(r.SearchPath, string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode()&0111 != 0 {
			return true
		}
	}
	return false
}

// childEnv is the parent environment with PATH replaced by the runner's
// search path.
func (r *Runner) childEnv() []string {
	env := make([]string, 0, len(os.Environ())+1)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "PATH=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "PATH="+r.SearchPath)
}
