package firebase

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"

	"hcg-setup/internal/config"
	"hcg-setup/internal/logger"
	"hcg-setup/internal/report"
	"hcg-setup/internal/shell"
)

// EnsureTools verifies the local toolchain before provisioning starts: a
// recent enough Node.js, an installed Firebase CLI, and an authenticated
// session. A returned error is fatal (the run cannot proceed); everything
// recoverable is logged, recorded in the report, and tolerated.
func EnsureTools(cmd shell.Commander, cfg *config.Config, rep *report.Report) error {
	if err := checkNodeVersion(cmd, cfg, rep); err != nil {
		return err
	}
	if err := ensureFirebaseCLI(cmd, rep); err != nil {
		return err
	}
	checkLogin(cmd)
	return nil
}

// checkNodeVersion enforces the Firebase CLI's Node.js floor. Node being
// absent, silent, or reporting an unparseable version is not our problem
// to diagnose; those cases pass through and surface later if the CLI
// install actually needs the runtime. Only a confirmed too-old version
// triggers action: upgrade through Homebrew when available, otherwise
// refuse to proceed.
func checkNodeVersion(cmd shell.Commander, cfg *config.Config, rep *report.Report) error {
	if !cmd.CommandExists("node") {
		return nil
	}
	raw, err := cmd.Output("node --version")
	if err != nil || raw == "" {
		return nil
	}
	v, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		logger.Debug("[DEBUG] Could not parse node version %q: %v\n", raw, err)
		return nil
	}
	if v.Major() >= uint64(cfg.MinNodeMajor) {
		return nil
	}

	logger.Warn("[WARN] Node.js %s is too old for the Firebase CLI (need >= v%d).\n", raw, cfg.MinNodeMajor)
	if !cmd.CommandExists("brew") {
		return fmt.Errorf("node.js %s is too old for the Firebase CLI (need >= v%d); upgrade it and re-run", raw, cfg.MinNodeMajor)
	}

	logger.Info("[INFO] Upgrading Node.js via Homebrew...\n")
	if err := cmd.Run("brew upgrade node || brew install node"); err != nil {
		logger.Warn("[WARN] Node.js upgrade failed: %v\n", err)
		rep.Fail("Upgrade Node.js", "brew upgrade failed")
		rep.AddManual(fmt.Sprintf("Upgrade Node.js to >= v%d for the Firebase CLI.", cfg.MinNodeMajor))
		return nil
	}
	rep.Succeed("Upgrade Node.js")
	return nil
}

// ensureFirebaseCLI installs firebase-tools when it is missing, preferring
// npm and falling back to Homebrew on macOS. A failed install is advisory
// (later steps will fail and be recorded individually); having no install
// channel at all is fatal.
func ensureFirebaseCLI(cmd shell.Commander, rep *report.Report) error {
	if cmd.CommandExists("firebase") {
		return nil
	}

	switch {
	case cmd.CommandExists("npm"):
		logger.Info("[INFO] Installing Firebase CLI via npm...\n")
		if err := cmd.Run("npm install -g firebase-tools"); err != nil {
			logger.Error("[ERROR] Firebase CLI install failed: %v\n", err)
			rep.Fail("Install Firebase CLI", "npm install failed")
			rep.AddManual("Install the Firebase CLI: npm install -g firebase-tools (https://firebase.google.com/docs/cli).")
			return nil
		}
		rep.Succeed("Install Firebase CLI")
	case runtime.GOOS == "darwin" && cmd.CommandExists("brew"):
		logger.Info("[INFO] Installing Firebase CLI via Homebrew...\n")
		if err := cmd.Run("brew install firebase-cli"); err != nil {
			logger.Error("[ERROR] Firebase CLI install failed: %v\n", err)
			rep.Fail("Install Firebase CLI", "brew install failed")
			rep.AddManual("Install the Firebase CLI: npm install -g firebase-tools (https://firebase.google.com/docs/cli).")
			return nil
		}
		rep.Succeed("Install Firebase CLI")
	default:
		return fmt.Errorf("firebase CLI is not installed and no install channel is available; install it manually: npm install -g firebase-tools (https://firebase.google.com/docs/cli)")
	}
	return nil
}

// checkLogin probes the CLI session by listing projects. On failure it
// starts an interactive login, which blocks until the user finishes in the
// browser. Login trouble never aborts the run; an unauthenticated session
// just means the provisioning steps fail and land in the report.
func checkLogin(cmd shell.Commander) {
	if !cmd.CommandExists("firebase") {
		return
	}
	if _, err := cmd.Output("firebase projects:list"); err != nil {
		logger.Info("[INFO] You need to log in to Firebase.\n")
		if err := cmd.Run("firebase login"); err != nil {
			logger.Warn("[WARN] Firebase login failed: %v\n", err)
		}
	}
}
