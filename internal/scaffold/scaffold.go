// Package scaffold writes the fixed set of CI/CD boilerplate files into
// the project tree: the GitHub Actions workflow, the fastlane import stub,
// the match declaration, and the Ruby dependency manifest. Writes always
// overwrite; regenerating is the supported way to pick up template changes.
package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"hcg-setup/internal/logger"
	"hcg-setup/internal/report"
	"hcg-setup/internal/shell"
)

var workflowTmpl = template.Must(template.New("build.yml").
	Delims("[[", "]]").
	Option("missingkey=error").
	Parse(workflowTemplate))

type workflowData struct {
	GameName string
}

// Generate renders and writes the four boilerplate files relative to the
// current directory. Only the workflow is templated; the game name is the
// sole substitution. Each file is written independently so one failure
// does not block the rest.
func Generate(gameName string, rep *report.Report) {
	var buf bytes.Buffer
	if err := workflowTmpl.Execute(&buf, workflowData{GameName: gameName}); err != nil {
		logger.Error("[ERROR] Could not render build.yml: %v\n", err)
		rep.Fail("Write .github/workflows/build.yml", "template rendering failed")
	} else {
		writeFile(".github/workflows/build.yml", buf.Bytes(), rep)
	}

	writeFile("fastlane/Fastfile", []byte(fastfileText), rep)
	writeFile("fastlane/Matchfile", []byte(matchfileText), rep)
	writeFile("Gemfile", []byte(gemfileText), rep)
}

// GenerateLock produces Gemfile.lock through bundler. Run after Generate
// so the Gemfile it locks is the one just written.
func GenerateLock(cmd shell.Commander, rep *report.Report) {
	const step = "Generate Gemfile.lock"

	if !cmd.CommandExists("bundle") {
		logger.Warn("[WARN] bundler not found. Run 'bundle lock' manually to generate Gemfile.lock.\n")
		rep.Skip(step, "bundler not found")
		rep.AddManual("Run 'bundle lock' to generate Gemfile.lock.")
		return
	}

	logger.Info("[INFO] Generating Gemfile.lock...\n")
	if err := cmd.Run("bundle lock"); err != nil {
		logger.Error("[ERROR] bundle lock failed: %v\n", err)
		rep.Fail(step, "bundle lock failed")
		rep.AddManual("Run 'bundle lock' to generate Gemfile.lock.")
		return
	}
	rep.Succeed(step)
	rep.AddFile("Gemfile.lock")
}

// writeFile writes content to path, creating parent directories as needed
// and overwriting unconditionally.
func writeFile(path string, content []byte, rep *report.Report) {
	step := "Write " + path

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Error("[ERROR] Could not create %s: %v\n", dir, err)
			rep.Fail(step, "parent directory could not be created")
			return
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		logger.Error("[ERROR] Could not write %s: %v\n", path, err)
		rep.Fail(step, "write failed")
		return
	}

	logger.Info("[INFO] Created %s\n", path)
	rep.Succeed(step)
	rep.AddFile(path)
}
