package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hcg-setup/internal/config"
	"hcg-setup/internal/firebase"
	"hcg-setup/internal/logger"
	"hcg-setup/internal/report"
	"hcg-setup/internal/scaffold"
	"hcg-setup/internal/shell"
	"hcg-setup/internal/unity"
)

// runSetup is the whole pipeline, in fixed order: prerequisites, bundle ID
// extraction, Firebase provisioning, boilerplate generation, lockfile
// generation, summary. The summary renders once at the end from the
// accumulated report.
func runSetup(cmd *cobra.Command, args []string) error {
	// Argument errors already showed usage; from here on a failure should
	// print only its diagnostic.
	cmd.SilenceUsage = true

	if err := config.Init(cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.Debug)

	gameName := args[0]
	logger.Info("[INFO] Setting up CI/CD for %s...\n\n", gameName)

	searchPath := shell.BuildSearchPath(os.Getenv("PATH"), cfg.PriorityPaths, cfg.ExtraPaths)
	runner := shell.NewRunner(searchPath, cfg.DryRun)
	rep := report.New()

	if err := firebase.EnsureTools(runner, cfg, rep); err != nil {
		return err
	}

	doc, err := unity.ReadProjectSettings(cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("%w (run hcg-setup from the Unity project root)", err)
	}
	ids := unity.ExtractBundleIDs(doc)
	if ids.IOS == "" || ids.Android == "" {
		logger.Warn("[WARN] Could not parse all bundle IDs from %s\n", cfg.SettingsPath)
	}
	logger.Info("[INFO] iOS bundle ID: %s\n", orNotFound(ids.IOS))
	logger.Info("[INFO] Android bundle ID: %s\n", orNotFound(ids.Android))

	firebase.Provision(runner, cfg, gameName, ids, rep)

	logger.Info("\n[INFO] Generating CI/CD files...\n")
	scaffold.Generate(gameName, rep)
	scaffold.GenerateLock(runner, rep)

	fmt.Print(rep.Render(cfg.ServiceAccount, cfg.DistroRole))
	return nil
}

// orNotFound makes a missing identifier explicit in the console output.
func orNotFound(id string) string {
	if id == "" {
		return "NOT FOUND"
	}
	return id
}
