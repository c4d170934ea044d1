package firebase

import (
	"fmt"
	"os"
	"path/filepath"

	"al.essio.dev/pkg/shellescape"

	"hcg-setup/internal/config"
	"hcg-setup/internal/logger"
	"hcg-setup/internal/report"
	"hcg-setup/internal/shell"
	"hcg-setup/internal/unity"
)

// Provision runs the Firebase side of the setup: project creation, app
// registration, config download, and the CI service-account grant. Every
// step is best-effort and independent; a failed step is recorded in the
// report and never stops the steps after it.
func Provision(cmd shell.Commander, cfg *config.Config, gameName string, ids unity.BundleIDs, rep *report.Report) {
	projectID := ProjectID(cfg.ProjectPrefix, gameName)

	createProject(cmd, rep, projectID, gameName)
	registerApps(cmd, rep, projectID, ids)
	downloadConfigs(cmd, cfg, rep, projectID, ids)
	grantDistributionAccess(cmd, cfg, rep, projectID)
}

func createProject(cmd shell.Commander, rep *report.Report, projectID, gameName string) {
	step := fmt.Sprintf("Create Firebase project %s", projectID)
	logger.Info("[INFO] Creating Firebase project: %s...\n", projectID)
	line := fmt.Sprintf("firebase projects:create %s --display-name %s",
		shellescape.Quote(projectID), shellescape.Quote(gameName))
	if err := cmd.Run(line); err != nil {
		logger.Error("[ERROR] Firebase project creation failed: %v\n", err)
		rep.Fail(step, "firebase projects:create failed")
		return
	}
	rep.Succeed(step)
}

// registerApps registers one app per platform. A platform with no
// identifier in the project settings is skipped, not attempted empty.
func registerApps(cmd shell.Commander, rep *report.Report, projectID string, ids unity.BundleIDs) {
	if ids.IOS == "" {
		rep.Skip("Register iOS app", "no iOS bundle ID found in project settings")
	} else {
		logger.Info("[INFO] Registering iOS app (%s)...\n", ids.IOS)
		line := fmt.Sprintf("firebase apps:create ios --bundle-id %s --project %s",
			shellescape.Quote(ids.IOS), shellescape.Quote(projectID))
		if err := cmd.Run(line); err != nil {
			logger.Error("[ERROR] iOS app registration failed: %v\n", err)
			rep.Fail("Register iOS app", "firebase apps:create failed")
		} else {
			rep.Succeed("Register iOS app")
		}
	}

	if ids.Android == "" {
		rep.Skip("Register Android app", "no Android package name found in project settings")
	} else {
		logger.Info("[INFO] Registering Android app (%s)...\n", ids.Android)
		line := fmt.Sprintf("firebase apps:create android --package-name %s --project %s",
			shellescape.Quote(ids.Android), shellescape.Quote(projectID))
		if err := cmd.Run(line); err != nil {
			logger.Error("[ERROR] Android app registration failed: %v\n", err)
			rep.Fail("Register Android app", "firebase apps:create failed")
		} else {
			rep.Succeed("Register Android app")
		}
	}
}

// downloadConfigs pulls the generated platform config files into the Unity
// project. A platform whose app was never registered has no config to
// download, so it is skipped rather than attempted against a missing app.
func downloadConfigs(cmd shell.Commander, cfg *config.Config, rep *report.Report, projectID string, ids unity.BundleIDs) {
	const iosStep = "Download GoogleService-Info.plist"
	const androidStep = "Download google-services.json"

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		logger.Error("[ERROR] Could not create %s: %v\n", cfg.OutputDir, err)
		rep.Fail(iosStep, "output directory could not be created")
		rep.Fail(androidStep, "output directory could not be created")
		return
	}

	if ids.IOS == "" {
		rep.Skip(iosStep, "no iOS app registered")
	} else {
		out := filepath.Join(cfg.OutputDir, "GoogleService-Info.plist")
		logger.Info("[INFO] Downloading GoogleService-Info.plist...\n")
		line := fmt.Sprintf("firebase apps:sdkconfig ios --project %s --out %s",
			shellescape.Quote(projectID), shellescape.Quote(out))
		if err := cmd.Run(line); err != nil {
			logger.Error("[ERROR] iOS config download failed: %v\n", err)
			rep.Fail(iosStep, "firebase apps:sdkconfig failed")
		} else {
			rep.Succeed(iosStep)
			rep.AddFile(out)
		}
	}

	if ids.Android == "" {
		rep.Skip(androidStep, "no Android app registered")
	} else {
		out := filepath.Join(cfg.OutputDir, "google-services.json")
		logger.Info("[INFO] Downloading google-services.json...\n")
		line := fmt.Sprintf("firebase apps:sdkconfig android --project %s --out %s",
			shellescape.Quote(projectID), shellescape.Quote(out))
		if err := cmd.Run(line); err != nil {
			logger.Error("[ERROR] Android config download failed: %v\n", err)
			rep.Fail(androidStep, "firebase apps:sdkconfig failed")
		} else {
			rep.Succeed(androidStep)
			rep.AddFile(out)
		}
	}
}

// grantDistributionAccess binds the CI distribution service account to the
// new project so App Distribution uploads work from CI. Needs gcloud; when
// it is missing the grant becomes a manual step in the summary.
func grantDistributionAccess(cmd shell.Commander, cfg *config.Config, rep *report.Report, projectID string) {
	const step = "Grant App Distribution access"

	if !cmd.CommandExists("gcloud") {
		logger.Warn("[WARN] gcloud not found. Add %s manually in Firebase Console with the App Distribution Admin role.\n", cfg.ServiceAccount)
		rep.Skip(step, "gcloud not found")
		rep.AddManual(fmt.Sprintf("Add %s in Firebase Console with the App Distribution Admin role.", cfg.ServiceAccount))
		return
	}

	logger.Info("[INFO] Adding CI service account to Firebase project...\n")
	line := fmt.Sprintf("gcloud projects add-iam-policy-binding %s --member=%s --role=%s --quiet",
		shellescape.Quote(projectID),
		shellescape.Quote("serviceAccount:"+cfg.ServiceAccount),
		shellescape.Quote(cfg.DistroRole))
	if err := cmd.Run(line); err != nil {
		logger.Error("[ERROR] IAM policy binding failed: %v\n", err)
		rep.Fail(step, "gcloud add-iam-policy-binding failed")
		return
	}
	rep.Succeed(step)
}
