package main

import (
	"hcg-setup/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// hcg-setup is a one-shot CI/CD bootstrapper for Homecooked Games Unity projects that:
//   - Prepares an executable search path that prioritizes Homebrew and npm install
//     locations so freshly installed tools win over stale system copies
//   - Verifies local tooling: a Node.js version recent enough for the Firebase CLI
//     (upgrading via Homebrew when possible), the Firebase CLI itself (installing via
//     npm or Homebrew when missing), and an authenticated Firebase session
//   - Reads the iOS and Android bundle identifiers out of the Unity project settings
//   - Creates a Firebase project named after the game, registers an app per platform,
//     and downloads the generated config files into the Unity project
//   - Grants the CI distribution service account access to the new project via gcloud
//   - Writes the GitHub Actions workflow, fastlane stubs, and Gemfile that hook the
//     project into the shared devops-toolkit build pipeline
//
// Error handling strategy:
//   - Provisioning and file-generation steps are best-effort and independent; each
//     outcome is recorded and rendered once in a final summary together with the
//     remaining manual steps, so a partially failed run is still useful
//   - Unrecoverable prerequisites (no usable Node.js and no way to upgrade it, no
//     Firebase CLI and no install channel, unreadable project settings) abort the
//     run with a non-zero exit status
//
// Integration points:
//   - All external work goes through the firebase, gcloud, node, npm, brew, and
//     bundle CLIs; nothing talks to a cloud API directly
//   - The generated workflow delegates the actual Unity builds to the shared
//     devops-toolkit reusable workflow; secrets are supplied by GitHub Actions
func main() {
	cmd.Execute()
}
