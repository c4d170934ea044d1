package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsKeepOrder(t *testing.T) {
	rep := New()
	rep.Succeed("create project")
	rep.Fail("download config", "network unreachable")
	rep.Skip("grant access", "gcloud not found")

	steps := rep.Steps()
	require.Len(t, steps, 3)

	assert.Equal(t, Step{Name: "create project", Status: StatusOK}, steps[0])
	assert.Equal(t, Step{Name: "download config", Status: StatusFailed, Detail: "network unreachable"}, steps[1])
	assert.Equal(t, Step{Name: "grant access", Status: StatusSkipped, Detail: "gcloud not found"}, steps[2])
}

func TestRenderFullRun(t *testing.T) {
	rep := New()
	rep.Succeed("Create Firebase project hcg-my-game")
	rep.Skip("Register Android app", "no Android package name found in project settings")
	rep.Fail("Download google-services.json", "firebase apps:sdkconfig failed")
	rep.AddFile(".github/workflows/build.yml")
	rep.AddFile("Gemfile")
	rep.AddManual("Run 'bundle lock' to generate Gemfile.lock.")

	out := rep.Render("ci-distribution@hcgamesfirebase.iam.gserviceaccount.com", "roles/firebaseappdistro.admin")

	assert.Contains(t, out, "Done! Files created:")
	assert.Contains(t, out, "  .github/workflows/build.yml\n")
	assert.Contains(t, out, "  Gemfile\n")
	assert.NotContains(t, out, "(none)")

	assert.Contains(t, out, "[ok] Create Firebase project hcg-my-game")
	assert.Contains(t, out, "[skipped] Register Android app (no Android package name found in project settings)")
	assert.Contains(t, out, "[failed] Download google-services.json (firebase apps:sdkconfig failed)")

	assert.Contains(t, out, "UNITY_LICENSE")
	assert.Contains(t, out, "MATCH_PASSWORD, MATCH_KEYCHAIN_PASSWORD, MATCH_GIT_BASIC_AUTHORIZATION")
	assert.Contains(t, out, "FIREBASE_SERVICE_ACCOUNT_JSON")

	assert.Contains(t, out, "ci-distribution@hcgamesfirebase.iam.gserviceaccount.com")
	assert.Contains(t, out, "roles/firebaseappdistro.admin")

	// Accumulated manual entries continue the numbering after the three
	// fixed items.
	assert.Contains(t, out, "4. Run 'bundle lock' to generate Gemfile.lock.")
}

func TestRenderEmptyRun(t *testing.T) {
	out := New().Render("sa@example.iam.gserviceaccount.com", "roles/firebaseappdistro.admin")

	assert.Contains(t, out, "(none)")
	// The service-account reminder is a safety net and appears even when
	// nothing was attempted.
	assert.Contains(t, out, "sa@example.iam.gserviceaccount.com")
	assert.Contains(t, out, "roles/firebaseappdistro.admin")
	assert.Contains(t, out, "Remaining manual steps:")
}
