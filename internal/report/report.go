// Package report accumulates the outcome of every setup step so the final
// summary can be rendered once, at the end of the run, instead of being
// scattered across interleaved prints. Failures never abort the run; they
// land here and surface as manual-fixup instructions.
package report

import (
	"fmt"
	"strings"
)

// Status classifies the outcome of a single setup step.
type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Step records the outcome of one best-effort step. Detail carries the
// reason for a failure or skip and stays empty on success.
type Step struct {
	Name   string
	Status Status
	Detail string
}

// Report collects step outcomes, created files, and manual follow-up
// instructions over the course of a run.
type Report struct {
	steps  []Step
	files  []string
	manual []string
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// Succeed records name as completed.
func (r *Report) Succeed(name string) {
	r.steps = append(r.steps, Step{Name: name, Status: StatusOK})
}

// Fail records name as attempted and failed, with detail saying why.
func (r *Report) Fail(name, detail string) {
	r.steps = append(r.steps, Step{Name: name, Status: StatusFailed, Detail: detail})
}

// Skip records name as never attempted, with detail saying why.
func (r *Report) Skip(name, detail string) {
	r.steps = append(r.steps, Step{Name: name, Status: StatusSkipped, Detail: detail})
}

// AddFile records a file that was written or downloaded during the run.
func (r *Report) AddFile(path string) {
	r.files = append(r.files, path)
}

// AddManual queues an instruction for the remaining-manual-steps section.
func (r *Report) AddManual(instruction string) {
	r.manual = append(r.manual, instruction)
}

// Steps returns the recorded outcomes in the order they happened.
func (r *Report) Steps() []Step {
	return r.steps
}

// Render produces the end-of-run summary: files created, per-step results,
// and the remaining manual steps. The GitHub secrets checklist and the
// service-account reminder are always included; the run cannot verify
// either, so they stay in the list even when everything succeeded.
func (r *Report) Render(serviceAccount, distroRole string) string {
	var b strings.Builder

	b.WriteString("\nDone! Files created:\n")
	if len(r.files) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, f := range r.files {
		fmt.Fprintf(&b, "  %s\n", f)
	}

	b.WriteString("\nStep results:\n")
	for _, s := range r.steps {
		if s.Detail != "" {
			fmt.Fprintf(&b, "  [%s] %s (%s)\n", s.Status, s.Name, s.Detail)
		} else {
			fmt.Fprintf(&b, "  [%s] %s\n", s.Status, s.Name)
		}
	}

	b.WriteString("\nRemaining manual steps:\n")
	b.WriteString("  1. Ensure these GitHub secrets are set (org-level or repo-level):\n")
	b.WriteString("     - UNITY_LICENSE\n")
	b.WriteString("     - MATCH_PASSWORD, MATCH_KEYCHAIN_PASSWORD, MATCH_GIT_BASIC_AUTHORIZATION\n")
	b.WriteString("     - APP_STORE_CONNECT_API_KEY_KEY_ID, APP_STORE_CONNECT_API_KEY_ISSUER_ID, APP_STORE_CONNECT_API_KEY_KEY\n")
	b.WriteString("     - ANDROID_KEYSTORE_NAME, ANDROID_KEYSTORE_BASE64, ANDROID_KEYSTORE_PASS, ANDROID_KEYALIAS_NAME, ANDROID_KEYALIAS_PASS\n")
	b.WriteString("     - FIREBASE_SERVICE_ACCOUNT_JSON\n")
	b.WriteString("  2. If Firebase config download failed, download manually from Firebase Console.\n")
	fmt.Fprintf(&b, "  3. If the service account was not added, add %s\n", serviceAccount)
	fmt.Fprintf(&b, "     with the %s role in Google Cloud Console IAM.\n", distroRole)
	for i, m := range r.manual {
		fmt.Fprintf(&b, "  %d. %s\n", i+4, m)
	}

	return b.String()
}
