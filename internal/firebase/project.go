// Package firebase drives the Firebase and Google Cloud CLIs: prerequisite
// checks, project creation, app registration, config download, and the IAM
// grant for the CI distribution account. Every call shells out; nothing
// here talks to an API directly.
package firebase

import "strings"

// ProjectID derives the Firebase project ID from the game name: lowercase,
// spaces to hyphens, prefixed with the studio namespace. Firebase restricts
// project IDs to lowercase letters, digits, and hyphens; names that contain
// anything else pass through unvalidated and fail at creation time.
func ProjectID(prefix, gameName string) string {
	return prefix + strings.ReplaceAll(strings.ToLower(gameName), " ", "-")
}
