package shell

import (
	"os"
	"strings"

	"github.com/samber/lo"
)

// BuildSearchPath rebuilds a PATH-style list so that the priority
// directories come first in their declared order no matter where they
// currently sit, the remaining original entries keep their relative order,
// and the extra directories are appended only when absent.
//
// The rebuild is idempotent: feeding the result back in returns the same
// path, so the caller may rebuild as often as it likes without the list
// drifting or growing.
func BuildSearchPath(current string, priority, extra []string) string {
	sep := string(os.PathListSeparator)

	var parts []string
	if current != "" {
		parts = strings.Split(current, sep)
	}

	// Priority dirs are pulled out of their current position and prepended.
	remaining := lo.Filter(parts, func(p string, _ int) bool {
		return !lo.Contains(priority, p)
	})

	rebuilt := make([]string, 0, len(priority)+len(remaining)+len(extra))
	rebuilt = append(rebuilt, priority...)
	rebuilt = append(rebuilt, remaining...)

	for _, p := range extra {
		if !lo.Contains(rebuilt, p) {
			rebuilt = append(rebuilt, p)
		}
	}

	return strings.Join(rebuilt, sep)
}
