// Package unity reads identifiers out of a Unity project's serialized
// settings. ProjectSettings.asset is Unity-flavored YAML with custom tags
// that trip up strict parsers, so the bundle identifiers are pulled out
// with targeted patterns instead of a document parse.
package unity

import (
	"fmt"
	"os"
	"regexp"
)

// BundleIDs holds the per-platform application identifiers found in the
// project settings. Either field may be empty when the platform was never
// configured in the Unity editor.
type BundleIDs struct {
	IOS     string
	Android string
}

// The identifiers live in a mapping under the applicationIdentifier key:
//
//	applicationIdentifier:
//	  Android: com.studio.game
//	  iPhone: com.studio.game
//
// The patterns anchor on that key and then scan forward to the platform
// entry. Platform keys before the first marker never match; the scan does
// not stop at the end of the mapping, so a stray platform key later in the
// document can still be picked up. Accepted limitation of the pattern
// approach.
var (
	iosIDPattern     = regexp.MustCompile(`(?s)applicationIdentifier:.*?iPhone:\s*([\w.]+)`)
	androidIDPattern = regexp.MustCompile(`(?s)applicationIdentifier:.*?Android:\s*([\w.]+)`)
)

// ReadProjectSettings returns the raw contents of the settings document at
// path. A missing or unreadable file is an error; the tool only makes sense
// when run from a Unity project root.
func ReadProjectSettings(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read project settings at %s: %w", path, err)
	}
	return string(data), nil
}

// ExtractBundleIDs scans the settings document for the iOS and Android
// application identifiers. Absent identifiers come back as empty strings,
// never as an error; the caller decides what a missing platform means.
func ExtractBundleIDs(doc string) BundleIDs {
	var ids BundleIDs
	if m := iosIDPattern.FindStringSubmatch(doc); m != nil {
		ids.IOS = m[1]
	}
	if m := androidIDPattern.FindStringSubmatch(doc); m != nil {
		ids.Android = m[1]
	}
	return ids
}
