package unity

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBundleIDs(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		wantIOS     string
		wantAndroid string
	}{
		{
			name: "both platforms present",
			doc: "PlayerSettings:\n" +
				"  productName: Space Game\n" +
				"  applicationIdentifier:\n" +
				"    Android: com.hcg.spacegame\n" +
				"    Standalone: com.hcg.spacegame\n" +
				"    iPhone: com.hcg.spacegame\n" +
				"  bundleVersion: 0.1\n",
			wantIOS:     "com.hcg.spacegame",
			wantAndroid: "com.hcg.spacegame",
		},
		{
			name: "platform entries far from the marker",
			doc: "applicationIdentifier:\n" +
				strings.Repeat("  someOtherKey: someValue\n", 40) +
				"  iPhone: com.x.one\n" +
				"  Android: com.x.two\n",
			wantIOS:     "com.x.one",
			wantAndroid: "com.x.two",
		},
		{
			name: "marker missing entirely",
			doc: "PlayerSettings:\n" +
				"  iPhone: com.x.app\n" +
				"  Android: com.x.app\n",
			wantIOS:     "",
			wantAndroid: "",
		},
		{
			// The scan past the marker is unbounded, so a platform key in a
			// later section still matches.
			name: "stray platform key after the marker still matches",
			doc: "applicationIdentifier:\n" +
				"  Standalone: com.x.desktop\n" +
				"otherSection:\n" +
				"  iPhone: com.x.stray\n",
			wantIOS:     "com.x.stray",
			wantAndroid: "",
		},
		{
			name:        "android key missing",
			doc:         "applicationIdentifier:\n  iPhone: com.x.app\n",
			wantIOS:     "com.x.app",
			wantAndroid: "",
		},
		{
			name:        "ios key missing",
			doc:         "applicationIdentifier:\n  Android: com.x.app\n",
			wantIOS:     "",
			wantAndroid: "com.x.app",
		},
		{
			name:        "empty document",
			doc:         "",
			wantIOS:     "",
			wantAndroid: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := ExtractBundleIDs(tt.doc)
			assert.Equal(t, tt.wantIOS, ids.IOS)
			assert.Equal(t, tt.wantAndroid, ids.Android)
		})
	}
}

func TestReadProjectSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ProjectSettings.asset")
	require.NoError(t, os.WriteFile(path, []byte("applicationIdentifier:\n  iPhone: com.x.app\n"), 0o644))

	doc, err := ReadProjectSettings(path)
	require.NoError(t, err)
	assert.Contains(t, doc, "applicationIdentifier")
}

func TestReadProjectSettingsMissingFile(t *testing.T) {
	_, err := ReadProjectSettings(filepath.Join(t.TempDir(), "ProjectSettings.asset"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read project settings")
}
