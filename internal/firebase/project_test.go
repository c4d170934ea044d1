package firebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectID(t *testing.T) {
	tests := []struct {
		name string
		game string
		want string
	}{
		{"spaces become hyphens", "Space Game", "hcg-space-game"},
		{"uppercase is lowered", "ALLCAPS", "hcg-allcaps"},
		{"multiple words", "My Cool Game", "hcg-my-cool-game"},
		{"already clean", "runner", "hcg-runner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectID("hcg-", tt.game))
		})
	}
}
