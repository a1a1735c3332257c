package gitcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vertti/devready/pkg/check"
	"github.com/vertti/devready/pkg/testutil"
)

func editor(value string) *mockGitRunner {
	return &mockGitRunner{GlobalConfigFunc: configValues(map[string]string{"core.editor": value})}
}

func TestEditorCheck_Run(t *testing.T) {
	tests := []struct {
		name        string
		check       EditorCheck
		wantStatus  check.Status
		wantMessage string
	}{
		{"code --wait", EditorCheck{Runner: editor("code --wait")}, check.StatusOK, "VS Code is your default git editor"},
		{"case-insensitive", EditorCheck{Runner: editor("/usr/local/bin/Code -w")}, check.StatusOK, "VS Code is your default git editor"},
		{"vim fails", EditorCheck{Runner: editor("vim")}, check.StatusFail,
			"Ask a teacher to check your ~/.gitconfig editor setup. Right now, it's `vim`"},
		{"custom target", EditorCheck{Target: "nvim", Runner: editor("nvim")}, check.StatusOK, "nvim is your default git editor"},
		{"unset skipped", EditorCheck{Runner: &mockGitRunner{GlobalConfigFunc: configValues(map[string]string{})}}, check.StatusSkip, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run()
			assert.Equal(t, tt.wantStatus, result.Status, "details: %v", result.Details)
			assert.Equal(t, "git editor", result.Name)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, result.Message)
			}
		})
	}
}

func TestEditorCheck_SkipDetail(t *testing.T) {
	c := EditorCheck{Runner: &mockGitRunner{GlobalConfigFunc: configValues(map[string]string{})}}

	result := c.Run()

	assert.True(t, testutil.ContainsDetail(result.Details, "core.editor"), "details %v should mention core.editor", result.Details)
}
