package agentenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_OrderValid(t *testing.T) {
	require.NoError(t, checkOrder(registry))
}

func TestRegistry_CoversEveryTool(t *testing.T) {
	seen := make(map[Tool]bool, len(registry))
	for _, d := range registry {
		assert.True(t, d.tool.Valid(), "unknown tool %q in registry", d.tool)
		assert.NotNil(t, d.detect, "detector for %q has no detect func", d.tool)
		assert.False(t, seen[d.tool], "tool %q registered twice", d.tool)
		seen[d.tool] = true
	}
	for _, tool := range Tools() {
		assert.True(t, seen[tool], "tool %q has no detector", tool)
	}
}

func TestCheckOrder(t *testing.T) {
	tests := map[string]struct {
		dets    []detector
		wantErr string
	}{
		"declaration honored": {
			dets: []detector{
				{tool: ToolCopilotCLI, runBefore: ToolVSCodeAgent},
				{tool: ToolVSCodeAgent},
			},
		},
		"declaration violated": {
			dets: []detector{
				{tool: ToolVSCodeAgent},
				{tool: ToolCopilotCLI, runBefore: ToolVSCodeAgent},
			},
			wantErr: `detector for "copilot-cli" must be registered before "vscode-agent"`,
		},
		"self-reference is a violation": {
			dets: []detector{
				{tool: ToolCopilotCLI, runBefore: ToolCopilotCLI},
			},
			wantErr: "must be registered before",
		},
		"absent target is vacuously satisfied": {
			dets: []detector{
				{tool: ToolCopilotCLI, runBefore: ToolVSCodeAgent},
				{tool: ToolCursor},
			},
		},
		"duplicate registration": {
			dets: []detector{
				{tool: ToolCursor},
				{tool: ToolCursor},
			},
			wantErr: `detector for "cursor" registered twice`,
		},
		"empty registry": {
			dets: nil,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := checkOrder(tc.dets)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestMustOrder_Panics(t *testing.T) {
	assert.Panics(t, func() {
		mustOrder([]detector{
			{tool: ToolVSCodeAgent},
			{tool: ToolCopilotCLI, runBefore: ToolVSCodeAgent},
		})
	})
}

func TestToolValid(t *testing.T) {
	for _, tool := range Tools() {
		assert.True(t, tool.Valid(), "%q", tool)
	}
	assert.False(t, Tool("").Valid())
	assert.False(t, Tool("emacs").Valid())
	assert.False(t, Tool("Claude-Code").Valid())
}
