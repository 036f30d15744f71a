package agentenv

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recognizedVars lists every environment variable any detector reads.
// Tests scrub them so results don't depend on what is driving the test
// run itself.
var recognizedVars = []string{
	"CLAUDECODE",
	"CLAUDE_CODE_ENTRYPOINT",
	"CURSOR_TRACE_ID",
	"TERM_PROGRAM",
	"CODEX_SANDBOX",
	"CODEX_THREAD_ID",
	"CODEX_SANDBOX_NETWORK_DISABLED",
	"GEMINI_CLI",
	"OR_APP_NAME",
	"OR_SITE_URL",
	"REPL_ID",
	"REPLIT_USER",
	"AGENT",
	"OPENCODE",
	"ZED_TERM",
	"TERMINAL_EMULATOR",
}

// scrubEnv unsets every recognized variable for the duration of the
// test. t.Setenv registers the restore; the empty value it sets would
// still count as "present", so each variable is unset on top.
func scrubEnv(t *testing.T) {
	t.Helper()
	for _, k := range recognizedVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDetect_CleanEnvironment(t *testing.T) {
	scrubEnv(t)
	assert.Nil(t, Detect(withAncestors(noAncestors)))
	assert.False(t, IsAgent(withAncestors(noAncestors)))
}

func TestDetect_ReadsProcessEnvironment(t *testing.T) {
	scrubEnv(t)
	t.Setenv("CLAUDECODE", "1")

	got := Detect(withAncestors(noAncestors))
	require.NotNil(t, got)
	assert.Equal(t, ToolClaudeCode, got.Tool)
	assert.Equal(t, ConfidenceHigh, got.Confidence)
	assert.Equal(t, []string{"CLAUDECODE=1"}, got.Signals)
}

func TestIsTool(t *testing.T) {
	scrubEnv(t)
	t.Setenv("CURSOR_TRACE_ID", "t-1")

	assert.True(t, IsTool(ToolCursor, withAncestors(noAncestors)))
	assert.False(t, IsTool(ToolClaudeCode, withAncestors(noAncestors)))
	assert.False(t, IsTool(Tool("emacs"), withAncestors(noAncestors)))
}

func TestDetect_CacheRoundTrip(t *testing.T) {
	scrubEnv(t)
	t.Setenv("CLAUDECODE", "1")
	c := NewCache()

	first := Detect(WithCache(c), withAncestors(noAncestors))
	require.NotNil(t, first)

	// The environment changes, but the cache still answers.
	os.Unsetenv("CLAUDECODE")
	t.Setenv("CURSOR_TRACE_ID", "t-1")
	assert.Equal(t, first, Detect(WithCache(c), withAncestors(noAncestors)))

	// Fresh bypasses the cached read and replaces the stored value.
	second := Detect(WithCache(c), Fresh(), withAncestors(noAncestors))
	require.NotNil(t, second)
	assert.Equal(t, ToolCursor, second.Tool)
	assert.Equal(t, second, Detect(WithCache(c), withAncestors(noAncestors)))

	// Clear forces re-evaluation on the next plain query.
	os.Unsetenv("CURSOR_TRACE_ID")
	c.Clear()
	assert.Nil(t, Detect(WithCache(c), withAncestors(noAncestors)))
}

func TestDetect_CachesAbsence(t *testing.T) {
	scrubEnv(t)
	c := NewCache()

	assert.Nil(t, Detect(WithCache(c), withAncestors(noAncestors)))

	// A later match is invisible until Fresh or Clear.
	t.Setenv("CLAUDECODE", "1")
	assert.Nil(t, Detect(WithCache(c), withAncestors(noAncestors)))
	require.NotNil(t, Detect(WithCache(c), Fresh(), withAncestors(noAncestors)))
}

func TestDetect_MaxAncestorDepth(t *testing.T) {
	scrubEnv(t)
	t.Setenv("TERM_PROGRAM", "vscode")

	var gotDepth int
	recorder := func(maxDepth int) []string {
		gotDepth = maxDepth
		return []string{"copilot"}
	}

	got := Detect(MaxAncestorDepth(3), withAncestors(recorder))
	require.NotNil(t, got)
	assert.Equal(t, ToolCopilotCLI, got.Tool)
	assert.Equal(t, 3, gotDepth, "caller cap must reach the ancestor walk")

	// Depth zero disables the walk entirely; the shared marker then
	// resolves to the fallback interpretation.
	got = Detect(MaxAncestorDepth(0), withAncestors(func(maxDepth int) []string {
		assert.LessOrEqual(t, maxDepth, 0)
		return nil
	}))
	require.NotNil(t, got)
	assert.Equal(t, ToolVSCodeAgent, got.Tool)
	assert.Equal(t, ConfidenceMedium, got.Confidence)
}

func TestResultJSON(t *testing.T) {
	scrubEnv(t)
	t.Setenv("CLAUDECODE", "1")

	got := Detect(withAncestors(noAncestors))
	require.NotNil(t, got)
	assert.Equal(t, "claude-code", string(got.Tool))
	assert.Equal(t, "high", string(got.Confidence))
}
