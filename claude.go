package agentenv

// detectClaudeCode checks for Claude Code.
//
// CLAUDECODE is set to the literal "1" in every Claude Code session; any
// other value (including "true") does not qualify for the primary match.
// CLAUDE_CODE_ENTRYPOINT carries the entry mode ("cli", "sse", ...) and
// also leaks into subprocesses spawned outside a live session, so on its
// own it is only medium confidence.
func detectClaudeCode(env lookupEnv, _ lookupAncestors) *Result {
	if v, ok := env("CLAUDECODE"); ok && v == "1" {
		return &Result{
			Tool:       ToolClaudeCode,
			Confidence: ConfidenceHigh,
			Signals:    []string{envSignal("CLAUDECODE", v)},
		}
	}
	if v, ok := env("CLAUDE_CODE_ENTRYPOINT"); ok {
		return &Result{
			Tool:       ToolClaudeCode,
			Confidence: ConfidenceMedium,
			Signals:    []string{envSignal("CLAUDE_CODE_ENTRYPOINT", v)},
		}
	}
	return nil
}

// envSignal renders the evidentiary string for an environment match.
func envSignal(key, value string) string {
	return key + "=" + value
}
