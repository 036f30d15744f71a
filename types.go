package agentenv

// Confidence grades how specific a detection signal is.
type Confidence string

const (
	// ConfidenceHigh means the signal is specific enough that no other
	// supported tool legitimately produces it.
	ConfidenceHigh Confidence = "high"

	// ConfidenceMedium means the signal is suggestive but shared, stale,
	// or indirect (a substring match, or a variable also used for
	// unrelated purposes).
	ConfidenceMedium Confidence = "medium"
)

// Tool identifies an autonomous coding tool.
type Tool string

const (
	ToolClaudeCode  Tool = "claude-code"
	ToolCopilotCLI  Tool = "copilot-cli"
	ToolVSCodeAgent Tool = "vscode-agent"
	ToolCursor      Tool = "cursor"
	ToolCodexCLI    Tool = "codex-cli"
	ToolGeminiCLI   Tool = "gemini-cli"
	ToolAider       Tool = "aider"
	ToolReplit      Tool = "replit"
	ToolAmp         Tool = "amp"
	ToolOpenCode    Tool = "opencode"
	ToolZed         Tool = "zed"
	ToolWarp        Tool = "warp"
	ToolJunie       Tool = "junie"
)

// Tools returns the supported tool identifiers in registry order.
func Tools() []Tool {
	tools := make([]Tool, 0, len(registry))
	for _, d := range registry {
		tools = append(tools, d.tool)
	}
	return tools
}

// Valid reports whether t is one of the supported tool identifiers.
func (t Tool) Valid() bool {
	for _, d := range registry {
		if d.tool == t {
			return true
		}
	}
	return false
}

// Result is the outcome of one detection. Signals holds the raw
// evidentiary strings that justified the call, e.g. "CLAUDECODE=1" or
// "ancestor process: copilot". A Result is constructed fresh on every
// resolution and never mutated afterwards; Signals is non-empty whenever
// Tool is set.
type Result struct {
	Tool       Tool       `json:"tool"`
	Confidence Confidence `json:"confidence"`
	Signals    []string   `json:"signals"`
}
