package agentenv

import (
	"strings"

	"github.com/usetempo/agentenv/internal/ancestry"
)

// TERM_PROGRAM is the one signal two supported tools have in common:
// VS Code's terminal integration sets it to "vscode", and both GitHub
// Copilot's agent surfaces and plain VS Code forks (Cursor included)
// propagate it verbatim. The variable alone cannot say which tool is
// driving, so the two detectors below consult the ancestor chain — and
// only they do. Their relative order matters: the Copilot CLI detector
// keys on an ancestor name unique to it, while the VS Code detector
// accepts the marker with a generic fallback, so the CLI detector is
// registered first (enforced by the registry's runBefore check).
const (
	termProgramVar     = "TERM_PROGRAM"
	vscodeTermProgram  = "vscode"
	copilotProcessName = "copilot"
)

// vscodeAgentProcessNames are the editor process names that escalate the
// shared marker to high confidence for VS Code agent mode.
var vscodeAgentProcessNames = []string{"code", "code-insiders"}

// detectCopilotCLI checks for the GitHub Copilot CLI via its distinctive
// ancestor process name. The shared TERM_PROGRAM marker is appended as
// corroboration when it matches, but the ancestor alone carries the
// identification.
//
// The ancestor walk shells out to the OS and can cost tens of
// milliseconds, so it is skipped entirely unless TERM_PROGRAM is set at
// all; a Copilot CLI session always sets it, so the skip never changes
// the outcome, only the latency.
func detectCopilotCLI(env lookupEnv, ancestors lookupAncestors) *Result {
	term, ok := env(termProgramVar)
	if !ok {
		return nil
	}
	name, found := matchAncestor(ancestors(ancestry.MaxDepth), copilotProcessName)
	if !found {
		return nil
	}
	signals := []string{ancestorSignal(name)}
	if term == vscodeTermProgram {
		signals = append(signals, envSignal(termProgramVar, term))
	}
	return &Result{Tool: ToolCopilotCLI, Confidence: ConfidenceHigh, Signals: signals}
}

// detectVSCodeAgent checks for VS Code agent mode. The shared marker by
// itself is medium confidence; an ancestor matching one of the editor's
// own process names escalates to high. A degraded oracle (empty list)
// leaves the medium result standing.
func detectVSCodeAgent(env lookupEnv, ancestors lookupAncestors) *Result {
	term, ok := env(termProgramVar)
	if !ok || term != vscodeTermProgram {
		return nil
	}
	signals := []string{envSignal(termProgramVar, term)}
	if name, found := matchAncestor(ancestors(ancestry.MaxDepth), vscodeAgentProcessNames...); found {
		return &Result{
			Tool:       ToolVSCodeAgent,
			Confidence: ConfidenceHigh,
			Signals:    append(signals, ancestorSignal(name)),
		}
	}
	return &Result{Tool: ToolVSCodeAgent, Confidence: ConfidenceMedium, Signals: signals}
}

// matchAncestor reports the first entry that equals one of the names or
// ends in "/<name>". Oracle entries may be bare command names or absolute
// paths depending on platform.
func matchAncestor(entries []string, names ...string) (string, bool) {
	for _, entry := range entries {
		for _, name := range names {
			if entry == name || strings.HasSuffix(entry, "/"+name) {
				return name, true
			}
		}
	}
	return "", false
}

func ancestorSignal(name string) string {
	return "ancestor process: " + name
}
