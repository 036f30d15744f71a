package agentenv

import "strings"

// The detectors in this file need only the environment. Each follows one
// of two shapes: an exact-value match on a variable whose value is fixed,
// or a presence check on a variable whose value is opaque per-session
// data (a trace id, a sandbox name). Exact matches are strict string
// equality — "true" or "2" where "1" is expected is not a match.

// detectCursor checks for the Cursor agent. CURSOR_TRACE_ID carries an
// opaque per-session trace id, so presence is the signal.
func detectCursor(env lookupEnv, _ lookupAncestors) *Result {
	if v, ok := env("CURSOR_TRACE_ID"); ok {
		return high(ToolCursor, envSignal("CURSOR_TRACE_ID", v))
	}
	return nil
}

// detectCodexCLI checks for the OpenAI Codex CLI. CODEX_SANDBOX names the
// active sandbox backend, so presence is the signal.
func detectCodexCLI(env lookupEnv, _ lookupAncestors) *Result {
	if v, ok := env("CODEX_SANDBOX"); ok {
		return high(ToolCodexCLI, envSignal("CODEX_SANDBOX", v))
	}
	// CODEX_THREAD_ID is announced but not yet verified against a
	// released build; this branch is self-contained so it can be removed
	// without touching the sandbox path if it never ships.
	if v, ok := env("CODEX_THREAD_ID"); ok {
		return high(ToolCodexCLI, envSignal("CODEX_THREAD_ID", v))
	}
	if v, ok := env("CODEX_SANDBOX_NETWORK_DISABLED"); ok && v == "1" {
		return medium(ToolCodexCLI, envSignal("CODEX_SANDBOX_NETWORK_DISABLED", v))
	}
	return nil
}

func detectGeminiCLI(env lookupEnv, _ lookupAncestors) *Result {
	if v, ok := env("GEMINI_CLI"); ok && v == "1" {
		return high(ToolGeminiCLI, envSignal("GEMINI_CLI", v))
	}
	return nil
}

// detectAider checks for Aider via the OpenRouter attribution pair it
// exports. OR_APP_NAME alone identifies it; OR_SITE_URL is appended as a
// second evidentiary string when it carries Aider's exact site, without
// changing the confidence.
func detectAider(env lookupEnv, _ lookupAncestors) *Result {
	app, ok := env("OR_APP_NAME")
	if !ok || app != "Aider" {
		return nil
	}
	signals := []string{envSignal("OR_APP_NAME", app)}
	if site, ok := env("OR_SITE_URL"); ok && site == "https://aider.chat" {
		signals = append(signals, envSignal("OR_SITE_URL", site))
	}
	return &Result{Tool: ToolAider, Confidence: ConfidenceHigh, Signals: signals}
}

// detectReplit checks for the Replit agent. REPL_ID is an opaque repl
// identifier; REPLIT_USER also appears in non-agent Replit shells, so on
// its own it is only medium.
func detectReplit(env lookupEnv, _ lookupAncestors) *Result {
	if v, ok := env("REPL_ID"); ok {
		return high(ToolReplit, envSignal("REPL_ID", v))
	}
	if v, ok := env("REPLIT_USER"); ok {
		return medium(ToolReplit, envSignal("REPLIT_USER", v))
	}
	return nil
}

func detectAmp(env lookupEnv, _ lookupAncestors) *Result {
	if v, ok := env("AGENT"); ok && v == "amp" {
		return high(ToolAmp, envSignal("AGENT", v))
	}
	return nil
}

func detectOpenCode(env lookupEnv, _ lookupAncestors) *Result {
	if v, ok := env("OPENCODE"); ok {
		return high(ToolOpenCode, envSignal("OPENCODE", v))
	}
	return nil
}

func detectZed(env lookupEnv, _ lookupAncestors) *Result {
	if v, ok := env("ZED_TERM"); ok && v == "true" {
		return high(ToolZed, envSignal("ZED_TERM", v))
	}
	return nil
}

// detectWarp checks for Warp's agent mode. TERM_PROGRAM=WarpTerminal is
// set for every Warp pane, agent-driven or not, so it never exceeds
// medium.
func detectWarp(env lookupEnv, _ lookupAncestors) *Result {
	if v, ok := env(termProgramVar); ok && v == "WarpTerminal" {
		return medium(ToolWarp, envSignal(termProgramVar, v))
	}
	return nil
}

// detectJunie checks for JetBrains Junie. The JediTerm terminal reports
// itself through TERMINAL_EMULATOR; a substring match keeps IDE version
// suffixes working but every JetBrains IDE terminal sets it, so medium.
func detectJunie(env lookupEnv, _ lookupAncestors) *Result {
	if v, ok := env("TERMINAL_EMULATOR"); ok && strings.Contains(v, "JetBrains") {
		return medium(ToolJunie, `TERMINAL_EMULATOR contains "JetBrains"`)
	}
	return nil
}

func high(tool Tool, signals ...string) *Result {
	return &Result{Tool: tool, Confidence: ConfidenceHigh, Signals: signals}
}

func medium(tool Tool, signals ...string) *Result {
	return &Result{Tool: tool, Confidence: ConfidenceMedium, Signals: signals}
}
