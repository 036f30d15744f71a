package agentenv

import "fmt"

// lookupEnv reads one environment variable, distinguishing "unset" from
// "set to empty". Defaults to os.LookupEnv; tests substitute a map.
type lookupEnv func(key string) (string, bool)

// lookupAncestors returns the command names of up to maxDepth ancestor
// processes, nearest first, or nil when ancestry is unavailable. Entries
// may be bare names or absolute paths.
type lookupAncestors func(maxDepth int) []string

// detector inspects the environment (and, for the two VS Code
// terminal-marker tools, the ancestor chain) for evidence of one tool.
// detect returns nil when there is no evidence; it never fails.
type detector struct {
	tool Tool

	// runBefore names a tool whose detector must appear later in the
	// registry than this one. Used where one detector's signal is a
	// superset of another's and evaluation order decides attribution.
	runBefore Tool

	detect func(env lookupEnv, ancestors lookupAncestors) *Result
}

// registry is the process-wide detector order. Order is load-bearing:
// resolution returns the first match per confidence tier, so a detector
// whose signal shadows another's must come first. Verified at init.
var registry = mustOrder([]detector{
	{tool: ToolClaudeCode, detect: detectClaudeCode},
	{tool: ToolCursor, detect: detectCursor},
	{tool: ToolCopilotCLI, runBefore: ToolVSCodeAgent, detect: detectCopilotCLI},
	{tool: ToolVSCodeAgent, detect: detectVSCodeAgent},
	{tool: ToolCodexCLI, detect: detectCodexCLI},
	{tool: ToolGeminiCLI, detect: detectGeminiCLI},
	{tool: ToolAider, detect: detectAider},
	{tool: ToolReplit, detect: detectReplit},
	{tool: ToolAmp, detect: detectAmp},
	{tool: ToolOpenCode, detect: detectOpenCode},
	{tool: ToolZed, detect: detectZed},
	{tool: ToolWarp, detect: detectWarp},
	{tool: ToolJunie, detect: detectJunie},
})

// mustOrder validates every runBefore declaration and panics on a
// misordered or duplicated registry. A violated declaration is a
// programming error in this package, not a runtime condition, so it
// fails at process start rather than skewing attribution silently.
// A declaration naming a tool that is not registered is vacuously
// satisfied.
func mustOrder(dets []detector) []detector {
	if err := checkOrder(dets); err != nil {
		panic(err)
	}
	return dets
}

func checkOrder(dets []detector) error {
	pos := make(map[Tool]int, len(dets))
	for i, d := range dets {
		if _, dup := pos[d.tool]; dup {
			return fmt.Errorf("agentenv: detector for %q registered twice", d.tool)
		}
		pos[d.tool] = i
	}
	for i, d := range dets {
		if d.runBefore == "" {
			continue
		}
		j, ok := pos[d.runBefore]
		if !ok {
			continue
		}
		if i >= j {
			return fmt.Errorf("agentenv: detector for %q must be registered before %q (found at %d and %d)",
				d.tool, d.runBefore, i, j)
		}
	}
	return nil
}
