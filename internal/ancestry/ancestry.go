// Package ancestry looks up the command names of the current process's
// ancestors. It is the one operation in the module that touches the OS
// beyond reading environment variables, and it degrades to an empty
// result on any failure: an unsupported platform, a vanished process, a
// malformed table, or a slow lookup all yield a truncated or empty list,
// never an error.
package ancestry

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// MaxDepth is the absolute cap on how many ancestors a walk may visit.
const MaxDepth = 10

// hopTimeout bounds each ps invocation. The walk enforces this itself
// rather than relying on caller cancellation; callers are not assumed to
// pass any.
const hopTimeout = 2 * time.Second

// Lookup returns up to maxDepth ancestor command names, nearest ancestor
// first. The calling process itself is never included. Entries are bare
// command names on Linux and whatever ps reports elsewhere, which may be
// an absolute path. An empty result is unremarkable: depth 0, an
// unsupported platform, or a failed lookup.
func Lookup(maxDepth int) []string {
	if maxDepth <= 0 {
		return nil
	}
	if maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}
	switch runtime.GOOS {
	case "linux":
		return lookupProc(os.Getpid(), maxDepth)
	case "darwin", "freebsd", "openbsd", "netbsd":
		return lookupPS(os.Getpid(), maxDepth)
	}
	return nil
}

// lookupProc walks /proc. Each hop reads the PPID from stat and the
// command name from comm; any read failure truncates the walk.
func lookupProc(pid, maxDepth int) []string {
	var names []string
	cur := pid
	for len(names) < maxDepth {
		ppid := readProcPPID(cur)
		if ppid <= 0 {
			break
		}
		if name := readProcComm(ppid); name != "" {
			names = append(names, name)
		}
		if ppid == 1 {
			break
		}
		cur = ppid
	}
	return names
}

func readProcPPID(pid int) int {
	data, err := os.ReadFile("/proc/" + strconv.Itoa(pid) + "/stat")
	if err != nil {
		return 0
	}
	return parseStatPPID(string(data))
}

// parseStatPPID extracts field 4 (ppid) from a /proc/<pid>/stat line.
// The comm field is parenthesized and may itself contain spaces or
// parentheses, so parsing starts after the last ')'.
func parseStatPPID(stat string) int {
	i := strings.LastIndex(stat, ")")
	if i < 0 || i+2 >= len(stat) {
		return 0
	}
	fields := strings.Fields(stat[i+2:])
	if len(fields) < 2 {
		return 0
	}
	ppid, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0
	}
	return ppid
}

func readProcComm(pid int) string {
	data, err := os.ReadFile("/proc/" + strconv.Itoa(pid) + "/comm")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// lookupPS walks the tree one `ps -o ppid=,comm= -p <pid>` call per hop.
func lookupPS(pid, maxDepth int) []string {
	var names []string
	cur := pid
	for len(names) < maxDepth {
		ppid, name, ok := psEntry(cur)
		if !ok || ppid <= 0 {
			break
		}
		if name != "" {
			names = append(names, name)
		}
		if ppid == 1 {
			break
		}
		cur = ppid
	}
	return names
}

func psEntry(pid int) (ppid int, comm string, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), hopTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, "ps", "-o", "ppid=,comm=", "-p", strconv.Itoa(pid)).Output()
	if err != nil {
		return 0, "", false
	}
	return parsePSLine(string(out))
}

// parsePSLine splits a "  PPID COMMAND" line. The command may contain
// spaces ("Code Helper"), so only the first field is numeric.
func parsePSLine(line string) (ppid int, comm string, ok bool) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) < 2 {
		return 0, "", false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", false
	}
	return n, strings.Join(fields[1:], " "), true
}
