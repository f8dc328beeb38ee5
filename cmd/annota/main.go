package main

import (
	"os"
	"strings"

	"annota-cli/internal/cli"
)

func isDocID(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "doc-") {
		return false
	}
	// Keep it permissive; IDs are generated but users may paste variants.
	return len(s) > len("doc-")
}

// rewriteDirectDocLookupArgs makes `annota <doc-id>` behave like
// `annota docs show <doc-id>`. Cobra treats the first non-flag token as
// a subcommand, so argv is rewritten before parsing. Users often pass
// persistent flags first (e.g. `annota --dir ... <doc-id>`), so we look
// for the first positional token, not just argv[1].
func rewriteDirectDocLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir": true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isDocID(argv[i+1]) {
				out := make([]string, 0, len(argv)+2)
				out = append(out, argv[:i+1]...)
				out = append(out, "docs", "show")
				out = append(out, argv[i+1:]...)
				return out
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		// First positional token.
		if isDocID(a) {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, "docs", "show")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectDocLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
