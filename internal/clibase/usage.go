// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"resmap/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, input/output blocks).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := defaults(fs)

		fmt.Fprintf(out, "%s – alignment-driven residue renumbering\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

// UsageScoring prints the scoring block for tools that register RegisterScoring.
func UsageScoring(out io.Writer, def func(string) string) {
	fmt.Fprintln(out, "\nScoring:")
	fmt.Fprintf(out, "      --match float           Score of identical residues [%s]\n", def("match"))
	fmt.Fprintf(out, "      --mismatch float        Score of differing residues [%s]\n", def("mismatch"))
	fmt.Fprintf(out, "      --gap-open float        Score of opening a gap [%s]\n", def("gap-open"))
	fmt.Fprintf(out, "      --gap-extend float      Score of extending a gap [%s]\n", def("gap-extend"))
}

func defaults(fs *flag.FlagSet) func(string) string {
	return func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}
}
