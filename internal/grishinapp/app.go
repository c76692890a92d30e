// internal/grishinapp/app.go
package grishinapp

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"resmap-core/grishin"
	"resmap-core/textio"
	"resmap/internal/appcore"
	"resmap/internal/clibase"
	"resmap/internal/cmdutil"
	"resmap/internal/grishincli"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.Run(parent, argv, stdout, stderr, appcore.Tool[grishincli.Options]{
		Name:       "clustal2grishin",
		NewFlagSet: grishincli.NewFlagSet,
		Parse:      grishincli.ParseArgs,
		Common:     func(o grishincli.Options) clibase.Common { return o.Common },
		Examples:   grishincli.PrintExamples,
		Run:        run,
	})
}

func run(ctx context.Context, opts grishincli.Options, out *bufio.Writer, stderr io.Writer) int {
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	written := map[string]string{}
	for _, in := range opts.Inputs {
		if ctx.Err() != nil {
			return 1
		}
		aln, err := parse(in, opts.NSeqs)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", in, err)
			return 2
		}
		for k := 1; k < len(aln.IDs); k++ {
			path := filepath.Join(opts.OutDir, aln.Name(k))
			if prev, ok := written[path]; ok {
				cmdutil.Warnf(stderr, opts.Quiet, "%s overwrites the pair written from %s", in, prev)
			}
			if err := writePair(path, aln, k); err != nil {
				fmt.Fprintf(stderr, "error: writing %s: %v\n", path, err)
				return 1
			}
			written[path] = in
			fmt.Fprintf(out, "Wrote a pairwise alignment in Grishin format to %s\n", path)
		}
	}
	return 0
}

func parse(path string, n int) (grishin.Alignment, error) {
	rc, err := textio.Open(path)
	if err != nil {
		return grishin.Alignment{}, err
	}
	defer func() { _ = rc.Close() }()
	return grishin.ParseClustal(rc, n)
}

func writePair(path string, aln grishin.Alignment, k int) error {
	var buf bytes.Buffer
	if err := aln.Write(&buf, k); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
