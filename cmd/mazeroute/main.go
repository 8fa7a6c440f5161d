/*
Mazeroute routes a set of IC nets across a two-layer grid maze.

Usage:

	mazeroute [flags] <input> <output>

The flags are:

	-via-penalty N
	    Override the via penalty carried in the input file's header.
	-wrong-direction-penalty N
	    Override the wrong-direction penalty carried in the input file's header.
	-viz
	    Print an ASCII map of the routed grid to stderr.
	-dump-json path
	    Write a machine-readable JSON dump of the routing results to path.

Exit code 0 on successful completion, even if some nets were
unroutable; nonzero on a parse or configuration error, or when a file
cannot be opened, created or written.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kirollos21/mazeroute/config"
	"github.com/kirollos21/mazeroute/grid"
	"github.com/kirollos21/mazeroute/gridviz"
	"github.com/kirollos21/mazeroute/ioformat"
	"github.com/kirollos21/mazeroute/netroute"
	"github.com/kirollos21/mazeroute/pathfind"
)

var (
	viaPenalty   int64
	wrongPenalty int64
	viz          bool
	dumpJSONPath string
)

func init() {
	flag.Int64Var(&viaPenalty, "via-penalty", -1, "override the via penalty (default: input file header)")
	flag.Int64Var(&wrongPenalty, "wrong-direction-penalty", -1, "override the wrong-direction penalty (default: input file header)")
	flag.BoolVar(&viz, "viz", false, "print an ASCII map of the routed grid to stderr")
	flag.StringVar(&dumpJSONPath, "dump-json", "", "write a JSON dump of the routing results to this path")
}

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: mazeroute [flags] <input> <output>")
		return 1
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	in, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening input file %s: %s\n", inPath, err)
		return 1
	}
	defer in.Close()

	sess, err := ioformat.Parse(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing input: %s\n", err)
		return 1
	}

	var opts []config.Option
	if viaPenalty >= 0 {
		opts = append(opts, config.WithViaPenalty(viaPenalty))
	}
	if wrongPenalty >= 0 {
		opts = append(opts, config.WithWrongPenalty(wrongPenalty))
	}
	penalties := config.Resolve(sess.ViaPenalty, sess.WrongPenalty, opts...)

	g, err := grid.New(sess.Width, sess.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building grid: %s\n", err)
		return 1
	}
	for _, p := range sess.Obstructions {
		g.Block(p)
	}

	pf, err := pathfind.New(g, penalties.ViaPenalty, penalties.WrongPenalty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error configuring path finder: %s\n", err)
		return 1
	}

	router, err := netroute.New(g, pf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error configuring router: %s\n", err)
		return 1
	}

	results, err := router.RouteAll(sess.Nets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error routing nets: %s\n", err)
		return 1
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening output file %s: %s\n", outPath, err)
		return 1
	}
	defer out.Close()

	if err := ioformat.Write(out, results); err != nil {
		fmt.Fprintf(os.Stderr, "error writing output: %s\n", err)
		return 1
	}

	if viz {
		if err := gridviz.Render(os.Stderr, g, results); err != nil {
			fmt.Fprintf(os.Stderr, "error rendering visualization: %s\n", err)
			return 1
		}
	}

	if dumpJSONPath != "" {
		f, err := os.Create(dumpJSONPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening JSON dump file %s: %s\n", dumpJSONPath, err)
			return 1
		}
		defer f.Close()
		if err := gridviz.DumpJSON(f, results); err != nil {
			fmt.Fprintf(os.Stderr, "error dumping JSON: %s\n", err)
			return 1
		}
	}

	return 0
}
