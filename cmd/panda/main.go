// Command panda loads a query specification and its CSV tables, runs the
// proof-driven rewriting engine, and prints one witness relation per
// output attribute group.
//
// Usage:
//
//	panda --spec-dir DIR --spec-file NAME --tables-dir DIR [--verbose]
//
// Exit status is 0 on success and 1 on any fatal error class (invalid
// spec, algebra violation, proof-structure dead end, divergence).
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/kong"
	"github.com/hashicorp/go-hclog"

	"github.com/vakumar1/panda/panda"
	"github.com/vakumar1/panda/proof"
	"github.com/vakumar1/panda/relation"
	"github.com/vakumar1/panda/spec"
)

type cli struct {
	SpecDir   string `help:"Directory containing the YAML specification." required:"" type:"existingdir"`
	SpecFile  string `help:"Specification file name inside --spec-dir."   required:""`
	TablesDir string `help:"Directory containing the CSV tables."         required:"" type:"existingdir"`
	MaxSteps  uint64 `help:"Driver step ceiling."                         default:"1048576"`
	Verbose   bool   `help:"Enable debug tracing."                        short:"v"`
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("panda"),
		kong.Description("Produce a degree-feasible witness for a conjunctive query under degree constraints."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run(&args))
}

func run(args *cli) error {
	level := hclog.Info
	if args.Verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "panda",
		Level:  level,
		Output: os.Stderr,
	})

	res, err := spec.Load(args.SpecDir, args.SpecFile, args.TablesDir)
	if err != nil {
		return err
	}
	logger.Info("specification loaded",
		"schema", res.Schema.Names(),
		"bound", res.Problem.Bound(),
		"tables", res.Problem.Tables().Total())

	witness, err := panda.Run(res.Problem,
		panda.WithLogger(logger),
		panda.WithMaxSteps(args.MaxSteps))
	if err != nil {
		return err
	}

	printWitness(witness)
	return nil
}

// printWitness renders each output group's relation, groups ordered by
// mask and rows in sorted text order for stable output.
func printWitness(witness panda.Witness) {
	groups := make([]proof.Monotonicity, 0, len(witness))
	for m := range witness {
		groups = append(groups, m)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Y < groups[j].Y })

	for _, m := range groups {
		tab := witness[m]
		fmt.Printf("== %s (%d rows)\n", m.Y, tab.Len())
		lines := make([]string, 0, tab.Len())
		tab.Each(func(r relation.Row) bool {
			lines = append(lines, r.String())
			return true
		})
		sort.Strings(lines)
		for _, line := range lines {
			fmt.Println(line)
		}
	}
}
