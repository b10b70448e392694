package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/lisper"
	"github.com/xiam/lisper/parser"
	"github.com/xiam/lisper/repl"
)

type options struct {
	maxDepth   int
	trace      bool
	expression bool
	print      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "lisper [file]",
		Short: "A small lisp interpreter",
		Long: `Run a lisp program from a file, or start an interactive session when
no file is given.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.expression {
				return cobra.MinimumNArgs(1)(cmd, args)
			}
			return cobra.MaximumNArgs(1)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", lisper.DefaultMaxDepth,
		"Maximum number of nested procedure calls")
	cmd.Flags().BoolVar(&opts.trace, "trace", false,
		"Trace procedure calls and definitions to stderr")
	cmd.Flags().BoolVarP(&opts.expression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	cmd.Flags().BoolVarP(&opts.print, "print", "p", false,
		"Print the value of each top-level expression to stdout")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	stdout := cmd.OutOrStdout()

	interpreterOpts := []lisper.Option{
		lisper.WithOutput(stdout),
		lisper.WithMaxDepth(opts.maxDepth),
	}
	if opts.trace {
		interpreterOpts = append(interpreterOpts, lisper.WithLogger(log.New(cmd.ErrOrStderr(), "lisper: ", 0)))
	}
	in := lisper.New(interpreterOpts...)

	if opts.expression {
		for i := range args {
			if err := runSource(in, stdout, []byte(args[i]), opts.print); err != nil {
				return err
			}
		}
		return nil
	}

	if len(args) == 0 {
		return repl.RunTerminal(in, repl.HistoryPath())
	}

	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := runSource(in, stdout, src, opts.print); err != nil {
		return fmt.Errorf("%s:%w", path, err)
	}
	return nil
}

// runSource parses the whole source before evaluating any of it.
func runSource(in *lisper.Interpreter, out io.Writer, src []byte, print bool) error {
	nodes, err := parser.Parse(src)
	if err != nil {
		return err
	}
	for _, node := range nodes {
		value, err := in.Eval(node)
		if err != nil {
			return err
		}
		if print {
			fmt.Fprintln(out, value)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
