package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"examgen/internal/build"
	"examgen/internal/exam"
)

// runBuild builds the handler for the build command.
func runBuild(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		outDir := flags.String("out", "", "Output directory (default: the source file's directory)")
		format := flags.String("format", build.FormatHTML, "Output format: html or pdf")
		seed := flags.Uint64("seed", 0, "Shuffle seed for reproducible builds (0 = random)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintf(stderr, "expected exactly one source file, got: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		artifacts, err := build.Run(build.Options{
			SourcePath: flags.Arg(0),
			OutputDir:  *outDir,
			Format:     *format,
			Deps:       build.Dependencies{Assembler: assemblerForSeed(*seed)},
		})
		if err != nil {
			fmt.Fprintf(stderr, "Build failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", artifacts.ExamPath)
		fmt.Fprintf(stdout, "Wrote %s\n", artifacts.KeyPath)
		return ExitOK
	}
}

// assemblerForSeed returns a seeded assembler, or nil to use the default
// non-deterministic one.
func assemblerForSeed(seed uint64) *exam.Assembler {
	if seed == 0 {
		return nil
	}
	return exam.NewAssembler(exam.Options{Shuffler: exam.NewSeededShuffler(seed)})
}
