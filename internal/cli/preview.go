package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"examgen/internal/exam"
	"examgen/internal/markup"
	"examgen/internal/ui/preview"
)

// runPreview builds the handler for the preview command.
func runPreview(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		showKey := flags.Bool("key", false, "Reveal correct answers")
		plain := flags.Bool("plain", false, "Print the whole exam instead of the pager")
		noColor := flags.Bool("no-color", false, "Disable styling")
		seed := flags.Uint64("seed", 0, "Shuffle seed for a reproducible preview (0 = random)")
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

		data, err := os.ReadFile(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Preview failed: %v\n", err)
			return ExitError
		}
		opts := exam.Options{Markup: markup.Plain{}}
		if *seed != 0 {
			opts.Shuffler = exam.NewSeededShuffler(*seed)
		}
		model, err := exam.NewAssembler(opts).Assemble(data)
		if err != nil {
			fmt.Fprintf(stderr, "Preview failed: %v\n", err)
			return ExitError
		}

		previewOpts := preview.Options{ShowKey: *showKey, NoColor: *noColor}
		if *plain || !isTerminal(stdout) {
			preview.WritePlain(stdout, model, previewOpts)
			return ExitOK
		}

		program := tea.NewProgram(preview.NewModel(model, previewOpts), tea.WithOutput(stdout))
		if _, err := program.Run(); err != nil {
			fmt.Fprintf(stderr, "Preview failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
