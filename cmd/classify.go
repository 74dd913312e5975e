package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/pathwhat/pkg/shellattr"
)

// NewRootCmd builds the root command. There are no subcommands: the whole
// program is one prompt/classify/report exchange.
func NewRootCmd(resolver shellattr.Resolver, log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "pathwhat",
		Short: "Ask the shell namespace what a path is",
		Long: `pathwhat reads one path, asks the platform shell namespace to parse it,
and reports whether the shell considers it a real file-system object, an
ancestor of file-system objects, a folder, or none of those.

Virtual locations (libraries, Control Panel, network roots) parse fine in
the shell but are not addressable file-system paths; this tool shows which
side of that line a given string falls on.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd.InOrStdin(), cmd.OutOrStdout(), resolver, log)
		},
	}
}

// runClassify is the whole program: one path in, one report out. A resolver
// failure is a reported result, not an error; the only error here is failing
// to read the path itself.
func runClassify(in io.Reader, out io.Writer, resolver shellattr.Resolver, log *logrus.Logger) error {
	fmt.Fprint(out, "Enter a path: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read path: %w", err)
	}
	path := strings.TrimRight(line, "\r\n")

	outcome := shellattr.NewClassifier(resolver, log).Classify(path)

	fmt.Fprintf(out, "Path: %s\n", path)
	for _, l := range shellattr.Describe(outcome) {
		fmt.Fprintln(out, l)
	}
	return nil
}
