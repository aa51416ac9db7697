// Command html-table creates formatted HTML tables from text input.
//
// Input rows are read from a file or stdin, one row per line, split into
// cells on a delimiter (whitespace by default). The --accumulate and --dump
// flags store input between invocations in a temp directory so a table can
// be assembled from several commands.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/NickSto/htmltable"
)

type options struct {
	headers     int
	headerFlag  bool
	tabs        bool
	delim       string
	tableStyles []string
	yamlInput   bool
	textOutput  bool
	accumulate  string
	dump        string
	quiet       bool
	verbose     bool
	debug       bool
}

func main() {
	var opts options
	cmd := &cobra.Command{
		Use:           "html-table [file]",
		Short:         "Create formatted HTML tables from text input",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.OutOrStdout(), args, opts)
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&opts.headerFlag, "header", "H", false,
		"The first input row is a header")
	flags.IntVar(&opts.headers, "headers", 0,
		"How many header rows there are in the input")
	flags.BoolVarP(&opts.tabs, "tabs", "t", false,
		"Split input cells on tabs instead of whitespace")
	flags.StringVarP(&opts.delim, "delim", "d", "",
		"Split input cells on this delimiter instead of whitespace")
	flags.StringArrayVarP(&opts.tableStyles, "table-style", "s", nil,
		"Add this CSS property: value pair to the <table> style attribute. "+
			"Give multiple times to add multiple rules.")
	flags.BoolVar(&opts.yamlInput, "yaml", false,
		"Read the input as a YAML table document instead of delimited text")
	flags.BoolVar(&opts.textOutput, "text", false,
		"Output tab-delimited text instead of HTML")
	flags.StringVarP(&opts.accumulate, "accumulate", "a", "",
		"Store input under this id for later output with --dump")
	flags.StringVar(&opts.dump, "dump", "",
		"Output the table accumulated under this id, then delete it")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only log critical problems")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log extra information")
	flags.BoolVarP(&opts.debug, "debug", "D", false, "Log debugging information")
	if err := cmd.Execute(); err != nil {
		logrus.Errorf("Error: %v", err)
		os.Exit(1)
	}
}

func run(stdout io.Writer, args []string, opts options) error {
	setupLogging(opts)

	if opts.accumulate != "" && opts.dump != "" {
		return fmt.Errorf("cannot give both --accumulate and --dump")
	}

	input, cleanup, err := openInput(args, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	if opts.accumulate != "" {
		return accumulate(input, opts.accumulate)
	}

	table, err := buildTable(input, opts)
	if err != nil {
		return err
	}
	logrus.Debugf("built table: %d rows, width %d", table.Len(), table.Width())

	if opts.textOutput {
		err = table.WriteText(stdout)
	} else {
		err = table.WriteHTML(stdout)
	}
	if err != nil {
		return err
	}
	if opts.dump != "" {
		return os.Remove(accPath(opts.dump))
	}
	return nil
}

func setupLogging(opts options) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch {
	case opts.debug:
		logrus.SetLevel(logrus.DebugLevel)
	case opts.verbose:
		logrus.SetLevel(logrus.InfoLevel)
	case opts.quiet:
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.WarnLevel)
	}
}

func openInput(args []string, opts options) (io.Reader, func(), error) {
	if opts.dump != "" {
		path := accPath(opts.dump)
		file, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("no accumulated input %q: %w", opts.dump, err)
		}
		return file, func() { file.Close() }, nil
	}
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, nil, err
		}
		return file, func() { file.Close() }, nil
	}
	return os.Stdin, func() {}, nil
}

// accPath returns the accumulation file for an id, creating the shared temp
// directory if needed.
func accPath(id string) string {
	dir := filepath.Join(os.TempDir(), "html-table-acc")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		logrus.Warnf("could not create %s: %v", dir, err)
	}
	return filepath.Join(dir, "acc."+id+".txt")
}

func accumulate(input io.Reader, id string) error {
	path := accPath(id)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()
	n, err := io.Copy(file, input)
	if err != nil {
		return err
	}
	logrus.Infof("accumulated %d bytes under id %q", n, id)
	return nil
}

func buildTable(input io.Reader, opts options) (*htmltable.Table, error) {
	if opts.yamlInput {
		data, err := io.ReadAll(input)
		if err != nil {
			return nil, err
		}
		table, err := htmltable.FromYAML(data)
		if err != nil {
			return nil, err
		}
		return applyTableStyles(table, opts.tableStyles)
	}

	headerLen := opts.headers
	if opts.headerFlag && headerLen == 0 {
		headerLen = 1
	}
	delim := opts.delim
	if opts.tabs {
		delim = "\t"
	}

	var body []any
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		row := make([]any, 0, 8)
		for _, field := range splitFields(scanner.Text(), delim) {
			row = append(row, map[string]any{"value": field})
		}
		body = append(body, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	table, err := htmltable.New(body, htmltable.Options{HeaderLen: headerLen})
	if err != nil {
		return nil, err
	}
	return applyTableStyles(table, opts.tableStyles)
}

func splitFields(line, delim string) []string {
	if delim == "" {
		return strings.Fields(line)
	}
	return strings.Split(line, delim)
}

func applyTableStyles(table *htmltable.Table, styles []string) (*htmltable.Table, error) {
	for _, statement := range styles {
		decls, err := htmltable.ParseCSS(statement)
		if err != nil {
			return nil, err
		}
		for _, decl := range decls {
			table.Style.SetCSS(decl.Property, decl.Value)
		}
	}
	return table, nil
}
