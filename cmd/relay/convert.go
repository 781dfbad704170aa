// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/csvrelay/internal/config"
	"github.com/sirseerhq/csvrelay/internal/csv"
	relayerrors "github.com/sirseerhq/csvrelay/internal/errors"
	"github.com/sirseerhq/csvrelay/internal/ioerror"
	"github.com/sirseerhq/csvrelay/internal/ndjson"
	"github.com/sirseerhq/csvrelay/internal/stats"
)

// convertOptions carries the resolved convert flags. The *Set booleans
// record whether a flag was given explicitly, so flags can override the
// config file without clobbering it with defaults.
type convertOptions struct {
	input      string
	outputFile string
	configPath string

	delimiter    string
	delimiterSet bool
	header       bool
	headerSet    bool

	fields []string
	quiet  bool
}

// convertCmd represents the convert command
func newConvertCommand() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert [input-file]",
		Short: "Convert an NDJSON record stream to CSV",
		Long: `Convert newline-delimited JSON objects to CSV, one output line per record.

Input is read from stdin unless a file argument is given. Field order follows
the first record of the stream; per-field overrides (rename, reorder, drop,
custom converter) come from the configuration file, and --fields projects a
subset of fields in the order listed.

Settings are resolved as: flags, then environment variables
(CSVRELAY_DELIMITER, CSVRELAY_HEADER), then the config file, then defaults.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.input = "-"
			if len(args) == 1 {
				opts.input = args[0]
			}
			opts.delimiterSet = cmd.Flags().Changed("delimiter")
			opts.headerSet = cmd.Flags().Changed("header")
			return runConvert(opts)
		},
	}

	// Define flags
	cmd.Flags().StringVar(&opts.outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Config file path (default: search standard locations)")
	cmd.Flags().StringVar(&opts.delimiter, "delimiter", ",", "Field delimiter (single character, or 'tab')")
	cmd.Flags().BoolVar(&opts.header, "header", false, "Write a header record before the first data record")
	cmd.Flags().StringSliceVar(&opts.fields, "fields", nil, "Only output these fields, in the order listed")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "Suppress the summary line on stderr")

	return cmd
}

// runConvert executes the convert command
func runConvert(opts convertOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	// Flags beat environment and file settings.
	if opts.delimiterSet {
		cfg.Output.Delimiter = opts.delimiter
	}
	if opts.headerSet {
		cfg.Output.Header = opts.header
	}

	delim, err := cfg.DelimiterRune()
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(opts.input)
	if err != nil {
		return err
	}
	defer closeInput()

	writerOpts := []csv.Option{csv.WithDelimiter(delim)}
	if cfg.Output.Header {
		writerOpts = append(writerOpts, csv.WithHeader())
	}

	toStdout := opts.outputFile == ""
	var writer *csv.Writer
	if toStdout {
		writer = csv.NewWriter(os.Stdout, writerOpts...)
	} else {
		writer, err = csv.NewFileWriter(opts.outputFile, writerOpts...)
		if err != nil {
			return err
		}
	}
	defer writer.Close()

	var readerOpts []ndjson.ReaderOption
	if overrides := fieldOverrides(cfg.Fields); len(overrides) > 0 {
		readerOpts = append(readerOpts, ndjson.WithOverrides(overrides))
	}
	if len(opts.fields) > 0 {
		readerOpts = append(readerOpts, ndjson.WithProjection(opts.fields))
	}
	reader := ndjson.NewReader(in, readerOpts...)

	tracker := stats.New()
	inspector := ioerror.NewInspector()

	for {
		record, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if err := writer.WriteRecord(record); err != nil {
			if toStdout && inspector.IsBrokenPipe(err) {
				// Downstream consumer (head, a pager) closed early; that is
				// not a failure of the conversion.
				return nil
			}
			return err
		}
		tracker.RecordWritten(len(record.Fields()))
	}

	for _, miss := range writer.MissedConverters() {
		fmt.Fprintf(os.Stderr, "Warning: %s; field used default conversion\n", miss)
	}

	if err := writer.Close(); err != nil {
		if toStdout && inspector.IsBrokenPipe(err) {
			return nil
		}
		return err
	}

	if !opts.quiet {
		tracker.Summarize().Write(os.Stderr)
	}
	return nil
}

// openInput returns the input stream for a path, where "-" means stdin.
func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return file, func() { file.Close() }, nil
}

// fieldOverrides converts config field blocks into reader overrides.
func fieldOverrides(fields []config.FieldConfig) map[string]ndjson.Override {
	if len(fields) == 0 {
		return nil
	}
	overrides := make(map[string]ndjson.Override, len(fields))
	for _, f := range fields {
		overrides[f.Name] = ndjson.Override{
			Header:    f.Header,
			Index:     f.Index,
			Omit:      f.Omit,
			Converter: f.Converter,
		}
	}
	return overrides
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	// Check for specific error types
	if errors.Is(err, relayerrors.ErrInvalidDelimiter) ||
		errors.Is(err, relayerrors.ErrMalformedInput) ||
		errors.Is(err, relayerrors.ErrNoFields) ||
		errors.Is(err, relayerrors.ErrWriterClosed) {
		return 2 // Configuration or input errors
	}

	inspector := ioerror.NewInspector()
	if inspector.IsBrokenPipe(err) || inspector.IsNoSpace(err) || inspector.IsClosed(err) {
		return 3 // Output I/O errors
	}

	return 1 // General error
}
