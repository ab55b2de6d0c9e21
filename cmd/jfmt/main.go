// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jfmt reformats JSON text.
//
// Usage:
//
//	jfmt [flags] [file ...]
//
// With no files, jfmt reads standard input. Each input may contain any number
// of JSON values, and each value is written to standard output followed by a
// newline. Use --compact to write each value on a single line.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jtext"
	"github.com/creachadair/jtext/value"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tailscale/hujson"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type settings struct {
	Compact bool
	Indent  string
	HuJSON  bool
	Tokens  bool
	Debug   bool
}

func (s *settings) addFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&s.Compact, "compact", "c", false, "Write arrays and objects on a single line")
	fs.StringVar(&s.Indent, "indent", "\t", "Indentation unit for each nesting level")
	fs.BoolVar(&s.HuJSON, "hujson", false, "Accept comments and trailing commas in the input")
	fs.BoolVar(&s.Tokens, "tokens", false, "Print the input tokens, one per line")
	fs.BoolVar(&s.Debug, "debug", false, "Enable debug logging")
}

func newLogger(debug bool) (*zap.Logger, error) {
	var config zap.Config
	if term.IsTerminal(int(os.Stderr.Fd())) {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.OutputPaths = []string{"stderr"}
	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return config.Build()
}

func newCommand(out io.Writer) *cobra.Command {
	var s settings
	cmd := &cobra.Command{
		Use:           "jfmt [flags] [file ...]",
		Short:         "Reformat JSON text",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	s.addFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(s.Debug)
		if err != nil {
			return err
		}
		defer log.Sync()

		if len(args) == 0 {
			args = []string{"-"}
		}
		for _, name := range args {
			if err := s.processFile(log, out, name); err != nil {
				log.Error("format failed", zap.String("file", name), zap.Error(err))
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		return nil
	}
	return cmd
}

func (s *settings) processFile(log *zap.Logger, out io.Writer, name string) error {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return err
	}
	log.Debug("read input", zap.String("file", name), zap.Int("bytes", len(data)))
	return s.process(log, out, data)
}

// process formats the JSON values in data to out.
func (s *settings) process(log *zap.Logger, out io.Writer, data []byte) error {
	if s.HuJSON {
		std, err := hujson.Standardize(data)
		if err != nil {
			return err
		}
		data = std
	}
	if s.Tokens {
		return dumpTokens(out, data)
	}

	vs, err := value.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	log.Debug("parsed input", zap.Int("values", len(vs)))

	w := value.NewWriter(out)
	w.SetIndentUnit(s.Indent)
	if s.Compact {
		w.SetCompact()
	}
	for _, v := range vs {
		if err := w.Write(v); err != nil {
			return err
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// dumpTokens writes the location and summary of each token in data to out.
func dumpTokens(out io.Writer, data []byte) error {
	sc := jtext.NewScanner(bytes.NewReader(data))
	for {
		if err := sc.Scan(); err != nil {
			return err
		}
		tok := sc.Token()
		if tok.Kind == jtext.EndOfInput {
			return nil
		}
		if _, err := fmt.Fprintf(out, "%s\t%v\n", sc.Location(), tok); err != nil {
			return err
		}
	}
}

func main() {
	if err := newCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jfmt: %v\n", err)
		os.Exit(1)
	}
}
