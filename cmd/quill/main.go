// Package main is the entry point for the quill command line tool.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/palette"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errUsage marks errors already reported through a usage message.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type globalFlags struct {
	configPath string
	logLevel   string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var g globalFlags
	var showVersion bool

	fs := flag.NewFlagSet("quill", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&g.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&g.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&g.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "quill - incremental syntax colorizer\n\n")
		fmt.Fprintf(stderr, "Usage: quill [options] <command> [arguments]\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		fmt.Fprintf(stderr, "  colorize [-lang name] [-roles] [file]  Colorize a file or stdin\n")
		fmt.Fprintf(stderr, "  grammars                               List registered grammars\n")
		fmt.Fprintf(stderr, "  palette [-base dark|light]             Show palette colors\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintf(stdout, "quill %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	var err error
	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "colorize":
		err = runColorize(g, cmdArgs, stdin, stdout, stderr)
	case "grammars":
		err = runGrammars(g, stdout, stderr)
	case "palette":
		err = runPalette(g, cmdArgs, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func openSession(g globalFlags, opts app.Options, stderr io.Writer) (*app.Session, error) {
	opts.ConfigPath = g.configPath
	opts.LogLevel = g.logLevel
	opts.LogOutput = stderr
	return app.New(opts)
}

func runColorize(g globalFlags, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var lang string
	var roles bool

	fs := flag.NewFlagSet("colorize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&lang, "lang", "", "Grammar name (default: chosen by file extension)")
	fs.BoolVar(&roles, "roles", false, "Print color roles instead of ANSI text")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "Error: colorize takes at most one file\n")
		return errUsage
	}

	s, err := openSession(g, app.Options{Grammar: lang, ReadOnly: true}, stderr)
	if err != nil {
		return err
	}
	defer s.Close()

	if path := fs.Arg(0); path != "" && path != "-" {
		if err := s.OpenFile(path); err != nil {
			return err
		}
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		s.SetContent("", string(data))
	}
	// An explicit language wins over the file extension.
	if lang != "" {
		if err := s.SetGrammar(lang); err != nil {
			return err
		}
	}

	e := s.Editor()
	e.FlushColors()
	if roles {
		return writeRoles(stdout, e)
	}
	return writeANSI(stdout, e)
}

func runGrammars(g globalFlags, stdout, stderr io.Writer) error {
	s, err := openSession(g, app.Options{}, stderr)
	if err != nil {
		return err
	}
	defer s.Close()

	reg := s.Registry()
	for _, name := range reg.Names() {
		gr, err := reg.Get(name)
		if err != nil {
			return err
		}
		exts := gr.Extensions()
		if len(exts) == 0 {
			fmt.Fprintln(stdout, gr.Name())
			continue
		}
		fmt.Fprintf(stdout, "%-16s %s\n", gr.Name(), strings.Join(exts, " "))
	}
	return nil
}

func runPalette(g globalFlags, args []string, stdout, stderr io.Writer) error {
	var base string

	fs := flag.NewFlagSet("palette", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&base, "base", "", "Built-in palette (default: from configuration)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}

	var pal palette.Palette
	if base != "" {
		p, err := palette.ByName(base)
		if err != nil {
			return err
		}
		pal = p
	} else {
		s, err := openSession(g, app.Options{}, stderr)
		if err != nil {
			return err
		}
		pal = s.Editor().Palette()
		if err := s.Close(); err != nil {
			return err
		}
	}
	return writePalette(stdout, &pal)
}
