package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/textcodec/transcoder"
)

type config struct {
	from     transcoder.Form
	autoFrom bool
	to       transcoder.Form
	policy   transcoder.Policy
	in, out  string
	bom      bool
	measure  bool
	hex      bool
}

func main() {
	var (
		from        = flag.String("from", "auto", "Source form, or auto to sniff a byte order mark (utf-8, utf-16le, utf-16be, utf-32le, utf-32be)")
		to          = flag.String("to", "utf-8", "Target form")
		policy      = flag.String("policy", "substitute", "Ill-formed input: substitute or stop")
		in          = flag.String("in", "", "Input file (default stdin)")
		out         = flag.String("out", "", "Output file (default stdout)")
		bom         = flag.Bool("bom", false, "Write a byte order mark for the target form")
		measure     = flag.Bool("measure", false, "Print the measurement of the input instead of transcoding")
		hexDump     = flag.Bool("hex", false, "Hex dump the output (default when stdout is a terminal and the target is not UTF-8)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive inspector with TUI")
	)
	flag.Parse()

	log := newLogger(*verbose)
	defer log.Sync()
	transcoder.SetLogger(log)

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := parseConfig(*from, *to, *policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: transcode [-from form|auto] [-to form] [-policy substitute|stop] [-in file] [-out file]")
		fmt.Fprintln(os.Stderr, "       transcode -measure [-from form|auto] [-in file]")
		fmt.Fprintln(os.Stderr, "       transcode -i  (interactive mode)")
		os.Exit(1)
	}
	cfg.in, cfg.out = *in, *out
	cfg.bom, cfg.measure = *bom, *measure
	cfg.hex = *hexDump
	if !flagSet("hex") {
		cfg.hex = cfg.out == "" && cfg.to != transcoder.UTF8 && term.IsTerminal(int(os.Stdout.Fd()))
	}

	if err := run(cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		log, err = cfg.Build()
	}
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func parseConfig(from, to, policy string) (config, error) {
	var cfg config
	var err error
	if from == "auto" {
		cfg.autoFrom = true
	} else if cfg.from, err = transcoder.ParseForm(from); err != nil {
		return cfg, err
	}
	if cfg.to, err = transcoder.ParseForm(to); err != nil {
		return cfg, err
	}
	if cfg.policy, err = transcoder.ParsePolicy(policy); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(cfg config, log *zap.Logger) (err error) {
	input := os.Stdin
	if cfg.in != "" {
		if input, err = os.Open(cfg.in); err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer input.Close()
	}

	r := bufio.NewReader(input)
	from := cfg.from
	if cfg.autoFrom {
		from = sniff(r)
	}
	log.Debug("input form", zap.Stringer("form", from), zap.Bool("sniffed", cfg.autoFrom))

	if cfg.measure {
		return printMeasurement(os.Stdout, r, from, cfg.policy)
	}

	output := os.Stdout
	if cfg.out != "" {
		if output, err = os.Create(cfg.out); err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			err = multierr.Append(err, output.Close())
		}()
	}

	var w io.Writer = output
	if cfg.hex {
		dumper := hex.Dumper(output)
		defer func() {
			err = multierr.Append(err, dumper.Close())
		}()
		w = dumper
	}

	if cfg.bom {
		if _, err := w.Write(cfg.to.BOM()); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	n, err := io.Copy(w, transcoder.NewReader(r, from, cfg.to, cfg.policy))
	log.Debug("transcoded",
		zap.Stringer("from", from),
		zap.Stringer("to", cfg.to),
		zap.Int64("bytes", n))
	if err != nil {
		return fmt.Errorf("transcode %s to %s: %w", from, cfg.to, err)
	}
	return nil
}

// sniff consumes a byte order mark and returns its form, or UTF-8 when
// there is none.
func sniff(r *bufio.Reader) transcoder.Form {
	prefix, _ := r.Peek(4)
	f, n, ok := transcoder.DetectForm(prefix)
	if !ok {
		return transcoder.UTF8
	}
	_, _ = r.Discard(n)
	return f
}

func printMeasurement(w io.Writer, r io.Reader, from transcoder.Form, policy transcoder.Policy) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	m, err := transcoder.MeasureBytes(data, from, policy == transcoder.Substitute)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "form:         %s\n", from)
	fmt.Fprintf(w, "scalars:      %d\n", m.Scalars)
	fmt.Fprintf(w, "utf-8 bytes:  %d\n", m.UTF8Len)
	fmt.Fprintf(w, "utf-16 units: %d\n", m.UTF16Len)
	fmt.Fprintf(w, "ascii:        %v\n", m.ASCII)
	fmt.Fprintf(w, "latin-1:      %v\n", m.Latin1)
	return nil
}
