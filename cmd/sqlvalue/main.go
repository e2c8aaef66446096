package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/sqlvalue/fixture"
	"github.com/goccy/sqlvalue/internal/logger"
	"github.com/goccy/sqlvalue/types"
	"github.com/goccy/sqlvalue/value"
	"github.com/jessevdk/go-flags"
)

type option struct {
	Kind         string           `description:"specify the kind of the literal (ints/floats/booleans/chars/dates or a SQL alias)" long:"kind" short:"k" default:"chars"`
	Literal      string           `description:"specify the literal to parse" long:"literal" short:"l"`
	Cast         string           `description:"cast the literal to the specified kind" long:"cast"`
	AddDays      int32            `description:"add the specified number of days to the literal" long:"add-days"`
	Sub          string           `description:"subtract the specified literal of the same kind" long:"sub"`
	JSON         bool             `description:"print values in the JSON layout" long:"json"`
	DataFromYAML string           `description:"specify the path to the YAML file that contains fixture tables" long:"data-from-yaml"`
	DataFromJSON string           `description:"specify the path to the JSON file that contains fixture tables" long:"data-from-json"`
	Hex          bool             `description:"print fixture rows as hex encoded records" long:"hex"`
	LogLevel     logger.LogLevel  `description:"specify the log level (debug/info/warn/error)" long:"log-level" default:"error"`
	LogFormat    logger.LogFormat `description:"sepcify the log format (console/json)" long:"log-format" default:"console"`
	Version      bool             `description:"print version" long:"version" short:"v"`
}

type exitCode int

const (
	exitOK    exitCode = 0
	exitError exitCode = 1
)

var (
	version  string
	revision string
)

func main() {
	os.Exit(int(run(os.Args[1:], os.Stdout, os.Stderr)))
}

func run(args []string, stdout, stderr io.Writer) exitCode {
	opt, err := parseOpt(args)
	if err != nil {
		flagsErr, ok := err.(*flags.Error)
		if !ok {
			fmt.Fprintf(stderr, "[sqlvalue] unknown parsed option error: %[1]T %[1]v\n", err)
			return exitError
		}
		if flagsErr.Type == flags.ErrHelp {
			return exitOK
		}
		return exitError
	}
	if err := runCommand(opt, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	return exitOK
}

func parseOpt(args []string) (option, error) {
	var opt option
	parser := flags.NewParser(&opt, flags.Default)
	_, err := parser.ParseArgs(args)
	return opt, err
}

func runCommand(opt option, w io.Writer) error {
	if opt.Version {
		fmt.Fprintf(w, "version: %s (%s)\n", version, revision)
		return nil
	}
	l, err := logger.Build(opt.LogLevel, opt.LogFormat)
	if err != nil {
		return err
	}
	defer l.Sync()
	logger.SetDefault(l)
	ctx := logger.WithLogger(context.Background(), l)

	var sources []fixture.Source
	if opt.DataFromYAML != "" {
		sources = append(sources, fixture.YAMLSource(opt.DataFromYAML))
	}
	if opt.DataFromJSON != "" {
		sources = append(sources, fixture.JSONSource(opt.DataFromJSON))
	}
	if len(sources) == 0 && opt.Literal == "" {
		return fmt.Errorf("either --literal or --data-from-yaml/--data-from-json must be specified")
	}
	if len(sources) > 0 {
		if err := printFixtures(ctx, w, opt, sources); err != nil {
			return err
		}
	}
	if opt.Literal == "" {
		return nil
	}
	v, err := evalLiteral(opt)
	if err != nil {
		return err
	}
	return printValue(w, opt, v)
}

func evalLiteral(opt option) (*value.Value, error) {
	kind, err := kindOption("--kind", opt.Kind)
	if err != nil {
		return nil, err
	}
	v, err := value.Parse(kind, opt.Literal)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q as %s: %w", opt.Literal, kind, err)
	}
	if opt.AddDays != 0 {
		v, err = value.Add(v, value.NewInt(opt.AddDays))
		if err != nil {
			return nil, fmt.Errorf("failed to add %d days: %w", opt.AddDays, err)
		}
	}
	if opt.Sub != "" {
		rhs, err := value.Parse(v.Kind(), opt.Sub)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q as %s: %w", opt.Sub, v.Kind(), err)
		}
		v, err = value.Sub(v, rhs)
		if err != nil {
			return nil, fmt.Errorf("failed to subtract %s: %w", rhs, err)
		}
	}
	if opt.Cast != "" {
		to, err := kindOption("--cast", opt.Cast)
		if err != nil {
			return nil, err
		}
		v, err = value.Cast(v, to)
		if err != nil {
			return nil, fmt.Errorf("failed to cast: %w", err)
		}
	}
	return v, nil
}

func kindOption(name, s string) (types.AttributeKind, error) {
	kind, err := types.KindFromName(s)
	if err != nil {
		return types.Undefined, fmt.Errorf("invalid %s: %w", name, err)
	}
	if !kind.IsValid() {
		return types.Undefined, fmt.Errorf("invalid %s: %s", name, s)
	}
	return kind, nil
}

func printValue(w io.Writer, opt option, v *value.Value) error {
	if opt.JSON {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(b))
		return nil
	}
	fmt.Fprintf(w, "%s: %s\n", v.Kind(), v)
	return nil
}

func printFixtures(ctx context.Context, w io.Writer, opt option, sources []fixture.Source) error {
	catalog, err := fixture.Load(ctx, sources...)
	if err != nil {
		return err
	}
	for _, table := range catalog.Tables() {
		fmt.Fprintf(w, "[%s]\n", table.ID)
		if opt.Hex {
			records, err := table.Records()
			if err != nil {
				return err
			}
			for _, record := range records {
				fmt.Fprintln(w, hex.EncodeToString(record))
			}
			continue
		}
		names := make([]string, 0, len(table.Schema.Columns))
		for _, col := range table.Schema.Columns {
			names = append(names, fmt.Sprintf("%s(%s)", col.Name, col.Kind))
		}
		fmt.Fprintln(w, strings.Join(names, "\t"))
		for _, row := range table.Rows {
			if opt.JSON {
				b, err := json.Marshal(row)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, string(b))
				continue
			}
			cells := make([]string, 0, len(row))
			for _, v := range row {
				cells = append(cells, v.ToString())
			}
			fmt.Fprintln(w, strings.Join(cells, "\t"))
		}
	}
	return nil
}
