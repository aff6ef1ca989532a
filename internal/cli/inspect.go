package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/sbmltab/internal/args"
	"github.com/aretw0/sbmltab/internal/presentation/graph"
	"github.com/aretw0/sbmltab/internal/presentation/tui"
	"github.com/aretw0/sbmltab/pkg/domain"
)

// Inspect output formats.
const (
	FormatTable   = "table"
	FormatJSON    = "json"
	FormatMermaid = "mermaid"
)

// Inspect lists the map entries the configuration would generate, without
// writing anything. Only the config path of opts.Args is used.
func Inspect(ctx context.Context, opts RunOptions, format string) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	argv := opts.Args
	if len(argv) > 1 {
		argv = argv[:1]
	}
	inv, err := args.New(opts.Prog).Resolve(argv)
	if err != nil {
		return exitErrorFor(ctx, err)
	}

	cfg, err := loadSettings(opts)
	if err != nil {
		return exitErrorFor(ctx, err)
	}
	logger := createLogger(opts.Debug, cfg, opts.Stderr)
	gen := createGenerator(logger, cfg.Colors, cfg, nil)

	data, err := os.ReadFile(inv.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return exitErrorFor(ctx, &domain.MissingFileError{Path: inv.ConfigPath})
		}
		return exitErrorFor(ctx, err)
	}

	model, err := gen.Model(ctx, inv.ConfigPath, data)
	if err != nil {
		return exitErrorFor(ctx, err)
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(opts.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(model)
	case FormatMermaid:
		fmt.Fprint(opts.Stdout, graph.GenerateMermaid(model))
		return nil
	case FormatTable, "":
	default:
		return &ExitError{Code: 1, Message: fmt.Sprintf("unknown format %q (table, json, mermaid)", format)}
	}

	table := tui.EntriesTable(model.Entries)
	if opts.Rich {
		if rendered, err := tui.NewRenderer()(table); err == nil {
			table = rendered
		}
	}
	printSystemMessage(opts.Stdout, "%s: %d map entries, %d other children", inv.ConfigPath, len(model.Entries), model.Skipped)
	fmt.Fprint(opts.Stdout, table)
	return nil
}
