package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/urfave/cli/v2"
)

var (
	fileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "read the json record from file, '-' for stdin",
	}
	draftFlag = &cli.BoolFlag{
		Name:  "draft",
		Usage: "treat the record as an unsubmitted draft (required fields may be absent)",
	}
	outputFlag = &cli.StringFlag{
		Name:  "output",
		Usage: "output format: text or json",
		Value: "text",
	}

	errNoInput = errors.New("no input, pass a json record, --file or pipe it on stdin")
)

// readInput takes the record from --file, the first argument or stdin
func readInput(ctx *cli.Context) ([]byte, error) {
	file := ctx.String(fileFlag.Name)
	if file == "" && ctx.NArg() > 0 {
		arg := strings.TrimSpace(ctx.Args().First())
		if strings.HasPrefix(arg, "{") {
			return []byte(arg), nil
		}
		file = arg
	}
	switch file {
	case "":
		stat, err := os.Stdin.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return nil, errNoInput
		}
		return io.ReadAll(os.Stdin)
	case "-":
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(file)
	}
}

func readRecord(ctx *cli.Context) (entity.Record, error) {
	data, err := readInput(ctx)
	if err != nil {
		return nil, err
	}
	return entity.ParseRecord(data)
}

func sourceOf(ctx *cli.Context) entity.Source {
	if ctx.Bool(draftFlag.Name) {
		return entity.SourceDraft
	}
	return entity.SourceLedger
}

// ledgerObject is true for ledger entries, possibly wrapped in a ledger_entry result
func ledgerObject(raw entity.Record) (entity.Record, bool) {
	if node, ok := entity.AsRecord(raw["node"]); ok && node.Has("LedgerEntryType") {
		return node, true
	}
	return raw, raw.Has("LedgerEntryType")
}
