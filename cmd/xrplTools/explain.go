package main

import (
	"encoding/json"
	"fmt"

	"github.com/anyswap/xrpl-txmodel/cmd/utils"
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/explain"
	"github.com/anyswap/xrpl-txmodel/ledger/factory"
	"github.com/anyswap/xrpl-txmodel/ledger/terminal"
	"github.com/urfave/cli/v2"
)

var (
	accountFlag = &cli.StringFlag{
		Name:  "account",
		Usage: "explain from the point of view of this account (default: the transaction's Account)",
	}
	factorsFlag = &cli.BoolFlag{
		Name:  "factors",
		Usage: "show every monetary factor",
		Value: true,
	}

	explainCommand = &cli.Command{
		Action:    explainAction,
		Name:      "explain",
		Usage:     "explain a transaction or ledger entry",
		ArgsUsage: "[json|file]",
		Flags: []cli.Flag{
			fileFlag,
			draftFlag,
			accountFlag,
			factorsFlag,
			outputFlag,
		},
	}
)

func explainAction(ctx *cli.Context) error {
	utils.SetupConfig(ctx)
	raw, err := readRecord(ctx)
	if err != nil {
		return err
	}

	opts := explain.Options{}
	if account := ctx.String(accountFlag.Name); account != "" {
		if !codec.IsValidAddress(account) {
			return fmt.Errorf("invalid account %q", account)
		}
		opts.Account = codec.Address(account)
	}
	flag := terminal.Flag(0)
	if ctx.Bool(factorsFlag.Name) {
		flag |= terminal.ShowFactors
	}

	var (
		x    *explain.Explanation
		line string
	)
	if node, isObject := ledgerObject(raw); isObject {
		o, err := factory.CreateLedgerObject(node, sourceOf(ctx))
		if err != nil {
			return err
		}
		line = terminal.Sprint(o, terminal.ShowHash)
		if x, err = factory.ExplainObject(o, opts); err != nil {
			return err
		}
	} else {
		tx, err := factory.CreateFromEnvelope(raw, sourceOf(ctx))
		if err != nil {
			return err
		}
		line = terminal.Sprint(tx, terminal.ShowHash)
		if x, err = factory.Explain(tx, opts); err != nil {
			return err
		}
	}

	if ctx.String(outputFlag.Name) == "json" {
		bs, err := json.MarshalIndent(x, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.App.Writer, string(bs))
		return nil
	}
	fmt.Fprintln(ctx.App.Writer, line)
	return terminal.FprintExplanation(ctx.App.Writer, x, flag|terminal.Indent)
}
