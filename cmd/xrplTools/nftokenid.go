package main

import (
	"encoding/json"
	"fmt"

	"github.com/anyswap/xrpl-txmodel/cmd/utils"
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/nftoken"
	"github.com/urfave/cli/v2"
)

var (
	issuerFlag = &cli.StringFlag{
		Name:  "issuer",
		Usage: "issuer address",
	}
	sequenceFlag = &cli.Uint64Flag{
		Name:  "sequence",
		Usage: "mint sequence of the issuer",
	}
	nftFlagsFlag = &cli.Uint64Flag{
		Name:  "flags",
		Usage: "token flags (1 burnable, 2 only xrp, 8 transferable)",
	}
	transferFeeFlag = &cli.Uint64Flag{
		Name:  "fee",
		Usage: "transfer fee in 1/100000 units (max 50000)",
	}
	taxonFlag = &cli.Uint64Flag{
		Name:  "taxon",
		Usage: "token taxon",
	}

	nftokenIDCommand = &cli.Command{
		Name:  "nftokenid",
		Usage: "encode or decode NFToken identifiers",
		Subcommands: []*cli.Command{
			{
				Action: encodeNFTokenIDAction,
				Name:   "encode",
				Usage:  "build an identifier",
				Flags: []cli.Flag{
					issuerFlag,
					sequenceFlag,
					nftFlagsFlag,
					transferFeeFlag,
					taxonFlag,
				},
			},
			{
				Action:    decodeNFTokenIDAction,
				Name:      "decode",
				Usage:     "split an identifier into its parts",
				ArgsUsage: "<nftokenid>",
			},
		},
	}
)

func encodeNFTokenIDAction(ctx *cli.Context) error {
	utils.SetupConfig(ctx)
	const (
		maxUint16 = 1<<16 - 1
		maxUint32 = 1<<32 - 1
	)
	sequence := ctx.Uint64(sequenceFlag.Name)
	flags := ctx.Uint64(nftFlagsFlag.Name)
	fee := ctx.Uint64(transferFeeFlag.Name)
	taxon := ctx.Uint64(taxonFlag.Name)
	if sequence > maxUint32 || taxon > maxUint32 || flags > maxUint16 || fee > maxUint16 {
		return fmt.Errorf("value out of range")
	}
	id, err := nftoken.Encode(codec.Address(ctx.String(issuerFlag.Name)), uint32(sequence), uint16(flags), uint16(fee), uint32(taxon))
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, id)
	return nil
}

func decodeNFTokenIDAction(ctx *cli.Context) error {
	utils.SetupConfig(ctx)
	if ctx.NArg() != 1 {
		return fmt.Errorf("decode needs exactly one identifier")
	}
	token, err := nftoken.Decode(ctx.Args().First())
	if err != nil {
		return err
	}
	bs, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, string(bs))
	fmt.Fprintln(ctx.App.Writer, "transfer fee:", token.TransferFeePercent())
	return nil
}
