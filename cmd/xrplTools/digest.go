package main

import (
	"fmt"

	"github.com/anyswap/xrpl-txmodel/cmd/utils"
	"github.com/anyswap/xrpl-txmodel/ledger/canonical"
	"github.com/urfave/cli/v2"
)

var (
	deviceIDFlag = &cli.StringFlag{
		Name:  "deviceid",
		Usage: "device id to bind the digest to (default: the id kept in [Digest] DeviceIDFile)",
	}
	canonicalFlag = &cli.BoolFlag{
		Name:  "canonical",
		Usage: "also print the canonical serialization",
	}

	digestCommand = &cli.Command{
		Action:    digestAction,
		Name:      "digest",
		Usage:     "fingerprint a json record for this device",
		ArgsUsage: "[json|file]",
		Flags: []cli.Flag{
			fileFlag,
			deviceIDFlag,
			canonicalFlag,
		},
	}
)

func digestAction(ctx *cli.Context) error {
	config := utils.SetupConfig(ctx)
	raw, err := readRecord(ctx)
	if err != nil {
		return err
	}

	var provider canonical.DeviceIDProvider
	if id := ctx.String(deviceIDFlag.Name); id != "" {
		provider = canonical.StaticDeviceID(id)
	} else {
		provider = canonical.NewFileDeviceID(config.Digest.Path())
	}

	if ctx.Bool(canonicalFlag.Name) {
		s, err := canonical.Serialize(raw)
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.App.Writer, s)
	}
	digest, err := canonical.Digest(raw, provider)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, digest)
	return nil
}
