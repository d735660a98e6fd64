package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anyswap/xrpl-txmodel/cmd/utils"
	"github.com/anyswap/xrpl-txmodel/ledger/factory"
	"github.com/anyswap/xrpl-txmodel/ledger/source"
	"github.com/anyswap/xrpl-txmodel/ledger/terminal"
	"github.com/anyswap/xrpl-txmodel/ledger/validate"
	"github.com/anyswap/xrpl-txmodel/leveldb"
	"github.com/anyswap/xrpl-txmodel/log"
	"github.com/anyswap/xrpl-txmodel/params"
	"github.com/urfave/cli/v2"
)

var (
	remoteFlag = &cli.StringFlag{
		Name:  "remote",
		Usage: "rippled json-rpc or websocket endpoint (default: [RPC] Endpoint of the config)",
	}
	offlineFlag = &cli.BoolFlag{
		Name:  "offline",
		Usage: "do not consult the ledger, only rules decidable from the record itself are checked",
	}
	noCacheFlag = &cli.BoolFlag{
		Name:  "nocache",
		Usage: "bypass the local ledger entry cache",
	}

	validateCommand = &cli.Command{
		Action:    validateAction,
		Name:      "validate",
		Usage:     "check a transaction against the semantic rules of its type",
		ArgsUsage: "[json|file]",
		Flags: []cli.Flag{
			fileFlag,
			draftFlag,
			remoteFlag,
			offlineFlag,
			noCacheFlag,
		},
	}
)

type closer func()

type remoteReader interface {
	validate.LedgerReader
	Close()
}

func dialRemote(ctx *cli.Context, config *params.Config) (remoteReader, error) {
	endpoint := ctx.String(remoteFlag.Name)
	if endpoint == "" {
		endpoint = config.RPC.Endpoint
	}
	if source.IsWebsocketEndpoint(endpoint) {
		return source.DialWSReader(ctx.Context, endpoint, config.RPC.Timeout())
	}
	return source.NewRPCReader(endpoint, config.RPC.Timeout()), nil
}

// newLedgerReader builds rpc or websocket reader, optionally fronted by the leveldb cache
func newLedgerReader(ctx *cli.Context, config *params.Config) (validate.LedgerReader, closer, error) {
	remote, err := dialRemote(ctx, config)
	if err != nil {
		return nil, nil, err
	}
	cacheConfig := config.Cache
	if ctx.Bool(noCacheFlag.Name) || cacheConfig.Disable {
		return remote, remote.Close, nil
	}
	db, err := leveldb.OpenForNetwork(cacheConfig.Path(), cacheConfig.CacheMB, cacheConfig.Handles, config.Network.Name)
	if err != nil {
		remote.Close()
		return nil, nil, err
	}
	log.Debug("use ledger entry cache", "path", db.Path(), "ttl", cacheConfig.TTL())
	cached := source.NewCachedReader(db, remote, cacheConfig.TTL())
	return cached, func() {
		_ = db.Close()
		remote.Close()
	}, nil
}

func validateAction(ctx *cli.Context) error {
	config := utils.SetupConfig(ctx)
	raw, err := readRecord(ctx)
	if err != nil {
		return err
	}
	tx, err := factory.CreateFromEnvelope(raw, sourceOf(ctx))
	if err != nil {
		return err
	}

	opts := validate.Options{Now: time.Now}
	if !ctx.Bool(offlineFlag.Name) {
		reader, closeReader, err := newLedgerReader(ctx, config)
		if err != nil {
			return err
		}
		defer closeReader()
		opts.Reader = reader
	}

	timeout := config.RPC.Timeout() * 3
	cctx, cancel := context.WithTimeout(ctx.Context, timeout)
	defer cancel()

	fmt.Fprintln(ctx.App.Writer, terminal.Sprint(tx, terminal.ShowHash))
	err = factory.Validate(cctx, tx, opts)
	var semantic *validate.SemanticError
	switch {
	case err == nil:
		fmt.Fprintln(ctx.App.Writer, "valid")
		return nil
	case errors.As(err, &semantic):
		return cli.Exit("invalid: "+semantic.Reason, 2)
	case errors.Is(err, validate.ErrNoLedgerReader):
		return cli.Exit("this transaction type needs the ledger, drop --offline", 1)
	default:
		return err
	}
}
