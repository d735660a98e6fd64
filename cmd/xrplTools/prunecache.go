package main

import (
	"fmt"

	"github.com/anyswap/xrpl-txmodel/cmd/utils"
	"github.com/anyswap/xrpl-txmodel/ledger/source"
	"github.com/anyswap/xrpl-txmodel/leveldb"
	"github.com/urfave/cli/v2"
)

var pruneCacheCommand = &cli.Command{
	Action: pruneCacheAction,
	Name:   "prunecache",
	Usage:  "delete expired entries from the local ledger entry cache",
}

func pruneCacheAction(ctx *cli.Context) error {
	config := utils.SetupConfig(ctx)
	cacheConfig := config.Cache
	if cacheConfig.Disable {
		return cli.Exit("cache is disabled", 1)
	}
	db, err := leveldb.OpenForNetwork(cacheConfig.Path(), cacheConfig.CacheMB, cacheConfig.Handles, config.Network.Name)
	if err != nil {
		return err
	}
	defer db.Close()

	count, err := source.NewCachedReader(db, nil, cacheConfig.TTL()).Prune()
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "pruned %d entries from %s\n", count, db.Path())
	return nil
}
