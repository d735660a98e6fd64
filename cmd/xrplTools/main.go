// Command xrplTools explains, validates and fingerprints ledger transactions and objects
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/anyswap/xrpl-txmodel/cmd/utils"
	"github.com/anyswap/xrpl-txmodel/log"
	"github.com/urfave/cli/v2"
)

var (
	// set with -ldflags "-X main.gitCommit=... -X main.gitDate=..."
	gitCommit = ""
	gitDate   = ""

	app = utils.NewApp(utils.BuildInfo{
		Client:    "xrplTools",
		GitCommit: gitCommit,
		GitDate:   gitDate,
	}, "the xrplTools command line interface")
)

func initApp() {
	app.Action = xrplTools
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		explainCommand,
		validateCommand,
		digestCommand,
		nftokenIDCommand,
		pruneCacheCommand,
		utils.VersionCommand,
	}
	app.Flags = append([]cli.Flag{
		utils.ConfigFileFlag,
		utils.DataDirFlag,
	}, utils.CommonLogFlags...)
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func xrplTools(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	_ = cli.ShowAppHelp(ctx)
	fmt.Println()
	return cli.Exit("please specify a sub command to run", 1)
}
