package utils

import (
	"os"
	"path/filepath"

	"github.com/anyswap/xrpl-txmodel/params"
	"github.com/urfave/cli/v2"
)

const buildInfoKey = "build"

// BuildInfo identifies a binary, git fields are stamped by the linker
type BuildInfo struct {
	Client    string
	GitCommit string
	GitDate   string
}

// NewApp creates an app whose version names the build's commit
func NewApp(info BuildInfo, usage string) *cli.App {
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Usage = usage
	app.Version = params.VersionWithCommit(info.GitCommit, info.GitDate)
	app.Metadata = map[string]interface{}{buildInfoKey: info}
	return app
}

func buildInfo(app *cli.App) BuildInfo {
	info, _ := app.Metadata[buildInfoKey].(BuildInfo)
	if info.Client == "" {
		info.Client = app.Name
	}
	return info
}
