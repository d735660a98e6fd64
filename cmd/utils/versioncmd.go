package utils

import (
	"fmt"
	"runtime"

	"github.com/anyswap/xrpl-txmodel/params"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// VersionCommand version subcommand
	VersionCommand = &cli.Command{
		Action:    version,
		Name:      "version",
		Usage:     "Print version numbers",
		ArgsUsage: " ",
		Description: `
The output of this command is supposed to be machine-readable.
`,
	}
)

func version(ctx *cli.Context) error {
	w := ctx.App.Writer
	info := buildInfo(ctx.App)
	fmt.Fprintln(w, cases.Title(language.English).String(info.Client))
	fmt.Fprintln(w, "Version:", params.VersionWithMeta())
	if info.GitCommit != "" {
		fmt.Fprintln(w, "Git Commit:", info.GitCommit)
	}
	if info.GitDate != "" {
		fmt.Fprintln(w, "Git Commit Date:", info.GitDate)
	}
	fmt.Fprintln(w, "Architecture:", runtime.GOARCH)
	fmt.Fprintln(w, "Go Version:", runtime.Version())
	fmt.Fprintln(w, "Operating System:", runtime.GOOS)
	return nil
}
