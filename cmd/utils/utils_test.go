package utils

import (
	"bytes"
	"testing"

	"github.com/anyswap/xrpl-txmodel/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestNewApp(t *testing.T) {
	info := BuildInfo{Client: "xrplTools", GitCommit: "0123abcdef456789", GitDate: "20240601"}
	app := NewApp(info, "usage")
	assert.Equal(t, params.VersionWithCommit("0123abcdef456789", "20240601"), app.Version)
	assert.Contains(t, app.Version, "-0123abcd")
	assert.Equal(t, info, buildInfo(app))

	bare := cli.NewApp()
	bare.Name = "tool"
	assert.Equal(t, BuildInfo{Client: "tool"}, buildInfo(bare))
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	app := NewApp(BuildInfo{Client: "xrplTools", GitCommit: "0123abcdef456789", GitDate: "20240601"}, "usage")
	app.Writer = &buf
	app.Commands = []*cli.Command{VersionCommand}
	require.NoError(t, app.Run([]string{"xrplTools", "version"}))

	out := buf.String()
	assert.Contains(t, out, "Xrpltools\n")
	assert.Contains(t, out, "Version: "+params.VersionWithMeta()+"\n")
	assert.Contains(t, out, "Git Commit: 0123abcdef456789\n")
	assert.Contains(t, out, "Git Commit Date: 20240601\n")
}
