package utils

import (
	"time"

	"github.com/anyswap/xrpl-txmodel/log"
	"github.com/anyswap/xrpl-txmodel/params"
	"github.com/urfave/cli/v2"
)

// common flags
var (
	// ConfigFileFlag --config
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	// DataDirFlag --datadir
	DataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory for the ledger cache and device id",
	}
	// LogFileFlag --log
	LogFileFlag = &cli.StringFlag{
		Name:  "log",
		Usage: "Specify log file, support rotate",
	}
	// LogRotationFlag --rotate
	LogRotationFlag = &cli.Uint64Flag{
		Name:  "rotate",
		Usage: "log rotation time (unit hour)",
		Value: 24,
	}
	// LogMaxAgeFlag --maxage
	LogMaxAgeFlag = &cli.Uint64Flag{
		Name:  "maxage",
		Usage: "log max age (unit hour)",
		Value: 720,
	}
	// VerbosityFlag --verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   4,
	}
	// JSONFormatFlag --json
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag --color
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: true,
	}

	// CommonLogFlags are the log flags of every command
	CommonLogFlags = []cli.Flag{
		VerbosityFlag,
		JSONFormatFlag,
		ColorFormatFlag,
		LogFileFlag,
		LogRotationFlag,
		LogMaxAgeFlag,
	}
)

// SetLogger set log level, json format, color format and log file.
// Flags set on the command line win over the [Log] section of the config.
func SetLogger(ctx *cli.Context, config *params.LogConfig) {
	logLevel := ctx.Uint64(VerbosityFlag.Name)
	jsonFormat := ctx.Bool(JSONFormatFlag.Name)
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	logFile := ctx.String(LogFileFlag.Name)
	rotation := ctx.Uint64(LogRotationFlag.Name)
	maxAge := ctx.Uint64(LogMaxAgeFlag.Name)
	if config != nil {
		if !ctx.IsSet(VerbosityFlag.Name) {
			logLevel = uint64(config.Verbosity)
		}
		if !ctx.IsSet(JSONFormatFlag.Name) {
			jsonFormat = config.JSONFormat
		}
		if !ctx.IsSet(LogFileFlag.Name) && config.File != "" {
			logFile = config.File
			rotation = config.RotationHours
			if config.MaxAgeHours > 0 {
				maxAge = config.MaxAgeHours
			}
		}
	}
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)
	if logFile != "" {
		err := log.SetLogFile(logFile, time.Duration(rotation)*time.Hour, time.Duration(maxAge)*time.Hour)
		if err != nil {
			log.Fatal("set log file failed", "file", logFile, "err", err)
		}
	}
}

// GetConfigFilePath specified by `-c|--config`
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}

// SetupConfig loads the config, sets the logger and applies the network settings
func SetupConfig(ctx *cli.Context) *params.Config {
	log.SetLogger(uint32(ctx.Uint64(VerbosityFlag.Name)), ctx.Bool(JSONFormatFlag.Name), ctx.Bool(ColorFormatFlag.Name))
	params.SetDataDir(ctx.String(DataDirFlag.Name))
	config := params.LoadConfig(GetConfigFilePath(ctx))
	SetLogger(ctx, config.Log)
	params.Apply(config)
	return config
}
