package main

import (
	"io"
	"os"

	"github.com/orbitbridge/depositkit"
	depositkitcommon "github.com/orbitbridge/depositkit/common"
	"github.com/orbitbridge/depositkit/config"
	"github.com/orbitbridge/depositkit/log"
	"github.com/urfave/cli/v2"
)

const appName = "depositkit"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s), TOML or JSON. Later files override earlier ones",
		Required: false,
	}
	networkFlag = cli.StringFlag{
		Name:  config.FlagNetwork,
		Usage: "JSON L2 network descriptor, overrides NetworkFile of the config",
	}
	envFileFlag = cli.StringFlag{
		Name:  config.FlagEnvFile,
		Usage: "dotenv file with DEVNET_PRIVKEY, L1RPC and L2RPC (default .env when present)",
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Usage:    "Save final configuration into to the indicated path (name: depositkit_config.toml)",
		Required: false,
	}
	disableDefaultConfigVars = cli.BoolFlag{
		Name:     config.FlagDisableDefaultConfigVars,
		Usage:    "Disable default configuration variables, all of them must be defined on config files",
		Required: false,
	}
	allowDeprecatedFields = cli.BoolFlag{
		Name:     config.FlagAllowDeprecatedFields,
		Usage:    "Allow that config-files contains deprecated fields",
		Required: false,
	}
)

func main() {
	os.Exit(run(os.Args))
}

// run executes the app and maps the outcome to the process exit code
func run(args []string) int {
	if err := newApp(os.Stdout).Run(args); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Deposit an ERC20 token from the parent chain into an Orbit chain"
	app.Version = depositkit.Version
	app.Writer = w
	flags := []cli.Flag{
		&configFileFlag,
		&networkFlag,
		&envFileFlag,
		&saveConfigFlag,
		&disableDefaultConfigVars,
		&allowDeprecatedFields,
	}
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    depositkitcommon.DEPOSIT,
			Aliases: []string{},
			Usage:   "Approve the gateway and deposit the configured amount into L2",
			Action:  depositCmd,
			Flags:   flags,
		},
		{
			Name:    depositkitcommon.ESTIMATE,
			Aliases: []string{},
			Usage:   "Compute the deposit request without sending any transaction",
			Action:  estimateCmd,
			Flags:   flags,
		},
		{
			Name:    "schema",
			Aliases: []string{},
			Usage:   "Print the JSON schema of the configuration file",
			Action:  schemaCmd,
		},
	}
	return app
}
