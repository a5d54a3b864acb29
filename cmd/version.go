package main

import (
	"fmt"

	"github.com/orbitbridge/depositkit"
	"github.com/orbitbridge/depositkit/config"
	"github.com/urfave/cli/v2"
)

func versionCmd(cliCtx *cli.Context) error {
	depositkit.PrintVersion(cliCtx.App.Writer)

	return nil
}

func schemaCmd(cliCtx *cli.Context) error {
	schema, err := config.JSONSchemaString()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cliCtx.App.Writer, schema)
	return err
}
