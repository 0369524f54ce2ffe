package cmd

import (
	"github.com/ebenpack/rtiaw/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("rtiaw")

func setupLogging(ctx *cli.Context) {
	log.SetLevel(log.ParseVerbosity(ctx.GlobalBool("v"), ctx.GlobalBool("vv")))
}
