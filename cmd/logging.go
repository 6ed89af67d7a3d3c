package cmd

import (
	"github.com/urfave/cli"

	"github.com/whitted-dev/go-raytracer/log"
)

var logger = log.New("raytracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("q") {
		log.SetLevel(log.Warning)
	}
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Debug)
	}
}
