package main

import (
	"os"

	"github.com/df07/go-recursive-raytracer/cmd"
	"github.com/df07/go-recursive-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-recursive-raytracer"
	app.Usage = "render scenes with a recursive monte carlo ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Render a built-in scene and write it as a plain PPM (P3) or PNG image.

Camera flags override the scene defaults. Rendering with the same seed
produces the same image regardless of the number of workers.`,
			ArgsUsage: "[scene]",
			Flags:     cmd.RenderFlags(),
			Action:    cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
