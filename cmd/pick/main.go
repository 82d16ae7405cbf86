// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Pick runs box-select pick queries against triangle mesh scenes
// described in TOML files, printing the hits as a table or JSON.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/pick/base/errors"
	"cogentcore.org/pick/base/logx"
	"github.com/urfave/cli"
)

func main() {
	if errors.Log(newApp().Run(os.Args)) != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "pick"
	app.Usage = "run box-select pick queries against triangle mesh scenes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable trace logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "query",
			Usage: "run one pick query and print the hits",
			Description: `
Load a TOML scene description, build the pick polytope for a screen
rectangle through the chosen camera, and print every triangle hit,
sorted nearest first. Without --scene a built-in demo scene is used.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Usage: "TOML scene description to query",
				},
				cli.StringFlag{
					Name:  "camera, c",
					Usage: "camera name, the scene's first camera when empty",
				},
				cli.StringFlag{
					Name:  "rect, r",
					Usage: "query rectangle as x0,y0,x1,y1 in window coordinates, the full viewport when empty",
				},
				cli.BoolFlag{
					Name:  "json",
					Usage: "print hits as JSON instead of a table",
				},
			},
			Action: queryScene,
		},
		{
			Name:   "shapes",
			Usage:  "list the shape kinds usable in scene files",
			Action: listShapes,
		},
	}
	return app
}

// setupLogging maps the global verbosity flags onto the slog level
// used by all packages.
func setupLogging(ctx *cli.Context) {
	logx.SetVerbose(ctx.GlobalBool("v"), ctx.GlobalBool("vv"))
	slog.SetLogLoggerLevel(logx.UserLevel)
}
