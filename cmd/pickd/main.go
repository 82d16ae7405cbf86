// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Pickd serves box-select pick queries over WebSocket for a TOML
// scene description, reloading the scene whenever the file changes.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/pick/base/errors"
	"cogentcore.org/pick/base/logx"
	"cogentcore.org/pick/server"
	"github.com/urfave/cli"
)

func main() {
	if errors.Log(newApp().Run(os.Args)) != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "pickd"
	app.Usage = "serve box-select pick queries over WebSocket"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "scene, s",
			Usage: "TOML scene description to serve",
		},
		cli.StringFlag{
			Name:  "addr, a",
			Value: ":8391",
			Usage: "address to listen on",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable trace logging",
		},
	}
	app.Action = serve
	return app
}

func serve(ctx *cli.Context) error {
	logx.SetVerbose(ctx.Bool("v"), ctx.Bool("vv"))
	slog.SetLogLoggerLevel(logx.UserLevel)

	path := ctx.String("scene")
	if path == "" {
		return errors.New("pickd: --scene is required")
	}
	sv, err := server.New(path)
	if err != nil {
		return err
	}
	if err := sv.Watch(); err != nil {
		return err
	}
	defer sv.Close()
	return sv.ListenAndServe(ctx.String("addr"))
}
