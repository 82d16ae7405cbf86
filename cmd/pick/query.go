// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/pick/intersect"
	"cogentcore.org/pick/math32"
	"cogentcore.org/pick/math32/minmax"
	"cogentcore.org/pick/math64"
	"cogentcore.org/pick/scene"
	"cogentcore.org/pick/sceneio"
	"cogentcore.org/pick/shape"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// queryScene loads the scene, runs one box-select query through the
// chosen camera, and prints the hits.
func queryScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx.String("scene"))
	if err != nil {
		return err
	}
	cam, err := sceneCamera(sc, ctx.String("camera"))
	if err != nil {
		return err
	}
	x0, y0, x1, y1, err := queryRect(cam, ctx.String("rect"))
	if err != nil {
		return err
	}
	hits := scene.PickRect(sc, cam, x0, y0, x1, y1)
	if ctx.Bool("json") {
		return printJSON(ctx.App.Writer, hits)
	}
	printTable(ctx.App.Writer, hits)
	return nil
}

// listShapes prints the shape kinds a scene file can use.
func listShapes(ctx *cli.Context) error {
	setupLogging(ctx)
	for _, k := range sceneio.ShapeKinds {
		fmt.Fprintln(ctx.App.Writer, k)
	}
	return nil
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return demoScene(), nil
	}
	return sceneio.Load(path)
}

func sceneCamera(sc *scene.Scene, name string) (*scene.Camera, error) {
	if name == "" {
		if len(sc.Cameras) == 0 {
			return nil, fmt.Errorf("scene %q has no cameras", sc.Name)
		}
		return sc.Cameras[0], nil
	}
	return sc.CameraByName(name)
}

// queryRect parses an x0,y0,x1,y1 rectangle, defaulting to the
// camera's full viewport, or to the full NDC range for a camera
// with a zero-extent viewport.
func queryRect(cam *scene.Camera, rect string) (x0, y0, x1, y1 float64, err error) {
	if rect == "" {
		vp := cam.Viewport
		if vp.Width <= 0 || vp.Height <= 0 {
			return -1, -1, 1, 1, nil
		}
		return vp.X, vp.Y, vp.X + vp.Width, vp.Y + vp.Height, nil
	}
	parts := strings.Split(rect, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("rect must be x0,y0,x1,y1: %q", rect)
	}
	vals := [4]float64{}
	for i, p := range parts {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, 0, fmt.Errorf("rect coordinate %q: %w", p, err)
		}
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}

// printTable writes the hits as a table, nearest first, with the
// overall ratio range in the footer.
func printTable(w io.Writer, hits intersect.Intersections) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"#", "Ratio", "World", "Node", "Inst"})
	rng := minmax.F64{}
	rng.SetInfinity()
	for i, h := range hits {
		rng.FitValInRange(h.Ratio)
		table.Append([]string{
			strconv.Itoa(i),
			fmt.Sprintf("%.6f", h.Ratio),
			fmt.Sprintf("(%.4g, %.4g, %.4g)", h.WorldCoord.X, h.WorldCoord.Y, h.WorldCoord.Z),
			strings.Join(h.NodePath, "/"),
			strconv.Itoa(int(h.Instance)),
		})
	}
	rngStr := "none"
	if rng.IsValid() {
		rngStr = fmt.Sprintf("%.6f .. %.6f", rng.Min, rng.Max)
	}
	table.SetFooter([]string{"", "", "", "ratio range", rngStr})
	table.Render()
}

// hitJSON is the compact JSON form of one hit, matching the wire
// format of the pick server.
type hitJSON struct {
	World    math64.Vector3 `json:"world"`
	Ratio    float64        `json:"ratio"`
	NodePath []string       `json:"nodePath"`
	Instance uint32         `json:"instance"`
}

func printJSON(w io.Writer, hits intersect.Intersections) error {
	out := make([]hitJSON, len(hits))
	for i, h := range hits {
		out[i] = hitJSON{World: h.WorldCoord, Ratio: h.Ratio, NodePath: h.NodePath, Instance: h.Instance}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(out)
}

// demoScene is the scene used when no --scene file is given: a
// ground plane with a crate and a ball on either side, viewed
// through an 800x600 camera.
func demoScene() *scene.Scene {
	sc := scene.NewScene("demo")
	ground := sc.SetMesh(shape.NewMesh("ground", shape.NewPlane(math32.Y, 10, 10)))
	crate := sc.SetMesh(shape.NewMesh("crate", shape.NewBox(1, 1, 1)))
	ball := sc.SetMesh(shape.NewMesh("ball", shape.NewSphere(0.5, 16)))

	cam := scene.NewCamera("main")
	cam.SetPos(0, 3, 8)
	cam.Viewport.Width = 800
	cam.Viewport.Height = 600
	sc.SetCamera(cam)

	gnd := scene.NewChild[*scene.Geometry](sc, "ground")
	gnd.SetMesh(ground)

	cr := scene.NewChild[*scene.Transform](sc, "crate")
	cr.SetPos(-1.5, 0.5, 0)
	scene.NewChild[*scene.Geometry](cr, "solid").SetMesh(crate)

	bl := scene.NewChild[*scene.Transform](sc, "ball")
	bl.SetPos(1.5, 0.5, 0)
	scene.NewChild[*scene.Geometry](bl, "solid").SetMesh(ball)
	return sc
}
