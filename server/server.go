// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server provides a WebSocket pick-query service over a
// scene, optionally backed by a TOML scene description that is
// reloaded live when the file changes on disk. Each query runs its
// own intersector, so concurrent connections share one immutable
// scene under a read lock, and reloads swap it under a write lock.
package server

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"cogentcore.org/pick/base/errors"
	"cogentcore.org/pick/math64"
	"cogentcore.org/pick/scene"
	"cogentcore.org/pick/sceneio"
	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
)

// Request is one pick query sent over a WebSocket connection.
type Request struct {

	// Camera is the name of the scene camera to query through.
	// Empty takes the scene's first camera.
	Camera string `json:"camera,omitempty"`

	// XMin, YMin, XMax, YMax bound the query rectangle in the
	// camera's viewport coordinates.
	XMin float64 `json:"xMin"`
	YMin float64 `json:"yMin"`
	XMax float64 `json:"xMax"`
	YMax float64 `json:"yMax"`
}

// Hit is one intersection in a [Response].
type Hit struct {

	// World is the world-space hit coordinate.
	World math64.Vector3 `json:"world"`

	// Ratio is the position of the hit along the query segment,
	// from 0 at the near end to 1 at the far end.
	Ratio float64 `json:"ratio"`

	// NodePath is the scene path of the hit drawable, root first.
	NodePath []string `json:"nodePath"`

	// Instance is the instance index of the hit.
	Instance uint32 `json:"instance"`
}

// Response answers one [Request].
type Response struct {

	// Hits are the intersections, sorted nearest first.
	Hits []Hit `json:"hits"`

	// Error describes why a query failed.
	Error string `json:"error,omitempty"`
}

// Service answers pick queries against a scene. Use [New] to serve
// a TOML scene file with live reload, or [NewFromScene] to serve an
// in-memory scene.
type Service struct {

	// Path is the TOML scene description backing the service,
	// empty for an in-memory scene.
	Path string

	mu    sync.RWMutex
	scene *scene.Scene

	upgrader websocket.Upgrader
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// New returns a service backed by the given TOML scene file,
// loading it immediately.
func New(path string) (*Service, error) {
	sv := &Service{Path: path}
	if err := sv.Reload(); err != nil {
		return nil, err
	}
	return sv, nil
}

// NewFromScene returns a service serving the given scene directly,
// with no backing file.
func NewFromScene(sc *scene.Scene) *Service {
	return &Service{scene: sc}
}

// Scene returns the currently served scene.
func (sv *Service) Scene() *scene.Scene {
	sv.mu.RLock()
	defer sv.mu.RUnlock()
	return sv.scene
}

// SetScene replaces the scene served to new queries.
func (sv *Service) SetScene(sc *scene.Scene) {
	sv.mu.Lock()
	sv.scene = sc
	sv.mu.Unlock()
}

// Reload reloads the scene from the backing file. The served scene
// is unchanged if the load fails.
func (sv *Service) Reload() error {
	sc, err := sceneio.Load(sv.Path)
	if err != nil {
		return err
	}
	sv.SetScene(sc)
	slog.Info("scene loaded", "file", sv.Path, "meshes", len(sc.Meshes), "cameras", len(sc.Cameras))
	return nil
}

// Watch starts reloading the scene whenever the backing file
// changes on disk. Editors typically replace the file when saving,
// so the containing directory is watched and events are filtered
// down to the scene file. Use [Service.Close] to stop watching.
func (sv *Service) Watch() error {
	if sv.Path == "" {
		return errors.New("server: no scene file to watch")
	}
	if sv.watcher != nil {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(sv.Path)); err != nil {
		w.Close()
		return err
	}
	sv.watcher = w
	sv.done = make(chan struct{})
	go sv.watch()
	return nil
}

func (sv *Service) watch() {
	base := filepath.Base(sv.Path)
	var last time.Time
	for {
		select {
		case <-sv.done:
			return
		case event, ok := <-sv.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if time.Since(last) < 100*time.Millisecond {
				continue
			}
			last = time.Now()
			if err := sv.Reload(); err != nil {
				slog.Error("scene reload failed", "file", sv.Path, "err", err)
			}
		case err, ok := <-sv.watcher.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

// Close stops the file watcher, if watching.
func (sv *Service) Close() error {
	if sv.watcher == nil {
		return nil
	}
	close(sv.done)
	err := sv.watcher.Close()
	sv.watcher = nil
	return err
}

// Pick runs one query against the served scene.
func (sv *Service) Pick(req Request) Response {
	sv.mu.RLock()
	defer sv.mu.RUnlock()
	sc := sv.scene
	if sc == nil {
		return Response{Error: "no scene loaded"}
	}
	var cam *scene.Camera
	if req.Camera == "" {
		if len(sc.Cameras) == 0 {
			return Response{Error: "scene has no cameras"}
		}
		cam = sc.Cameras[0]
	} else {
		var err error
		cam, err = sc.CameraByName(req.Camera)
		if err != nil {
			return Response{Error: err.Error()}
		}
	}
	hits := scene.PickRect(sc, cam, req.XMin, req.YMin, req.XMax, req.YMax)
	resp := Response{Hits: make([]Hit, len(hits))}
	for i, h := range hits {
		resp.Hits[i] = Hit{
			World:    h.WorldCoord,
			Ratio:    h.Ratio,
			NodePath: h.NodePath,
			Instance: h.Instance,
		}
	}
	return resp
}

// HandlePick upgrades the request to a WebSocket connection and
// answers pick queries until the client disconnects.
func (sv *Service) HandlePick(w http.ResponseWriter, r *http.Request) {
	conn, err := sv.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	defer conn.Close()
	slog.Debug("pick client connected", "remote", r.RemoteAddr)

	for {
		req := Request{}
		if err := conn.ReadJSON(&req); err != nil {
			slog.Debug("pick client disconnected", "remote", r.RemoteAddr, "err", err)
			return
		}
		if err := conn.WriteJSON(sv.Pick(req)); errors.Log(err) != nil {
			return
		}
	}
}

// Handler returns the HTTP handler exposing the service, with the
// /pick endpoint answering WebSocket pick queries.
func (sv *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/pick", sv.HandlePick)
	return mux
}

// ListenAndServe serves [Service.Handler] at the given address.
func (sv *Service) ListenAndServe(addr string) error {
	slog.Info("pick server listening", "addr", addr, "scene", sv.Path)
	return http.ListenAndServe(addr, sv.Handler())
}
