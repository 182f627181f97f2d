package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"github.com/gogpu/voronoi"
	"github.com/gogpu/voronoi/internal/frameloop"
)

const (
	maxWidth  = 1920
	maxHeight = 1080
)

// newMux serves the embedded page at / and the frame stream at /ws.
// Streams end when ctx is done.
func newMux(ctx context.Context, cfg voronoi.Config) *http.ServeMux {
	page, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", streamHandler(ctx, cfg))
	mux.Handle("/", http.FileServer(http.FS(page)))
	return mux
}

func streamHandler(ctx context.Context, cfg voronoi.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			voronoi.Logger().Warn("websocket accept failed", "err", err)
			return
		}
		defer c.CloseNow()

		log := voronoi.Logger().With("remote", r.RemoteAddr)
		log.Info("stream opened")

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		err = stream(ctx, c, cfg)

		switch websocket.CloseStatus(err) {
		case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			log.Info("stream closed")
		default:
			if errors.Is(err, context.Canceled) {
				c.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			log.Warn("stream failed", "err", err)
		}
	}
}

// surface holds the latest canvas size reported by the client.
type surface struct {
	size atomic.Uint64
}

func (s *surface) set(w, h int) {
	s.size.Store(uint64(w)<<32 | uint64(h))
}

func (s *surface) get() (w, h int) {
	v := s.size.Load()
	return int(v >> 32), int(v & 0xffffffff)
}

// parseSize reads a "WxH" message and clamps it to the streaming limits.
func parseSize(msg []byte) (w, h int, err error) {
	if _, err := fmt.Sscanf(string(msg), "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("bad size message %q: %w", msg, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("bad size %dx%d", w, h)
	}
	return min(w, maxWidth), min(h, maxHeight), nil
}

// stream reads size updates from c and writes PNG frames until the
// connection or ctx ends. Nothing is sent before the first size arrives.
func stream(ctx context.Context, c *websocket.Conn, cfg voronoi.Config) error {
	e, err := cfg.NewEngine()
	if err != nil {
		return err
	}
	d := frameloop.NewDriver(e, cfg)

	var surf surface
	readErr := make(chan error, 1)
	go func() {
		for {
			_, msg, err := c.Read(ctx)
			if err != nil {
				readErr <- err
				return
			}
			w, h, err := parseSize(msg)
			if err != nil {
				voronoi.Logger().Debug("ignoring message", "err", err)
				continue
			}
			surf.set(w, h)
		}
	}()

	var buf bytes.Buffer
	return frameloop.Run(ctx, cfg.FrameInterval(), func(now time.Time) error {
		select {
		case err := <-readErr:
			return err
		default:
		}
		w, h := surf.get()
		if w == 0 {
			return nil
		}
		buf.Reset()
		if err := png.Encode(&buf, d.Frame(now, w, h)); err != nil {
			return err
		}
		return c.Write(ctx, websocket.MessageBinary, buf.Bytes())
	})
}
