// Command rescachedemo exercises the rescache aging cache against a
// directory of images. Each simulated frame re-adds the working set
// (keeping cached decodes alive) and then runs a collection sweep, the
// way a renderer would on its idle tick.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gogpu/rescache"
	"github.com/gogpu/rescache/metrics/prometheus"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

func main() {
	var (
		dir         = flag.String("dir", ".", "directory of images to cache")
		frames      = flag.Int("frames", 30, "number of simulated frames")
		frameDelay  = flag.Duration("frame-delay", 0, "pause between frames")
		metricsAddr = flag.String("metrics-addr", "", "serve prometheus metrics on this address (empty: disabled)")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	rescache.SetLogger(logger)

	reg := promclient.NewRegistry()
	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, reg, logger)
	}

	cache := rescache.New[string, image.Image]()
	cache.SetName("images")
	cache.SetValueKind(rescache.CopySemantics(cloneImage, releaseImage))
	cache.SetMetrics(prometheus.New(reg, "images"))

	paths, err := listImages(*dir)
	if err != nil {
		logger.Error("scanning directory failed", "dir", *dir, "err", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		logger.Warn("no images found", "dir", *dir)
	}

	for frame := 0; frame < *frames; frame++ {
		for _, p := range paths {
			if _, ok := cache.GetItem(p); ok {
				cache.AddItem(p, nil) // keep-alive; the value is ignored
				continue
			}
			img, err := loadImage(p)
			if err != nil {
				logger.Warn("decode failed", "path", p, "err", err)
				continue
			}
			cache.AddItem(p, img)
		}

		removed := cache.CollectItems()
		logger.Debug("frame complete",
			"frame", frame, "cached", cache.Len(), "collected", removed)

		if *frameDelay > 0 {
			time.Sleep(*frameDelay)
		}
	}

	st := cache.Stats()
	fmt.Printf("frames=%d items=%d hits=%d misses=%d adds=%d keepalives=%d collected=%d hitrate=%.2f\n",
		*frames, st.Items, st.Hits, st.Misses, st.Adds, st.KeepAlives, st.Collected, st.HitRate())

	cache.Clear()
}

// listImages returns every file under dir with a known image extension.
func listImages(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if imageExts[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// cloneImage deep-copies a decoded image into a fresh RGBA buffer, so the
// cache owns pixel data independent of the caller's.
func cloneImage(src image.Image) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

// releaseImage is the copy-semantics release hook. Pixel memory is
// reclaimed by the garbage collector; the hook exists because the copy
// variant requires one.
func releaseImage(image.Image) {}

func serveMetrics(addr string, reg *promclient.Registry, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server failed", "err", err)
	}
}
