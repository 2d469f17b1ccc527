// effectserve 在浏览器中预览效果
//
// 浏览器页面同时充当叠加层宿主和画布：叠加层节点以增量操作推送，
// 画布效果以绘制指令推送，每个连接拥有独立的引擎。
//
// 用法：
//
//	go run ./cmd/effectserve [--addr 127.0.0.1:8089]
//
// 然后打开 http://127.0.0.1:8089/?effect=magic-sparkles&anchored=1
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gonewx/profilefx/data"
	"github.com/gonewx/profilefx/pkg/config"
	"github.com/gonewx/profilefx/pkg/bridge"
	"github.com/gonewx/profilefx/pkg/embedded"
)

const shutdownTimeout = 5 * time.Second

func main() {
	addr := flag.String("addr", "", "listen address (default from data/viewer.yaml or PROFILEFX_ADDR)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *addr); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, addr string) error {
	embedded.Init(data.FS)

	cfg, err := config.LoadEmbeddedViewerConfig()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Addr
	}
	presets, err := config.LoadEmbeddedPresets()
	if err != nil {
		return err
	}
	web, err := embedded.Sub("data/web")
	if err != nil {
		return fmt.Errorf("open web assets: %w", err)
	}

	hub := bridge.NewHub()
	mux := http.NewServeMux()
	mux.Handle("/ws", bridge.NewHandler(hub, bridge.HandlerConfig{
		Presets: presets,
		Tick:    time.Second / time.Duration(cfg.TPS),
	}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "ok %d\n", hub.Count())
	})
	mux.Handle("/", http.FileServerFS(web))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("[Serve] listening on http://%s (%d presets)", addr, len(presets.Presets))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("[Serve] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// 被升级的连接不受 Shutdown 管理，需要单独关闭
	hub.CloseAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
