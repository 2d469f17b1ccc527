// effectterm 在终端中预览效果
//
// 画布效果按字符单元采样绘制，叠加层和爆发效果的节点直接画到同一个缓冲区。
//
// 用法：
//
//	go run ./cmd/effectterm [--effect matrix-rain] [--auto-play 10s]
//
// 按键：←/→ 切换预设，空格重新应用，q/Esc 退出
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/profilefx/data"
	"github.com/gonewx/profilefx/internal/effectcfg"
	"github.com/gonewx/profilefx/pkg/anim"
	"github.com/gonewx/profilefx/pkg/burst"
	"github.com/gonewx/profilefx/pkg/components"
	"github.com/gonewx/profilefx/pkg/config"
	"github.com/gonewx/profilefx/pkg/effects"
	"github.com/gonewx/profilefx/pkg/embedded"
	"github.com/gonewx/profilefx/pkg/nodehost"
	"github.com/gonewx/profilefx/pkg/overlay"
	"github.com/gonewx/profilefx/pkg/render"
)

const bio = "@someone - profile bio"

var (
	bioColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	statusColor = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	nodeColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

type viewer struct {
	screen  tcell.Screen
	surface *render.TermSurface
	queue   *anim.Queue
	host    *nodehost.Host
	engine  *effects.Engine
	presets *config.PresetCatalog
	index   int
	clock   time.Duration
}

func main() {
	effect := flag.String("effect", "", "preset to start with")
	autoPlay := flag.Duration("auto-play", 0, "switch to the next preset every interval, 0 disables")
	logFile := flag.String("log", "", "write logs to this file (the terminal is taken by the preview)")
	flag.Parse()

	// 终端被预览占用，日志默认丢弃
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	embedded.Init(data.FS)
	presets, err := config.LoadEmbeddedPresets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	v := newViewer(screen, presets)
	if *effect != "" {
		if i, ok := presets.Find(*effect); ok {
			v.index = i
		}
	}
	v.apply()
	v.run(*autoPlay)
	v.engine.Close()
}

func newViewer(screen tcell.Screen, presets *config.PresetCatalog) *viewer {
	v := &viewer{
		screen:  screen,
		surface: render.NewTermSurface(screen),
		queue:   anim.NewQueue(),
		presets: presets,
	}
	v.host = nodehost.New(v.queue)
	v.engine = effects.New(effects.Options{
		Scheduler: v.queue,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		Surface:   v.surface,
		Host:      v.host,
		Viewport:  burst.ViewportFunc(v.surface.Size),
	})
	return v
}

// AnchorRect 简介文字位于屏幕中央
func (v *viewer) AnchorRect() (components.Rect, bool) {
	w, h := v.surface.Size()
	tw := float64(len(bio)) * render.CellWidth
	return components.Rect{X: (w - tw) / 2, Y: h/2 - render.CellHeight, W: tw, H: render.CellHeight}, w > 0 && h > 0
}

func (v *viewer) apply() {
	p := v.presets.Presets[v.index]
	d, err := p.Descriptor()
	if err != nil {
		d = effectcfg.Descriptor{EffectTypeName: p.Name, Category: p.Category}
	}
	v.engine.Close()
	if p.Anchored {
		v.engine.SetAnchor(overlay.AnchorRectProvider(v))
	} else {
		v.engine.SetAnchor(nil)
	}
	v.surface.Clear()
	path := v.engine.Apply(d)
	log.Printf("[Term] %q -> %s", p.Name, path)
}

func (v *viewer) step(n int) {
	count := len(v.presets.Presets)
	v.index = ((v.index+n)%count + count) % count
	v.apply()
}

func (v *viewer) run(autoPlay time.Duration) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	start := time.Now()
	lastSwitch := start

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
					ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return
				case ev.Key() == tcell.KeyRight, ev.Key() == tcell.KeyRune && ev.Rune() == 'n':
					v.step(1)
					lastSwitch = time.Now()
				case ev.Key() == tcell.KeyLeft:
					v.step(-1)
					lastSwitch = time.Now()
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					v.apply()
				}
			case *tcell.EventResize:
				v.screen.Sync()
				v.surface.Resize()
				// 画布尺寸变化，重新创建效果
				v.apply()
			}
		case <-ticker.C:
			if autoPlay > 0 && time.Since(lastSwitch) >= autoPlay {
				v.step(1)
				lastSwitch = time.Now()
			}
			v.clock = time.Since(start)
			v.queue.Tick(v.clock)
			v.draw()
		}
	}
}

func (v *viewer) draw() {
	// 画布效果依赖 Fade 留下拖尾，其他路径每帧重画
	if v.engine.Path() != effectcfg.PathRaster {
		v.surface.Clear()
	}
	for _, p := range v.host.Layout(v.clock) {
		drawNode(v.surface, p)
	}
	if r, ok := v.AnchorRect(); ok {
		v.surface.Text(r.X, r.Y+render.CellHeight/2, bio, render.CellHeight, bioColor, 1)
	}
	p := v.presets.Presets[v.index]
	status := fmt.Sprintf(" %d/%d %s [%s]  <-/-> switch  space restart  q quit", v.index+1, len(v.presets.Presets), p.Name, v.engine.Path())
	v.surface.Text(0, render.CellHeight/2, status, render.CellHeight, statusColor, 1)
	v.surface.Flush()
}

func drawNode(s *render.TermSurface, p nodehost.Placed) {
	if p.Opacity <= 0 {
		return
	}
	st := p.Node.Style
	if st.Color.A == 0 {
		st.Color = nodeColor
	}
	switch p.Node.Kind {
	case components.NodeCircle:
		r := max(st.Width/2*p.Scale, render.CellWidth/2)
		if st.Outline {
			s.StrokeCircle(p.X+st.Width/2, p.Y+st.Height/2, r, 1, st.Color, p.Opacity)
		} else {
			s.FillCircle(p.X+st.Width/2, p.Y+st.Height/2, r, st.Color, p.Opacity)
		}
	case components.NodeGlyph:
		s.Text(p.X, p.Y+render.CellHeight/2, st.Text, render.CellHeight, st.Color, p.Opacity)
	}
}
