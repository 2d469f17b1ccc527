// effectcheck 校验预设和预览配置
//
// 默认检查嵌入的数据文件；指定 -dir 时检查磁盘上的目录（编辑 YAML 后无需重新编译）。
//
// 用法：
//
//	go run ./cmd/effectcheck [-dir data]
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/gonewx/profilefx/data"
	"github.com/gonewx/profilefx/internal/effectcfg"
	"github.com/gonewx/profilefx/pkg/config"
)

func main() {
	dir := flag.String("dir", "", "data directory on disk (default: embedded data)")
	flag.Parse()

	var fsys fs.FS = data.FS
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}
	if failures := check(fsys); failures > 0 {
		fmt.Printf("❌ %d 项检查失败\n", failures)
		os.Exit(1)
	}
	fmt.Printf("✅ 全部检查通过\n")
}

func check(fsys fs.FS) int {
	failures := 0

	raw, err := fs.ReadFile(fsys, "viewer.yaml")
	if err != nil {
		fmt.Printf("❌ 读取 viewer.yaml 失败: %v\n", err)
		failures++
	} else if cfg, err := config.ParseViewerConfig(raw); err != nil {
		fmt.Printf("❌ viewer.yaml: %v\n", err)
		failures++
	} else {
		fmt.Printf("✅ viewer.yaml: %dx%d @ %d TPS\n", cfg.Width, cfg.Height, cfg.TPS)
	}

	if _, err := fs.Stat(fsys, "web/index.html"); err != nil {
		fmt.Printf("❌ web/index.html 缺失: %v\n", err)
		failures++
	}

	raw, err = fs.ReadFile(fsys, "presets.yaml")
	if err != nil {
		fmt.Printf("❌ 读取 presets.yaml 失败: %v\n", err)
		return failures + 1
	}
	catalog, err := config.ParsePresets(raw)
	if err != nil {
		fmt.Printf("❌ presets.yaml: %v\n", err)
		return failures + 1
	}
	fmt.Printf("✅ 预设数量: %d\n", len(catalog.Presets))

	for _, p := range catalog.Presets {
		d, err := p.Descriptor()
		if err != nil {
			fmt.Printf("❌ %s: %v\n", p.Name, err)
			failures++
			continue
		}
		cfg := effectcfg.Resolve(d)
		path := effectcfg.Classify(d, cfg, p.Anchored)
		fmt.Printf("   %-20s %-8s kind=%-14s count=%-3d colors=%d\n", p.Name, path, effectcfg.KindFor(cfg), cfg.Count, len(cfg.Palette()))
	}
	return failures
}
