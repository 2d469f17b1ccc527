// effectschema 输出效果设置的 JSON Schema
//
// 用法：
//
//	go run ./cmd/effectschema [-o settings.schema.json]
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/gonewx/profilefx/internal/effectcfg"
)

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	data, err := json.MarshalIndent(effectcfg.Schema(), "", "  ")
	if err != nil {
		log.Fatalf("marshal schema: %v", err)
	}
	data = append(data, '\n')

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("schema written to %s", *out)
}
