package main

import (
	"testing"
	"testing/fstest"

	"github.com/gonewx/profilefx/data"
)

func TestCheck_EmbeddedData(t *testing.T) {
	if n := check(data.FS); n != 0 {
		t.Errorf("embedded data has %d failures", n)
	}
}

func TestCheck_Failures(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want int
	}{
		{
			name: "nothing",
			fsys: fstest.MapFS{},
			want: 3,
		},
		{
			name: "bad viewer size",
			fsys: fstest.MapFS{
				"viewer.yaml":    {Data: []byte("width: -1\n")},
				"web/index.html": {Data: []byte("<html></html>")},
				"presets.yaml":   {Data: []byte("presets:\n  - name: sparkle\n")},
			},
			want: 1,
		},
		{
			name: "duplicate presets",
			fsys: fstest.MapFS{
				"viewer.yaml":    {Data: []byte("width: 100\n")},
				"web/index.html": {Data: []byte("<html></html>")},
				"presets.yaml":   {Data: []byte("presets:\n  - name: a\n  - name: a\n")},
			},
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := check(tt.fsys); got != tt.want {
				t.Errorf("check() = %d, want %d", got, tt.want)
			}
		})
	}
}
