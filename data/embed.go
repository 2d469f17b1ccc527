// Package data 嵌入预览程序使用的配置、预设和网页
//
// //go:embed 只能嵌入当前包目录及其子目录的文件，
// 因此声明放在 data/ 目录内，桌面端、移动端和预览服务器共用。
package data

import "embed"

//go:embed viewer.yaml presets.yaml web
var FS embed.FS
