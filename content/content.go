// Package content embeds the shipped world so the binary runs without any
// files on disk.
package content

import "embed"

// World holds world.lua at its root; pass it to loader.LoadFS.
//
//go:embed *.lua
var World embed.FS
