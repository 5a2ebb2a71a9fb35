package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "/path/to/xqemu", cfg.XqemuPath)
	assert.Equal(t, "/path/to/mcpx.bin", cfg.MCPXPath)
	assert.Equal(t, "/path/to/flash.bin", cfg.FlashPath)
	assert.Equal(t, "/path/to/hdd.img", cfg.HDDPath)
	assert.Equal(t, "/path/to/disc.iso", cfg.DVDPath)
	assert.True(t, cfg.HDDLocked)
	assert.True(t, cfg.DVDPresent)
	assert.False(t, cfg.ShortBootAnimation)
}

func TestDefaultConfigReturnsFreshRecord(t *testing.T) {
	first := DefaultConfig()
	first.XqemuPath = "/usr/bin/xqemu"

	second := DefaultConfig()
	assert.Equal(t, "/path/to/xqemu", second.XqemuPath)
}
