package emulator

import (
	"strings"
	"testing"
	"xqemulauncher/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildArgsOrder(t *testing.T) {
	cfg := &models.Config{
		XqemuPath:  "/opt/xqemu/xqemu",
		MCPXPath:   "/roms/mcpx.bin",
		FlashPath:  "/roms/flash.bin",
		HDDPath:    "/images/hdd.img",
		DVDPresent: true,
		DVDPath:    "/images/disc.iso",
	}

	expected := []string{
		"-cpu", "pentium3",
		"-machine", "xbox,bootrom=/roms/mcpx.bin",
		"-m", "64",
		"-bios", "/roms/flash.bin",
		"-net", "nic,model=nvnet",
		"-net", "user",
		"-monitor", "stdio",
		"-drive", "file=/images/hdd.img,index=0,media=disk",
		"-drive", "index=1,media=cdrom,file=/images/disc.iso",
	}
	assert.Equal(t, expected, BuildArgs(cfg))
}

func TestBuildArgsShortAnimation(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.ShortBootAnimation = true

	args := BuildArgs(cfg)
	assert.Contains(t, args, "xbox,bootrom=/path/to/mcpx.bin,short_animation")
}

// With no disc present the secondary drive is still declared as a CD-ROM,
// just without an attached file, and the disc path appears nowhere.
func TestBuildArgsNoDisc(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.DVDPresent = false
	cfg.ShortBootAnimation = true

	args := BuildArgs(cfg)
	assert.Contains(t, args, "index=1,media=cdrom")
	for _, arg := range args {
		assert.False(t, strings.Contains(arg, cfg.DVDPath),
			"disc path leaked into argument %q", arg)
	}
}
