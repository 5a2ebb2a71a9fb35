package models

// Config represents the launcher configuration for an xqemu instance.
// The JSON keys are the on-disk settings document format.
type Config struct {
	XqemuPath          string `json:"xqemu_path"` // emulator executable
	MCPXPath           string `json:"mcpx_path"`  // boot ROM image
	FlashPath          string `json:"flash_path"` // flash BIOS image
	HDDPath            string `json:"hdd_path"`   // hard disk image, attached as drive index 0
	HDDLocked          bool   `json:"hdd_locked"`
	DVDPresent         bool   `json:"dvd_present"`
	DVDPath            string `json:"dvd_path"` // disc image, attached to drive index 1 when DVDPresent
	ShortBootAnimation bool   `json:"short_anim"`
}

// DefaultConfig returns the default launcher configuration. The path fields
// are placeholders and are only validated when the emulator is started.
func DefaultConfig() *Config {
	return &Config{
		XqemuPath:          "/path/to/xqemu",
		MCPXPath:           "/path/to/mcpx.bin",
		FlashPath:          "/path/to/flash.bin",
		HDDPath:            "/path/to/hdd.img",
		HDDLocked:          true,
		DVDPresent:         true,
		DVDPath:            "/path/to/disc.iso",
		ShortBootAnimation: false,
	}
}
