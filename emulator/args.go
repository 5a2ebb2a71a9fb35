package emulator

import "xqemulauncher/models"

// BuildArgs constructs the xqemu argument list for the given configuration.
// The order is fixed: CPU model, machine with boot ROM, memory size, flash
// BIOS, network adapter, monitor channel on stdin, then the two drives.
// Drive index 1 is always declared as a CD-ROM; the disc image file is only
// attached when the configuration marks a disc as present.
func BuildArgs(cfg *models.Config) []string {
	machine := "xbox,bootrom=" + cfg.MCPXPath
	if cfg.ShortBootAnimation {
		machine += ",short_animation"
	}

	cdrom := "index=1,media=cdrom"
	if cfg.DVDPresent {
		cdrom += ",file=" + cfg.DVDPath
	}

	return []string{
		"-cpu", "pentium3",
		"-machine", machine,
		"-m", "64",
		"-bios", cfg.FlashPath,
		"-net", "nic,model=nvnet",
		"-net", "user",
		"-monitor", "stdio",
		"-drive", "file=" + cfg.HDDPath + ",index=0,media=disk",
		"-drive", cdrom,
	}
}
