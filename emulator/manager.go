package emulator

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"xqemulauncher/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrAlreadyRunning is returned by Start while a previous instance is still
// active. The old process keeps its handle; it is never silently dropped.
var ErrAlreadyRunning = errors.New("emulator is already running")

// Manager controls a single xqemu child process
type Manager struct {
	mu         sync.Mutex
	cmd        *exec.Cmd
	done       chan struct{}
	instanceID string
}

// NewManager creates a new emulator manager
func NewManager() *Manager {
	return &Manager{}
}

// Start validates the configuration paths, builds the argument list and
// spawns xqemu. It returns as soon as the process has been created; the
// child's lifetime is observed by a background reaper so IsRunning tracks
// actual exit, not just whether a start was issued.
func (m *Manager) Start(cfg *models.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cmd != nil {
		return ErrAlreadyRunning
	}

	if err := validate(cfg); err != nil {
		return err
	}

	id := uuid.New().String()
	args := BuildArgs(cfg)
	cmd := exec.Command(cfg.XqemuPath, args...)

	// The monitor channel is bound to stdio, so the child inherits ours.
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Info().
		Str("instance", id).
		Str("executable", cfg.XqemuPath).
		Strs("args", args).
		Msg("starting emulator")

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", cfg.XqemuPath, err)
	}

	m.cmd = cmd
	m.done = make(chan struct{})
	m.instanceID = id
	go m.reap(cmd, m.done, id)

	return nil
}

// Stop requests termination of the running instance and releases the handle.
// It does not wait for the process to exit and is a no-op when nothing is
// running.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cmd == nil {
		return
	}

	log.Info().Str("instance", m.instanceID).Msg("stopping emulator")
	if err := m.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		// SIGTERM is not deliverable on all platforms
		if err := m.cmd.Process.Kill(); err != nil {
			log.Warn().Str("instance", m.instanceID).Err(err).Msg("failed to terminate emulator")
		}
	}

	m.cmd = nil
	m.instanceID = ""
}

// IsRunning reports whether an emulator instance is currently active.
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cmd != nil
}

// Wait blocks until the running instance exits. It returns immediately if
// nothing is running.
func (m *Manager) Wait() {
	m.mu.Lock()
	done := m.done
	m.mu.Unlock()

	if done != nil {
		<-done
	}
}

// reap waits on the child so it is not left as a zombie and clears the
// handle once it has exited.
func (m *Manager) reap(cmd *exec.Cmd, done chan struct{}, id string) {
	err := cmd.Wait()

	m.mu.Lock()
	if m.cmd == cmd {
		m.cmd = nil
		m.instanceID = ""
	}
	m.mu.Unlock()
	close(done)

	if err != nil {
		log.Warn().Str("instance", id).Err(err).Msg("emulator exited")
	} else {
		log.Info().Str("instance", id).Msg("emulator exited")
	}
}

// validate checks every path the launch requires, in argument order. The
// disc image is only required when a disc is marked present.
func validate(cfg *models.Config) error {
	required := []string{cfg.XqemuPath, cfg.MCPXPath, cfg.FlashPath, cfg.HDDPath}
	if cfg.DVDPresent {
		required = append(required, cfg.DVDPath)
	}

	for _, path := range required {
		if err := checkPath(path); err != nil {
			return err
		}
	}
	return nil
}

// checkPath verifies that a required path exists and is not a directory.
func checkPath(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("file %s could not be found", path)
	}
	return nil
}
