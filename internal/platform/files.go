package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ErrNoFileManager is returned when no file browser could be started.
var ErrNoFileManager = errors.New("no suitable file manager found")

// Runner starts external programs. Tests replace it to observe commands.
type Runner interface {
	Run(name string, args ...string) error
	LookPath(file string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (execRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Revealer opens directories in the host file browser.
type Revealer struct {
	goos   string
	runner Runner
}

// NewRevealer returns a revealer for the running OS
func NewRevealer() *Revealer {
	return &Revealer{goos: runtime.GOOS, runner: execRunner{}}
}

// NewRevealerWith returns a revealer for goos that starts programs through runner
func NewRevealerWith(goos string, runner Runner) *Revealer {
	return &Revealer{goos: goos, runner: runner}
}

// RevealDirectory opens the directory containing path in the file browser.
func RevealDirectory(path string) error {
	return NewRevealer().Reveal(path)
}

// Reveal opens the directory containing path.
func (r *Revealer) Reveal(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	dir := filepath.Dir(absPath)

	switch r.goos {
	case OSWindows:
		return r.runner.Run(ExplorerCommand, dir)
	case OSDarwin:
		return r.runner.Run(OpenCommand, dir)
	default:
		return r.revealUnix(dir)
	}
}

// revealUnix tries xdg-open, then the common file managers.
func (r *Revealer) revealUnix(dir string) error {
	err := r.runner.Run(XDGOpenCommand, dir)
	if err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, lookErr := r.runner.LookPath(fm); lookErr == nil {
			return r.runner.Run(fm, dir)
		}
	}

	return fmt.Errorf("%w: %v", ErrNoFileManager, err)
}

// WorkingDirectory returns the directory downloads are written to.
func WorkingDirectory() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return dir, nil
}
