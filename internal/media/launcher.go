package media

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/pders01/poddeck/internal/config"
	"github.com/pders01/poddeck/internal/debuglog"
	"github.com/pders01/poddeck/internal/validation"
)

// Launcher hands cover URLs to an external viewer, usually the system
// default browser.
type Launcher struct {
	opener    string
	validator *validation.CoverURLValidator
}

func NewLauncher(cfg *config.Config) *Launcher {
	opener := cfg.Media.Opener
	if opener == "" {
		opener = defaultOpener()
	}
	return &Launcher{
		opener:    opener,
		validator: validation.NewCoverURLValidator(),
	}
}

func defaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "rundll32"
	default:
		return "xdg-open"
	}
}

// Open launches the configured viewer for an external cover URL.
// Inline data URIs have no external representation and are rejected.
func (l *Launcher) Open(rawURL string) error {
	if !validation.IsExternal(rawURL) {
		return fmt.Errorf("no external viewer for inline covers")
	}

	normalized, err := l.validator.ValidateAndNormalize(rawURL)
	if err != nil {
		return fmt.Errorf("invalid cover URL: %w", err)
	}

	args := []string{normalized}
	if runtime.GOOS == "windows" {
		args = []string{"url.dll,FileProtocolHandler", normalized}
	}

	debuglog.Debugf("opening cover via %s: %s", l.opener, normalized)
	cmd := exec.Command(l.opener, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", l.opener, err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			debuglog.Warnf("viewer exited with error: %v", err)
		}
	}()

	return nil
}
