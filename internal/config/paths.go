package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Paths contains the resolved filesystem locations the tool works with. All
// paths are relative to the executable directory, never the current working
// directory.
type Paths struct {
	ExecutableDir string
	DataDir       string
	LogsDir       string
}

// GetPaths returns the application paths relative to the executable location.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	exeDir := filepath.Dir(exe)
	return &Paths{
		ExecutableDir: exeDir,
		DataDir:       filepath.Join(exeDir, "data"),
		LogsDir:       filepath.Join(exeDir, "logs"),
	}, nil
}

// EnsureDirectories creates the data and logs directories if they do not
// exist yet.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the full path for a log file name inside the logs
// directory.
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// RunLogPath returns the per-run timestamped log file path,
// data_quality_<timestamp>.log inside the logs directory.
func (p *Paths) RunLogPath(now time.Time) string {
	return p.GetLogPath(fmt.Sprintf("data_quality_%s.log", now.Format("2006-01-02_15-04-05")))
}
