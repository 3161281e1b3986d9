//go:build !windows

package gpuwindow

import "log/slog"

func applyDLLDir(dir string, log *slog.Logger) error {
	log.Debug("gpuwindow: dlldir ignored on this platform", "dir", dir)
	return nil
}
