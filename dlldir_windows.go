//go:build windows

package gpuwindow

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

// applyDLLDir adds dir to the DLL search path so driver libraries shipped
// next to the application are found.
func applyDLLDir(dir string, log *slog.Logger) error {
	if err := windows.SetDllDirectory(dir); err != nil {
		return err
	}
	log.Debug("gpuwindow: dll directory set", "dir", dir)
	return nil
}
