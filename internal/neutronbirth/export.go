package neutronbirth

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/mdobak/go-xerrors"
	"go.uber.org/zap"
)

// Target is one candidate output location. Only required targets may fail the export.
type Target struct {
	Path     string `json:"path" mapstructure:"path" validate:"required"`
	Required bool   `json:"required" mapstructure:"required"`
}

// Targets marks primary as required and every secondary path as optional.
func Targets(primary string, secondary ...string) []Target {
	out := make([]Target, 0, len(secondary)+1)
	out = append(out, Target{Path: primary, Required: true})
	for _, p := range secondary {
		out = append(out, Target{Path: p})
	}
	return out
}

// Export writes the scene as an HTML document to every target in order and
// returns the paths written. An unavailable optional target is skipped;
// any other failure stops the export.
func Export(scene *Scene, targets []Target) ([]string, error) {
	written := make([]string, 0, len(targets))
	for _, t := range targets {
		err := exportOne(scene, t.Path)
		if err == nil {
			written = append(written, t.Path)
			Log.Info("Saved scene", zap.String("path", t.Path))
			continue
		}
		if errors.Is(err, ErrExportPathUnavailable) && !t.Required {
			Log.Debug("Skipping unavailable output", zap.String("path", t.Path), zap.Error(err))
			continue
		}
		return written, err
	}
	return written, nil
}

func exportOne(scene *Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		if pathUnavailable(err) {
			return xerrors.New(ErrExportPathUnavailable, err)
		}
		return xerrors.New(err)
	}
	if err := writeHTML(scene, f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return xerrors.New("render "+path, err)
	}
	if err := f.Close(); err != nil {
		return xerrors.New(err)
	}
	return nil
}

// pathUnavailable reports whether err means the location itself is missing or
// not writable, as opposed to a failure while producing the document.
func pathUnavailable(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.EISDIR) ||
		errors.Is(err, syscall.EROFS)
}
