package neutronbirth

import (
	"os"

	"github.com/mdobak/go-xerrors"
	"go.uber.org/zap"
)

// Display renders the scene to a temporary HTML file and hands it to OpenFile.
// Whether this blocks depends on the platform's viewer.
func Display(scene *Scene) error {
	f, err := os.CreateTemp("", "neutronbirth-*.html")
	if err != nil {
		return xerrors.New(ErrDisplay, err)
	}
	path := f.Name()
	if err := writeHTML(scene, f); err != nil {
		_ = f.Close()
		return xerrors.New(ErrDisplay, err)
	}
	if err := f.Close(); err != nil {
		return xerrors.New(ErrDisplay, err)
	}
	Log.Debug("Opening viewer", zap.String("path", path))
	if err := OpenFile(path); err != nil {
		return xerrors.New(ErrDisplay, err)
	}
	return nil
}
