package neutronbirth

import "github.com/mdobak/go-xerrors"

var (
	// ErrSampling aborts a run: the source failed or returned the wrong number of values.
	ErrSampling = xerrors.Message("sampling failed")
	// ErrExportPathUnavailable marks an output location that does not exist or cannot be written.
	ErrExportPathUnavailable = xerrors.Message("export path unavailable")
	// ErrDisplay means the viewer could not be opened.
	ErrDisplay       = xerrors.Message("display failed")
	ErrLabelMismatch = xerrors.Message("labels do not match samples")
	ErrConfig        = xerrors.Message("invalid config")
)
