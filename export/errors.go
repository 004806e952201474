package export

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoMatchingObjects is reported when the visibility/tag filter leaves
// nothing to export. No files are written in that case.
var ErrNoMatchingObjects = errors.New("no MESH objects with a prototype tag found (with current visibility filter)")

// MissingPrototypeError means an instance references a prototype that
// was never built in this run. Input error, aborts the run.
type MissingPrototypeError struct {
	Instance  string
	Prototype string
}

func (e *MissingPrototypeError) Error() string {
	return fmt.Sprintf("instance %q references unknown prototype %q", e.Instance, e.Prototype)
}

// AssetWriteError wraps a failed mesh/model/collision/prefab write. The
// run aborts on the first one; files written before it stay in place and
// a re-run after fixing the cause is safe.
type AssetWriteError struct {
	Path string
	Err  error
}

func (e *AssetWriteError) Error() string {
	return fmt.Sprintf("failed to write asset %q: %v", e.Path, e.Err)
}

func (e *AssetWriteError) Unwrap() error { return e.Err }

// TextureWriteError wraps a failed texture copy/save.
type TextureWriteError struct {
	Path string
	Err  error
}

func (e *TextureWriteError) Error() string {
	return fmt.Sprintf("failed to write texture %q: %v", e.Path, e.Err)
}

func (e *TextureWriteError) Unwrap() error { return e.Err }
