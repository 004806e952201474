package export

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mogaika/blender2defold/scene"
	"github.com/mogaika/blender2defold/utils"
)

// TextureExporter copies host images into the project's texture folder.
// The destination filename is derived from the image identity (source
// file basename, or the sanitized datablock name for packed images), so
// repeated exports overwrite the same file instead of accumulating
// renamed copies.
type TextureExporter struct {
	paths *Paths
	log   *logrus.Logger
}

func NewTextureExporter(paths *Paths, log *logrus.Logger) *TextureExporter {
	return &TextureExporter{paths: paths, log: log}
}

// Filename returns the stable destination filename for an image.
func (t *TextureExporter) Filename(img *scene.Image) string {
	if img.Path != "" {
		return filepath.Base(img.Path)
	}
	return utils.SanitizeID(img.Name) + ".png"
}

// Export writes the image into the texture folder and returns its
// project path.
func (t *TextureExporter) Export(img *scene.Image) (string, error) {
	dst := t.paths.Texture(t.Filename(img))

	if err := os.MkdirAll(filepath.Dir(dst.Abs), 0777); err != nil {
		return "", &TextureWriteError{Path: dst.Abs, Err: err}
	}

	var err error
	switch {
	case img.Path != "":
		err = copyFile(img.Path, dst.Abs)
	case len(img.Data) > 0:
		err = os.WriteFile(dst.Abs, img.Data, 0666)
	default:
		err = errors.Errorf("image %q has neither source file nor embedded data", img.Name)
	}
	if err != nil {
		return "", &TextureWriteError{Path: dst.Abs, Err: err}
	}

	t.log.Debugf("[texture] %q -> %v", img.Name, dst.Project)
	return dst.Project, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
