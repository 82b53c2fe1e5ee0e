package out

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"lifeagent/internal/modules/mobile/domain"
	mobileout "lifeagent/internal/modules/mobile/port/out"
	apperrors "lifeagent/internal/platform/errors"
)

//go:embed assets
var embedded embed.FS

// FSOrigin serves shell assets from a filesystem, by default the embedded copy.
type FSOrigin struct {
	files fs.FS
}

func NewEmbeddedOrigin() mobileout.Origin {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	return FSOrigin{files: sub}
}

// NewDirOrigin serves assets from dir, for working on the page without rebuilding.
func NewDirOrigin(dir string) mobileout.Origin {
	return FSOrigin{files: os.DirFS(dir)}
}

func NewFSOrigin(files fs.FS) mobileout.Origin {
	return FSOrigin{files: files}
}

func (o FSOrigin) Fetch(ctx context.Context, path string) (domain.Response, error) {
	if err := ctx.Err(); err != nil {
		return domain.Response{}, err
	}
	body, err := fs.ReadFile(o.files, path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Response{}, fmt.Errorf("%w: %s", apperrors.ErrNotFound, path)
	}
	if err != nil {
		return domain.Response{}, fmt.Errorf("read %s: %w", path, err)
	}
	return domain.Response{Path: path, ContentType: domain.ContentTypeOf(path), Body: body}, nil
}
