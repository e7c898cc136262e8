package site

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"postsite/app/internal/posts"
)

const documentFileName = "index.html"

// Exporter runs the build-time half of the pipeline: it enumerates the
// static parameter set once and writes one rendered document per identifier
// under the output directory.
type Exporter struct {
	renderer  *Renderer
	logger    *logrus.Logger
	outputDir string
}

// NewExporter wires an Exporter writing below outputDir.
func NewExporter(renderer *Renderer, outputDir string, logger *logrus.Logger) (*Exporter, error) {
	if renderer == nil {
		return nil, eris.New("renderer is required")
	}
	if outputDir == "" {
		return nil, eris.New("output directory is required")
	}

	return &Exporter{
		renderer:  renderer,
		logger:    logger,
		outputDir: outputDir,
	}, nil
}

// DocumentPath returns where the exported document for id lives on disk.
func (e *Exporter) DocumentPath(id string) string {
	return filepath.Join(e.outputDir, "posts", id, documentFileName)
}

// Export renders every statically enumerated post and writes the documents
// to disk. The first failure aborts the export.
func (e *Exporter) Export(ctx context.Context) error {
	for _, id := range posts.StaticParams() {
		document, err := e.renderer.Render(ctx, id)
		if err != nil {
			return eris.Wrapf(err, "pre-rendering post %s", id)
		}

		target := e.DocumentPath(id)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return eris.Wrapf(err, "creating output directory for post %s", id)
		}
		if err := os.WriteFile(target, document, 0o644); err != nil {
			return eris.Wrapf(err, "writing document for post %s", id)
		}

		if e.logger != nil {
			e.logger.WithFields(logrus.Fields{
				"id":   id,
				"path": target,
			}).Info("exported page")
		}
	}

	return nil
}
