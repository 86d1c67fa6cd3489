package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/vinaykagithapu/portfolio/internal/core"
)

const manifestFile = "manifest.json"

type ExportInput struct {
	Site   core.SiteConfig
	OutDir string
	Clean  bool
}

type ExportedFile struct {
	Path  string
	Bytes int
}

type ExportOutput struct {
	Pages  []ExportedFile
	Assets []ExportedFile
	Error  error
}

type ExportService struct {
	fs     FileSystem
	pages  *PageService
	logger *zap.Logger
}

func NewExportService(fs FileSystem, pages *PageService, logger *zap.Logger) *ExportService {
	return &ExportService{
		fs:     fs,
		pages:  pages,
		logger: logger,
	}
}

// ExportStatic writes every page and asset under input.OutDir. Pages go to
// the paths given by core.OutputPathForRoute; assets go to assets/ under
// their fingerprinted names, next to the asset manifest.
func (s *ExportService) ExportStatic(ctx context.Context, input ExportInput) ExportOutput {
	if input.OutDir == "" {
		return ExportOutput{Error: core.ErrEmptyOutputPath}
	}
	if err := input.Site.Validate(); err != nil {
		return ExportOutput{Error: err}
	}

	if input.Clean {
		if err := s.fs.RemoveAll(input.OutDir); err != nil {
			return ExportOutput{Error: fmt.Errorf("clean %s: %w", input.OutDir, err)}
		}
	}
	if err := s.fs.MkdirAll(input.OutDir, 0o755); err != nil {
		return ExportOutput{Error: fmt.Errorf("create %s: %w", input.OutDir, err)}
	}

	var output ExportOutput

	for _, route := range core.Routes() {
		rendered := s.pages.RenderPage(ctx, RenderPageInput{Site: input.Site, Kind: route.Kind})
		if rendered.Error != nil {
			output.Error = fmt.Errorf("export %s: %w", route.Path, rendered.Error)
			return output
		}

		rel := core.OutputPathForRoute(route.Path)
		if err := s.write(input.OutDir, rel, rendered.HTML); err != nil {
			output.Error = err
			return output
		}
		output.Pages = append(output.Pages, ExportedFile{Path: rel, Bytes: len(rendered.HTML)})
		s.logger.Debug("page exported", zap.String("route", route.Path), zap.String("file", rel))
	}

	bundle := s.pages.Assets()
	for _, name := range bundle.Manifest.Names() {
		if err := ctx.Err(); err != nil {
			output.Error = err
			return output
		}

		entry := bundle.Manifest.Entries[name]
		data := bundle.Files[name]
		rel := filepath.ToSlash(filepath.Join("assets", entry.File))
		if err := s.write(input.OutDir, rel, data); err != nil {
			output.Error = err
			return output
		}
		output.Assets = append(output.Assets, ExportedFile{Path: rel, Bytes: len(data)})
	}

	manifest, err := bundle.Manifest.Marshal()
	if err != nil {
		output.Error = fmt.Errorf("encode asset manifest: %w", err)
		return output
	}
	rel := filepath.ToSlash(filepath.Join("assets", manifestFile))
	if err := s.write(input.OutDir, rel, manifest); err != nil {
		output.Error = err
		return output
	}
	output.Assets = append(output.Assets, ExportedFile{Path: rel, Bytes: len(manifest)})

	s.logger.Info("static export complete",
		zap.String("dir", input.OutDir),
		zap.Int("pages", len(output.Pages)),
		zap.Int("assets", len(output.Assets)),
	)
	return output
}

func (s *ExportService) write(outDir, rel string, data []byte) error {
	full := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := s.fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", rel, err)
	}
	if err := s.fs.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}
