package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mcp-scaffold/internal/common/config"
	"mcp-scaffold/internal/common/logger"
	"mcp-scaffold/internal/common/metrics"
	"mcp-scaffold/internal/generator"
	"mcp-scaffold/internal/parser"
	"mcp-scaffold/internal/scaffold"
	"mcp-scaffold/internal/templates"
	"mcp-scaffold/pkg/catalog"
)

// Service runs the full generation pipeline: select an extraction strategy,
// parse the model response, build the project structure, and materialize it
// to disk. One Service is shared across requests; all of its collaborators
// are read-only after construction.
type Service struct {
	cfg          config.GeneratorConfig
	registry     *templates.Registry
	catalog      *catalog.LanguageCatalog
	materializer *scaffold.Materializer
	logger       logger.Logger
}

func NewService(cfg config.GeneratorConfig, reg *templates.Registry, cat *catalog.LanguageCatalog, log logger.Logger) *Service {
	return &Service{
		cfg:          cfg,
		registry:     reg,
		catalog:      cat,
		materializer: scaffold.NewMaterializer(cat, log),
		logger:       log,
	}
}

// Result describes one completed generation attempt.
type Result struct {
	AttemptID    string
	Strategy     string
	ProjectPath  string
	FilesWritten []string
}

// Generate runs one attempt end to end. The raw argument is the verbatim
// model response; req must already carry a slugged project name.
func (s *Service) Generate(ctx context.Context, req *generator.Request, raw string) (*Result, error) {
	start := time.Now()
	attemptID := uuid.New().String()
	lang := string(req.Language)

	log := s.logger.With(map[string]interface{}{
		"attempt_id": attemptID,
		"language":   lang,
		"project":    req.ProjectName,
	})

	if err := req.Validate(); err != nil {
		metrics.GenerationsTotal.WithLabelValues(lang, "invalid_request").Inc()
		return nil, err
	}

	strategy := parser.Select(raw, lang, s.catalog, s.logger)
	log.Info("extraction strategy selected", map[string]interface{}{
		"strategy": strategy.Name(),
	})

	rec, err := strategy.Parse(raw)
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues(strategy.Name(), "failure").Inc()
		metrics.GenerationsTotal.WithLabelValues(lang, "extraction_failed").Inc()
		return nil, err
	}
	metrics.ExtractionsTotal.WithLabelValues(strategy.Name(), "success").Inc()

	builder, err := generator.ForLanguage(req.Language, s.registry, s.catalog, s.cfg, s.logger)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(lang, "builder_failed").Inc()
		return nil, err
	}

	structure, err := builder.Build(req, rec)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(lang, "build_failed").Inc()
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		metrics.GenerationsTotal.WithLabelValues(lang, "canceled").Inc()
		return nil, err
	}

	projectPath := filepath.Join(req.OutputDir, req.ProjectName)
	if err := s.materializer.Materialize(projectPath, structure); err != nil {
		metrics.GenerationsTotal.WithLabelValues(lang, "materialization_failed").Inc()
		return nil, err
	}

	files := structure.SortedFilePaths()
	metrics.FilesWritten.WithLabelValues(lang).Add(float64(len(files)))
	metrics.GenerationsTotal.WithLabelValues(lang, "success").Inc()
	metrics.GenerationDuration.WithLabelValues(lang).Observe(time.Since(start).Seconds())

	log.Info("project generated", map[string]interface{}{
		"strategy":   strategy.Name(),
		"path":       projectPath,
		"file_count": len(files),
		"duration":   time.Since(start).String(),
	})

	return &Result{
		AttemptID:    attemptID,
		Strategy:     strategy.Name(),
		ProjectPath:  projectPath,
		FilesWritten: files,
	}, nil
}
