package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"balde-template-gen/internal/diagnostic"
	"balde-template-gen/internal/gen"
	"balde-template-gen/internal/parse"
)

// Job pairs a template source with the artifact path to write.
type Job struct {
	Template string `yaml:"template"`
	Output   string `yaml:"output"`
}

// Builder runs jobs against a shared generator.
type Builder struct {
	generator *gen.Generator
	logger    logrus.FieldLogger
}

// NewBuilder creates a Builder. A nil logger discards log output.
func NewBuilder(generator *gen.Generator, logger logrus.FieldLogger) *Builder {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	return &Builder{generator: generator, logger: logger}
}

// Render produces the artifact for job without touching the output path.
func (b *Builder) Render(job Job) (gen.GeneratedFile, Artifact, error) {
	artifact, err := ArtifactFor(job.Output)
	if err != nil {
		return gen.GeneratedFile{}, 0, err
	}

	identifier := gen.DeriveIdentifier(job.Output)

	var content string

	switch artifact {
	case ArtifactImplementation:
		src, err := os.ReadFile(job.Template)
		if err != nil {
			return gen.GeneratedFile{}, 0, diagnostic.Read(job.Template, err)
		}

		blocks, err := parse.Parse(job.Template, src)
		if err != nil {
			return gen.GeneratedFile{}, 0, diagnostic.Syntax(err)
		}

		content = b.generator.GenerateImplementation(identifier, blocks)
	case ArtifactDeclaration:
		content = b.generator.GenerateDeclaration(identifier)
	}

	return gen.GeneratedFile{Path: job.Output, Content: []byte(content)}, artifact, nil
}

// Build renders job and writes the artifact.
func (b *Builder) Build(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, artifact, err := b.Render(job)
	if err != nil {
		return err
	}

	if err := gen.WriteFile(file); err != nil {
		return diagnostic.Write(job.Output, errors.Unwrap(err))
	}

	b.logger.WithFields(logrus.Fields{
		"template":   job.Template,
		"output":     job.Output,
		"artifact":   artifact.String(),
		"identifier": gen.DeriveIdentifier(job.Output),
		"size":       humanize.Bytes(uint64(len(file.Content))),
	}).Info("artifact written")

	return nil
}

// BuildAll builds every job with at most concurrency builds in flight
// (unbounded when concurrency < 1). A failing job does not stop the others;
// the returned error joins the failures in job order.
func (b *Builder) BuildAll(ctx context.Context, jobs []Job, concurrency int) error {
	errs := make([]error, len(jobs))

	var g errgroup.Group
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := b.Build(ctx, job); err != nil {
				errs[i] = fmt.Errorf("%s -> %s: %w", job.Template, job.Output, err)
				b.logger.WithError(err).WithField("output", job.Output).Error("build failed")
			}

			return nil
		})
	}

	_ = g.Wait()

	return errors.Join(errs...)
}
