package build

import (
	"strings"

	"balde-template-gen/internal/diagnostic"
)

// Artifact is the kind of file a build produces.
type Artifact int

const (
	ArtifactImplementation Artifact = iota + 1
	ArtifactDeclaration
)

// File suffixes that select an artifact.
const (
	ImplementationSuffix = ".c"
	DeclarationSuffix    = ".h"
)

// String returns a human-readable artifact name.
func (a Artifact) String() string {
	switch a {
	case ArtifactImplementation:
		return "implementation"
	case ArtifactDeclaration:
		return "declaration"
	default:
		return "unknown"
	}
}

// ArtifactFor selects the artifact from the output path's suffix.
func ArtifactFor(outputPath string) (Artifact, error) {
	switch {
	case strings.HasSuffix(outputPath, ImplementationSuffix):
		return ArtifactImplementation, nil
	case strings.HasSuffix(outputPath, DeclarationSuffix):
		return ArtifactDeclaration, nil
	default:
		return 0, diagnostic.Extension(outputPath)
	}
}
