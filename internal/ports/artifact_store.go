package ports

import "github.com/aalvaropc/rpnsort/internal/domain"

// ArtifactStore persists run artifacts for reproducibility.
type ArtifactStore interface {
	SaveRun(run domain.RunArtifact) (id string, err error)
}
