package ports

import "github.com/aalvaropc/rpnsort/internal/domain"

// ConfigLocator finds the directory holding rpnsort.yaml, starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
	// Resolve loads the nearest config; root is empty when there is none.
	Resolve(startDir string) (cfg domain.Config, root string, err error)
}
