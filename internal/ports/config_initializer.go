package ports

// ConfigInitializer scaffolds an rpnsort.yaml in a directory.
type ConfigInitializer interface {
	Init(dir string, force bool) (path string, err error)
}
