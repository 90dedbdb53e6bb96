package ports

// ResultSink writes formatted result lines to a destination (e.g., a file).
type ResultSink interface {
	WriteLines(path string, lines []string) error
}
