package config

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewCatalogForTest creates a Catalog config for testing purposes
func NewCatalogForTest(path string) *Catalog {
	return &Catalog{path: path}
}
