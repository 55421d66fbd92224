package ports

// SourceResolver expands source arguments into concrete scene files.
//
//go:generate mockgen -source=source_resolver.go -destination=mocks/mock_source_resolver.go -package=mocks
type SourceResolver interface {
	// Resolve expands files, glob patterns and directories into a sorted,
	// deduplicated list of scene file paths.
	Resolve(args []string) ([]string, error)
}
