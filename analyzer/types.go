package analyzer

// FileResult describes what rewriting one file produced.
type FileResult struct {
	FilePath     string
	Changed      bool
	CallsTrimmed int
	ArgsRemoved  int
}

// Summary aggregates a whole repository pass.
type Summary struct {
	FilesScanned int
	FilesChanged int
	CallsTrimmed int
	ArgsRemoved  int
	FailedFiles  int
}

// GitignoreParser matches paths against the repository's .gitignore patterns
type GitignoreParser struct {
	rootDir          string
	ignorePatterns   []string
	negationPatterns []string
}
