package analyzer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hannajonsd/trimdefaults/config"
	"github.com/hannajonsd/trimdefaults/parser"
	"github.com/hannajonsd/trimdefaults/rewrite"
)

// Analyzer runs trailing default argument elimination over a repository.
type Analyzer struct {
	Write   bool // rewrite files in place instead of dry-running
	Verbose bool

	cfg       *config.Config
	rewriter  *rewrite.Rewriter
	gitignore *GitignoreParser
}

// New creates an analyzer. A nil config means defaults.
func New(cfg *config.Config) *Analyzer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Analyzer{
		cfg:      cfg,
		rewriter: &rewrite.Rewriter{ExtraBuiltins: cfg.ExtraBuiltins},
	}
}

// AnalyzeRepository rewrites every eligible source file under repoPath and
// returns aggregate counts. Per-file failures are reported and skipped, not
// fatal.
func (a *Analyzer) AnalyzeRepository(repoPath string) (*Summary, error) {
	fmt.Printf("Analyzing repository: %s\n", repoPath)
	a.gitignore = NewGitignoreParser(repoPath)

	sourceFiles, err := a.findSourceFiles(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to find source files: %w", err)
	}
	fmt.Printf("Found %d source files for analysis\n", len(sourceFiles))

	summary := &Summary{}
	for _, filePath := range sourceFiles {
		result, err := a.AnalyzeFile(filePath)
		if err != nil {
			summary.FailedFiles++
			log.Printf("Failed to analyze %s: %v", filePath, err)
			continue
		}

		summary.FilesScanned++
		if result.Changed {
			summary.FilesChanged++
			summary.CallsTrimmed += result.CallsTrimmed
			summary.ArgsRemoved += result.ArgsRemoved
		}
		a.displayFileResult(result)
	}

	a.displaySummary(summary)
	return summary, nil
}

// AnalyzeFile rewrites a single file. In write mode the new source replaces
// the file on disk; otherwise the change is only reported.
func (a *Analyzer) AnalyzeFile(filePath string) (*FileResult, error) {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	result, err := a.rewriter.RewriteSource(source, filePath)
	if err != nil {
		return nil, err
	}

	fileResult := &FileResult{
		FilePath:     filePath,
		Changed:      result.Changed,
		CallsTrimmed: result.CallsTrimmed,
		ArgsRemoved:  result.ArgsRemoved,
	}

	if result.Changed && a.Write {
		info, err := os.Stat(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to stat file %s: %w", filePath, err)
		}
		if err := os.WriteFile(filePath, result.Source, info.Mode().Perm()); err != nil {
			return nil, fmt.Errorf("failed to write file %s: %w", filePath, err)
		}
	}

	return fileResult, nil
}

func (a *Analyzer) findSourceFiles(repoPath string) ([]string, error) {
	var sourceFiles []string

	err := filepath.WalkDir(repoPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != repoPath && a.shouldSkipDir(path, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if a.eligibleFile(path) {
			sourceFiles = append(sourceFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sourceFiles, nil
}

func (a *Analyzer) shouldSkipDir(path, name string) bool {
	if name == "node_modules" || strings.HasPrefix(name, ".") {
		return true
	}
	for _, dir := range a.cfg.IgnoreDirs {
		if name == dir {
			return true
		}
	}
	return a.gitignore != nil && a.gitignore.ShouldIgnore(path)
}

func (a *Analyzer) eligibleFile(path string) bool {
	if a.gitignore != nil && a.gitignore.ShouldIgnore(path) {
		return false
	}

	ext := strings.ToLower(filepath.Ext(path))
	if len(a.cfg.Extensions) > 0 {
		for _, allowed := range a.cfg.Extensions {
			if ext == strings.ToLower(allowed) {
				return true
			}
		}
		return false
	}
	return parser.SupportedExtension(ext)
}
