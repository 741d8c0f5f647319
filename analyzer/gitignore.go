package analyzer

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// NewGitignoreParser creates a gitignore matcher for the given directory.
// A missing .gitignore simply yields a matcher that ignores nothing.
func NewGitignoreParser(rootDir string) *GitignoreParser {
	parser := &GitignoreParser{rootDir: rootDir}
	parser.loadGitignore()
	return parser
}

func (gp *GitignoreParser) loadGitignore() {
	gitignorePath := filepath.Join(gp.rootDir, ".gitignore")
	file, err := os.Open(gitignorePath)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "!") {
			gp.negationPatterns = append(gp.negationPatterns, strings.TrimPrefix(line, "!"))
		} else {
			gp.ignorePatterns = append(gp.ignorePatterns, line)
		}
	}
}

// ShouldIgnore checks if a path should be ignored based on .gitignore patterns
func (gp *GitignoreParser) ShouldIgnore(path string) bool {
	relPath, err := filepath.Rel(gp.rootDir, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	ignored := false
	for _, pattern := range gp.ignorePatterns {
		if matchPattern(pattern, relPath) {
			ignored = true
			break
		}
	}

	if ignored {
		for _, pattern := range gp.negationPatterns {
			if matchPattern(pattern, relPath) {
				return false
			}
		}
	}

	return ignored
}

// matchPattern checks a path against one gitignore pattern. Directory
// patterns (trailing slash) match the directory itself and anything under
// it; anchored patterns (leading slash) match from the root only; bare
// patterns match at any depth.
func matchPattern(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/") {
		pattern = strings.TrimSuffix(pattern, "/")
		if path == pattern || strings.HasPrefix(path, pattern+"/") {
			return true
		}
		for _, part := range strings.Split(path, "/") {
			if part == pattern {
				return true
			}
		}
		return false
	}

	if strings.HasPrefix(pattern, "/") {
		return matchSimplePattern(strings.TrimPrefix(pattern, "/"), path)
	}

	if matchSimplePattern(pattern, path) {
		return true
	}

	parts := strings.Split(path, "/")
	for i := range parts {
		if matchSimplePattern(pattern, strings.Join(parts[i:], "/")) {
			return true
		}
	}
	if !strings.Contains(pattern, "/") {
		for _, part := range parts {
			if matchSimplePattern(pattern, part) {
				return true
			}
		}
	}

	return false
}

func matchSimplePattern(pattern, path string) bool {
	matched, err := filepath.Match(pattern, path)
	if err != nil {
		return false
	}
	return matched
}
