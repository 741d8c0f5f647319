package analyzer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch keeps rewriting files under repoPath as they change. It blocks until
// the watcher fails. Each event is handled on the watch loop, so rewrites
// never race each other.
func (a *Analyzer) Watch(repoPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if a.gitignore == nil {
		a.gitignore = NewGitignoreParser(repoPath)
	}
	if err := a.watchDirs(watcher, repoPath); err != nil {
		return err
	}

	fmt.Printf("Watching %s for changes...\n", repoPath)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			a.handleEvent(watcher, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

func (a *Analyzer) watchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && a.shouldSkipDir(path, d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func (a *Analyzer) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}

	if info.IsDir() {
		if event.Op&fsnotify.Create != 0 && !a.shouldSkipDir(event.Name, filepath.Base(event.Name)) {
			if err := a.watchDirs(watcher, event.Name); err != nil {
				log.Printf("Failed to watch %s: %v", event.Name, err)
			}
		}
		return
	}

	if !a.eligibleFile(event.Name) {
		return
	}

	result, err := a.AnalyzeFile(event.Name)
	if err != nil {
		log.Printf("Failed to analyze %s: %v", event.Name, err)
		return
	}
	if result.Changed {
		a.displayFileResult(result)
	}
}
