package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xyproto/env/v2"

	"github.com/hannajonsd/trimdefaults/analyzer"
	"github.com/hannajonsd/trimdefaults/config"
)

func main() {
	var (
		repoPath   = flag.String("path", env.Str("TRIMDEFAULTS_PATH", "."), "Path to repository to rewrite")
		write      = flag.Bool("write", env.Bool("TRIMDEFAULTS_WRITE"), "Write changes back to files (default: dry run)")
		verbose    = flag.Bool("verbose", env.Bool("TRIMDEFAULTS_VERBOSE"), "Enable verbose output")
		watch      = flag.Bool("watch", false, "Keep running and rewrite files as they change")
		configPath = flag.String("config", env.Str("TRIMDEFAULTS_CONFIG", ""), "Path to config file (default: .trimdefaults.json in the repository)")
	)
	flag.Parse()

	fmt.Println("=== Trailing Default Argument Elimination ===")

	cfg, err := loadConfig(*configPath, *repoPath)
	if err != nil {
		log.Fatalf("Config failed: %v", err)
	}

	a := analyzer.New(cfg)
	a.Write = *write
	a.Verbose = *verbose

	summary, err := a.AnalyzeRepository(*repoPath)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if *watch {
		if err := a.Watch(*repoPath); err != nil {
			log.Fatalf("Watch failed: %v", err)
		}
		return
	}

	// In dry-run mode a needed change is a finding, so CI can gate on it.
	if summary.FilesChanged > 0 && !*write {
		os.Exit(1)
	}
}

func loadConfig(configPath, repoPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath, false)
	}
	return config.Load(filepath.Join(repoPath, config.DefaultFileName), true)
}
