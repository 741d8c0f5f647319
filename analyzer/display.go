package analyzer

import (
	"fmt"
	"strings"
)

func (a *Analyzer) displayFileResult(result *FileResult) {
	if !result.Changed {
		if a.Verbose {
			fmt.Printf("  %s: no redundant trailing arguments\n", result.FilePath)
		}
		return
	}

	action := "would remove"
	if a.Write {
		action = "removed"
	}
	fmt.Printf("  %s: %s %d argument(s) across %d call(s)\n",
		result.FilePath, action, result.ArgsRemoved, result.CallsTrimmed)
}

func (a *Analyzer) displaySummary(summary *Summary) {
	fmt.Println("\n" + strings.Repeat("-", 60))
	fmt.Println("TRAILING DEFAULT ARGUMENT SUMMARY")
	fmt.Printf("Files scanned:     %d\n", summary.FilesScanned)
	fmt.Printf("Files changed:     %d\n", summary.FilesChanged)
	fmt.Printf("Calls trimmed:     %d\n", summary.CallsTrimmed)
	fmt.Printf("Arguments removed: %d\n", summary.ArgsRemoved)
	if summary.FailedFiles > 0 {
		fmt.Printf("Files failed:      %d\n", summary.FailedFiles)
	}

	if summary.FilesChanged > 0 && !a.Write {
		fmt.Println("\nRun with -write to apply these changes.")
	}
}
