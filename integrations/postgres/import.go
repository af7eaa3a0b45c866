package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Puneet01302/my-expense-dashboard/analyzer"
	"github.com/Puneet01302/my-expense-dashboard/analyzer/category"
)

// ImportResult tracks the outcome of an import operation.
type ImportResult struct {
	Processed int
	Skipped   int
	Failed    int
	Errors    []string
}

// ImportOptions configures the import behavior.
type ImportOptions struct {
	Force   bool // Reprocess sources that were imported before
	Verbose bool
}

// Import analyzes and stores a single file or every supported file in a
// directory. Unsupported files inside a directory are skipped, not failed.
func (db *DB) Import(ctx context.Context, path string, categorizer *category.Categorizer, opts ImportOptions) (*ImportResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", path, err)
	}

	result := &ImportResult{}

	if !info.IsDir() {
		db.importFile(ctx, path, categorizer, opts, result)
		return result, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, err := analyzer.DetectKind(name); err != nil {
			if opts.Verbose {
				log.Printf("skipping %s: %v", name, err)
			}
			continue
		}
		db.importFile(ctx, filepath.Join(path, name), categorizer, opts, result)
	}
	return result, nil
}

// importFile runs the pipeline for one file and stores the result. Existing
// imports for the same source are skipped unless forced.
func (db *DB) importFile(ctx context.Context, path string, categorizer *category.Categorizer, opts ImportOptions, result *ImportResult) {
	fileName := filepath.Base(path)

	analyzed, err := analyzer.ProcessFile(path, categorizer)
	if err != nil {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", fileName, err))
		return
	}

	existingID, exists, err := db.FindImportBySource(ctx, analyzed.Source)
	if err != nil {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", fileName, err))
		return
	}
	if exists {
		if !opts.Force {
			if opts.Verbose {
				log.Printf("skipping %s: already imported", fileName)
			}
			result.Skipped++
			return
		}
		if err := db.DeleteImport(ctx, existingID); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", fileName, err))
			return
		}
	}

	importID, err := db.CreateImport(ctx, analyzed)
	if err != nil {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", fileName, err))
		return
	}
	if err := db.CreateTransactions(ctx, importID, analyzed); err != nil {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", fileName, err))
		return
	}

	if opts.Verbose {
		log.Printf("imported %s: %d transactions, %d dropped",
			fileName, len(analyzed.Transactions), len(analyzed.Dropped))
	}
	result.Processed++
}
