// Package analyzer wires the full statement pipeline: resolve the input
// kind once at the boundary, ingest candidates through the matching path,
// normalize, categorize, and aggregate.
package analyzer

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Puneet01302/my-expense-dashboard/analyzer/aggregate"
	"github.com/Puneet01302/my-expense-dashboard/analyzer/category"
	"github.com/Puneet01302/my-expense-dashboard/analyzer/common"
	"github.com/Puneet01302/my-expense-dashboard/analyzer/hdfc_cc"
	"github.com/Puneet01302/my-expense-dashboard/analyzer/tabular"
)

// Kind is the resolved input variant. Dispatch happens once here; after
// that each kind is handled by its own ingestion path.
type Kind int

const (
	KindUnknown Kind = iota
	KindPDF
	KindCSV
	KindXLSX
)

// ErrUnsupportedFormat marks inputs the pipeline will not attempt to read.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// DetectKind resolves the input kind from the file name extension.
func DetectKind(filename string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF, nil
	case ".csv":
		return KindCSV, nil
	case ".xlsx":
		return KindXLSX, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// Result is the output of one pipeline invocation. Transactions are frozen
// once categorized; Summary is computed over that snapshot.
type Result struct {
	Source       string               `json:"source"`
	Transactions []common.Transaction `json:"transactions"`
	Summary      aggregate.Summary    `json:"summary"`
	Dropped      []common.RowError    `json:"dropped,omitempty"`
}

// Ingestor turns raw input bytes into candidate transactions and tells the
// normalizer which date layouts its candidates use.
type Ingestor interface {
	Ingest(reader io.Reader) ([]common.Candidate, error)
	DateLayouts() []string
}

type documentIngestor struct {
	cfg hdfc_cc.Config
}

func (d documentIngestor) Ingest(reader io.Reader) ([]common.Candidate, error) {
	rows, err := common.ExtractRowsFromPDFReader(reader)
	if err != nil {
		return nil, fmt.Errorf("extracting statement text: %w", err)
	}
	return hdfc_cc.Extract(rows, d.cfg), nil
}

func (d documentIngestor) DateLayouts() []string { return d.cfg.DateLayouts() }

type csvIngestor struct{}

func (csvIngestor) Ingest(reader io.Reader) ([]common.Candidate, error) {
	return tabular.ExtractCSV(reader)
}

func (csvIngestor) DateLayouts() []string { return common.TabularDateLayouts }

type xlsxIngestor struct{}

func (xlsxIngestor) Ingest(reader io.Reader) ([]common.Candidate, error) {
	return tabular.ExtractXLSX(reader)
}

func (xlsxIngestor) DateLayouts() []string { return common.TabularDateLayouts }

// IngestorFor returns the ingestion path for a resolved kind.
func IngestorFor(kind Kind) (Ingestor, error) {
	switch kind {
	case KindPDF:
		return documentIngestor{cfg: hdfc_cc.ConfigFromViper()}, nil
	case KindCSV:
		return csvIngestor{}, nil
	case KindXLSX:
		return xlsxIngestor{}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Process runs the pipeline over one input. Row-level failures are absorbed
// into Result.Dropped; structural failures (unsupported format, missing
// column, unreadable document) return an error and no partial result.
func Process(reader io.Reader, filename string, categorizer *category.Categorizer) (Result, error) {
	kind, err := DetectKind(filename)
	if err != nil {
		return Result{}, err
	}
	return ProcessKind(reader, filename, kind, categorizer)
}

// ProcessKind runs the pipeline for an already-resolved input kind.
func ProcessKind(reader io.Reader, filename string, kind Kind, categorizer *category.Categorizer) (Result, error) {
	if categorizer == nil {
		categorizer = category.Default()
	}

	ingestor, err := IngestorFor(kind)
	if err != nil {
		return Result{}, err
	}

	candidates, err := ingestor.Ingest(reader)
	if err != nil {
		return Result{}, err
	}

	transactions, dropped := common.Normalize(candidates, ingestor.DateLayouts())
	transactions = categorizer.Apply(transactions)

	source := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	for _, row := range dropped {
		log.Printf("WARN %s: dropped %s", source, row.Error())
	}

	return Result{
		Source:       source,
		Transactions: transactions,
		Summary:      aggregate.Summarize(transactions),
		Dropped:      dropped,
	}, nil
}

// ProcessFile opens and processes a file from disk.
func ProcessFile(path string, categorizer *category.Categorizer) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer file.Close()
	return Process(file, filepath.Base(path), categorizer)
}
