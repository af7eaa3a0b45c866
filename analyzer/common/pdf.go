package common

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dslipak/pdf"
)

// ExtractRowsFromPDFReader reads every page of a PDF statement and returns
// its text content as rows, in page order. A page whose text cannot be
// extracted contributes nothing; extraction of the remaining pages continues,
// so a partially garbled statement still yields its readable lines.
func ExtractRowsFromPDFReader(reader io.Reader) ([]string, error) {
	readerAt, size, err := readerAtWithSize(reader)
	if err != nil {
		return nil, err
	}

	document, err := pdf.NewReader(readerAt, size)
	if err != nil {
		return nil, err
	}

	numPages := document.NumPage()
	rows := make([]string, 0, numPages*50)

	for no := 1; no <= numPages; no++ {
		page := document.Page(no)
		pageRows, err := page.GetTextByRow()
		if err != nil {
			log.Printf("WARN could not extract text from page %d: %v", no, err)
			continue
		}

		for _, row := range pageRows {
			var builder strings.Builder
			for i, text := range row.Content {
				builder.WriteString(text.S)
				if i < len(row.Content)-1 {
					builder.WriteByte(' ')
				}
			}
			if builder.Len() > 0 {
				rows = append(rows, builder.String())
			}
		}
	}

	return rows, nil
}

// ExtractRowsFromPDF extracts statement rows from a PDF file on disk.
func ExtractRowsFromPDF(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ExtractRowsFromPDFReader(file)
}

// readerAtWithSize adapts an io.Reader into the io.ReaderAt plus size the
// PDF library needs, buffering into memory when the reader cannot seek.
func readerAtWithSize(reader io.Reader) (io.ReaderAt, int64, error) {
	if readerAt, ok := reader.(io.ReaderAt); ok {
		seeker, ok := reader.(io.Seeker)
		if !ok {
			return nil, 0, errors.New("reader is io.ReaderAt but not io.Seeker, cannot determine size")
		}
		current, _ := seeker.Seek(0, io.SeekCurrent)
		end, err := seeker.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, 0, err
		}
		if _, err := seeker.Seek(current, io.SeekStart); err != nil {
			return nil, 0, err
		}
		return readerAt, end, nil
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(reader); err != nil {
		return nil, 0, err
	}
	data := buf.Bytes()
	return bytes.NewReader(data), int64(len(data)), nil
}
