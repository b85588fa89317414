package sink

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/basedalex/tag-extractor/pkg/report"
)

var ErrSinkWriteFailed = errors.New("sink write failed")

// WriteReport stores the rendered report verbatim.
func WriteReport(path string, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWriteFailed, err)
	}

	return nil
}

// WriteJSON stores the report as indented JSON.
func WriteJSON(path string, r report.Report) error {
	file, err := json.MarshalIndent(r, "", " ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWriteFailed, err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWriteFailed, err)
	}
	defer dst.Close()

	if _, err = dst.Write(file); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWriteFailed, err)
	}

	return nil
}

// ReadJSON loads a report written by WriteJSON.
func ReadJSON(path string) (report.Report, error) {
	var r report.Report

	data, err := os.ReadFile(path)
	if err != nil {
		return r, err
	}

	if err = json.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("sink: %w", err)
	}

	return r, nil
}

// OutputPath places name inside dir unless name already carries a directory.
func OutputPath(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}

	return filepath.Join(dir, name)
}
