package report

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"agentlint/internal/validator"
)

// WriteJSONFile writes the JSON report to path, creating parent directories
// if needed.
func WriteJSONFile(path string, result validator.Result, meta Meta) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "cannot create report directory %s", dir)
		}
	}

	out, err := FormatJSON(result, meta)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out+"\n"), 0o644)
}
