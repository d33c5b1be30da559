package markup

import (
	"os"

	"github.com/matzehuels/plotsplit/pkg/errors"
)

// Writer persists a fragment. Implementations create or overwrite path.
type Writer interface {
	WriteMarkup(path, text string) error
}

// FileWriter writes fragments to the local filesystem. It does not create
// missing directories.
type FileWriter struct {
	Perm os.FileMode // 0 means 0o644
}

// WriteMarkup creates or truncates path and writes text to it.
func (w FileWriter) WriteMarkup(path, text string) error {
	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := os.WriteFile(path, []byte(text), perm); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "write %s", path)
	}
	return nil
}
