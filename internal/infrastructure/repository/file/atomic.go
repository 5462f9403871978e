package file

import (
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

type writeFunc func(path string, payload []byte) error

// writeFileAtomic replaces path with payload through a temp file in the same
// directory, so readers never see a truncated document.
func writeFileAtomic(path string, payload []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return crerr.Wrapf(err, "create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return crerr.Wrapf(err, "create temp file for %s", path)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		cleanup()
		return crerr.Wrapf(err, "write temp file for %s", path)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return crerr.Wrapf(err, "sync temp file for %s", path)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return crerr.Wrapf(err, "close temp file for %s", path)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		cleanup()
		return crerr.Wrapf(err, "chmod temp file for %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return crerr.Wrapf(err, "replace %s", path)
	}
	return nil
}

func encodeJSON(v any) ([]byte, error) {
	payload, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, crerr.Wrap(err, "encode json document")
	}
	return append(payload, '\n'), nil
}

// readFileIfExists returns nil, false when path does not exist.
func readFileIfExists(path string) ([]byte, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, crerr.Wrapf(err, "read %s", path)
	}
	return raw, true, nil
}
