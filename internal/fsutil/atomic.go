package fsutil

import (
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic replaces filename with data through a temp file in the same
// directory and a rename, keeping the original file mode when the file exists.
func WriteFileAtomic(filename string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(filename); err == nil {
		mode = info.Mode().Perm()
	}

	tempFile, err := os.CreateTemp(filepath.Dir(filename), ".litrewrite-*.tmp")
	if err != nil {
		return err
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return err
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return err
	}
	if err := tempFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		return err
	}

	if err := os.Rename(tempPath, filename); err != nil {
		// cross-device rename, fall back to copying
		return copyFile(tempPath, filename)
	}
	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err = io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
