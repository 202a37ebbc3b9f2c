package lib

import (
	"io"
	"os"
)

// copyFile copies a file from src to dst. If dst does not exist, it is
// created. If it does exist, it is overwritten.
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

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return err
	}

	// Ensure the data is written to stable storage.
	return destFile.Sync()
}

// MoveFile relocates src to dst. A plain rename is attempted first; when
// the trees live on different filesystems it falls back to copy+remove.
// Either way src is gone afterwards, never duplicated.
func MoveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
