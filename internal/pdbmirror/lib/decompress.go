package lib

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Gunzip decompresses a single-stream gzip archive into dest and removes
// the compressed artifact on success. Legacy and structured-text entries
// hold exactly one member, so this is all they need.
func Gunzip(archive, dest string) error {
	in, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer in.Close()

	zr, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("reading gzip header of %s: %w", archive, err)
	}
	defer zr.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, zr); err != nil {
		out.Close()
		os.Remove(dest)
		return fmt.Errorf("decompressing %s: %w", archive, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}
	return os.Remove(archive)
}

// ExtractTarGz unpacks every member of a tar.gz archive into destDir and
// removes the archive on success. Member names are confined to destDir;
// an entry that would escape it aborts the extraction.
func ExtractTarGz(archive, destDir string) error {
	in, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer in.Close()

	zr, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("reading gzip header of %s: %w", archive, err)
	}
	defer zr.Close()

	tr := tar.NewReader(zr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar member of %s: %w", archive, err)
		}

		target := filepath.Join(destDir, filepath.Clean(hdr.Name))
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("tar member %q escapes %s", hdr.Name, destDir)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(hdr.Mode))
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return fmt.Errorf("extracting %s from %s: %w", hdr.Name, archive, err)
			}
			if err := out.Close(); err != nil {
				return err
			}
		default:
			// Bundles only carry regular files; anything else is noise.
			log.Debugw("skipping tar member", "name", hdr.Name, "type", hdr.Typeflag)
		}
	}
	return os.Remove(archive)
}
