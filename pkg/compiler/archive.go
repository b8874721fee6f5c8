package compiler

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	fluxtar "github.com/fluxcd/pkg/tar"
)

// Pack writes dir as a gzip-compressed tar archive named
// "<name>_<version>.tgz" under destDir, per the on-disk archive format.
// fluxcd/pkg/tar only exposes extraction (Untar); archive creation uses the
// standard library directly, documented in DESIGN.md.
func Pack(dir, name, version, destDir string) (string, error) {
	archivePath := filepath.Join(destDir, fmt.Sprintf("%s_%s.tgz", name, version))
	f, err := os.Create(archivePath)
	if err != nil {
		return "", newCompileError("InvalidOutput", "cannot create archive", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if info.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(tw, src)
		return err
	})
	if err != nil {
		return "", newCompileError("InvalidOutput", "cannot write archive", err)
	}
	if err := tw.Close(); err != nil {
		return "", err
	}
	if err := gz.Close(); err != nil {
		return "", err
	}
	return archivePath, nil
}

// Unpack extracts a ".tgz" package archive into a fresh temporary directory
// and returns its path. The ".tgz" extension is required, per the on-disk
// archive format spec.
func Unpack(archivePath string) (string, error) {
	if !strings.HasSuffix(archivePath, ".tgz") {
		return "", newLoadError("InvalidFormat", archivePath, nil)
	}
	f, err := os.Open(archivePath)
	if err != nil {
		return "", newLoadError("NoSpec", archivePath, err)
	}
	defer f.Close()

	dir, err := os.MkdirTemp("", "kurel-package-")
	if err != nil {
		return "", err
	}
	if err := fluxtar.Untar(f, dir); err != nil {
		os.RemoveAll(dir)
		return "", newLoadError("InvalidFormat", archivePath, err)
	}
	return dir, nil
}
