/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package tar

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Compress creates the gzipped tarball `tarFilePath` from the contents of
// `root`. Entries are stored relative to `root`, which means the caller is
// responsible for laying out the top level directory prefix inside of it.
// Paths matching any of the `excludes` regular expressions are skipped.
func Compress(tarFilePath, root string, excludes ...*regexp.Regexp) error {
	tarFile, err := os.Create(tarFilePath)
	if err != nil {
		return fmt.Errorf("create tar file %q: %w", tarFilePath, err)
	}
	defer tarFile.Close()

	gzipWriter := gzip.NewWriter(tarFile)
	defer gzipWriter.Close()

	tarWriter := tar.NewWriter(gzipWriter)
	defer tarWriter.Close()

	if err := filepath.Walk(root, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if filePath == root || filePath == tarFilePath {
			return nil
		}

		for _, re := range excludes {
			if re != nil && re.MatchString(filePath) {
				if fileInfo.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		link := ""
		if fileInfo.Mode()&os.ModeSymlink != 0 {
			if link, err = os.Readlink(filePath); err != nil {
				return fmt.Errorf("read symlink %q: %w", filePath, err)
			}
		}

		header, err := tar.FileInfoHeader(fileInfo, link)
		if err != nil {
			return fmt.Errorf("create file info header for %q: %w", filePath, err)
		}

		relPath, err := filepath.Rel(root, filePath)
		if err != nil {
			return fmt.Errorf("relative path for %q: %w", filePath, err)
		}
		header.Name = filepath.ToSlash(relPath)
		if fileInfo.IsDir() {
			header.Name += "/"
		}

		if err := tarWriter.WriteHeader(header); err != nil {
			return fmt.Errorf("writing tar header: %w", err)
		}

		if !fileInfo.Mode().IsRegular() {
			return nil
		}

		file, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("open file %q: %w", filePath, err)
		}
		defer file.Close()

		if _, err := io.Copy(tarWriter, file); err != nil {
			return fmt.Errorf("writing file to tar writer: %w", err)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walking tree in %q: %w", root, err)
	}

	return nil
}

// Extract unpacks the tarball at `tarPath` into the directory `dst`. Both
// plain and gzip compressed tarballs are supported, the format is sniffed
// from the file magic. Entries escaping `dst` are rejected.
func Extract(tarPath, dst string) error {
	file, err := os.Open(tarPath)
	if err != nil {
		return fmt.Errorf("opening tar file %q: %w", tarPath, err)
	}
	defer file.Close()

	reader, err := decompress(file)
	if err != nil {
		return err
	}

	tarReader := tar.NewReader(reader)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar entry: %w", err)
		}

		target, err := sanitizePath(dst, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(header.Mode)); err != nil {
				return fmt.Errorf("creating directory %q: %w", target, err)
			}

		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("creating parent directory of %q: %w", target, err)
			}
			outFile, err := os.OpenFile(
				target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(header.Mode),
			)
			if err != nil {
				return fmt.Errorf("creating file %q: %w", target, err)
			}
			if _, err := io.Copy(outFile, tarReader); err != nil {
				outFile.Close()
				return fmt.Errorf("extracting file %q: %w", target, err)
			}
			outFile.Close()

		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("creating parent directory of %q: %w", target, err)
			}
			if err := os.Symlink(header.Linkname, target); err != nil {
				return fmt.Errorf("creating symlink %q: %w", target, err)
			}

		case tar.TypeXGlobalHeader:
			// git archive writes the commit ID as a global pax header

		default:
			return fmt.Errorf(
				"unsupported tar entry type %d for %q", header.Typeflag, header.Name,
			)
		}
	}

	return nil
}

func decompress(file *os.File) (io.Reader, error) {
	magic := make([]byte, 2)
	if _, err := io.ReadFull(file, magic); err != nil {
		return nil, fmt.Errorf("reading file magic: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding tar file: %w", err)
	}

	if magic[0] == 0x1f && magic[1] == 0x8b {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return gzipReader, nil
	}
	return file, nil
}

func sanitizePath(dst, name string) (string, error) {
	target := filepath.Join(dst, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(dst)+string(os.PathSeparator)) {
		return "", fmt.Errorf("tar entry %q escapes destination directory", name)
	}
	return target, nil
}
