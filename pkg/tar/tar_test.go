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

package tar_test

import (
	archivetar "archive/tar"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apache/cloudberry-devops-release/pkg/tar"
)

func TestCompressExtractRoundTrip(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "prefix-1.0.0", "src"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(src, "prefix-1.0.0", "VERSION"), []byte("1.0.0\n"), 0o644,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(src, "prefix-1.0.0", "src", "main.c"), []byte("int main(){}\n"), 0o644,
	))
	require.NoError(t, os.Symlink(
		"VERSION", filepath.Join(src, "prefix-1.0.0", "VERSION.link"),
	))

	tarball := filepath.Join(t.TempDir(), "out.tar.gz")
	require.NoError(t, tar.Compress(tarball, src))

	dst := t.TempDir()
	require.NoError(t, tar.Extract(tarball, dst))

	content, err := os.ReadFile(filepath.Join(dst, "prefix-1.0.0", "VERSION"))
	require.NoError(t, err)
	require.Equal(t, "1.0.0\n", string(content))

	content, err = os.ReadFile(filepath.Join(dst, "prefix-1.0.0", "src", "main.c"))
	require.NoError(t, err)
	require.Equal(t, "int main(){}\n", string(content))

	link, err := os.Readlink(filepath.Join(dst, "prefix-1.0.0", "VERSION.link"))
	require.NoError(t, err)
	require.Equal(t, "VERSION", link)
}

func TestCompressExcludes(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".git", "HEAD"), []byte("ref"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "keep.txt"), []byte("x"), 0o644))

	tarball := filepath.Join(t.TempDir(), "out.tar.gz")
	require.NoError(t, tar.Compress(tarball, src, regexp.MustCompile(`\.git`)))

	dst := t.TempDir()
	require.NoError(t, tar.Extract(tarball, dst))

	_, err := os.Stat(filepath.Join(dst, "keep.txt"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dst, ".git"))
	require.True(t, os.IsNotExist(err))
}

func TestExtractPlainTar(t *testing.T) {
	t.Parallel()

	// A plain (non gzipped) tarball as produced by `git archive`.
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "file"), []byte("data"), 0o644))

	gzipped := filepath.Join(t.TempDir(), "out.tar.gz")
	require.NoError(t, tar.Compress(gzipped, src))

	dst := t.TempDir()
	require.NoError(t, tar.Extract(gzipped, dst))
	_, err := os.Stat(filepath.Join(dst, "file"))
	require.NoError(t, err)
}

func TestExtractRejectsPathTraversal(t *testing.T) {
	t.Parallel()

	evil := filepath.Join(t.TempDir(), "evil.tar")
	file, err := os.Create(evil)
	require.NoError(t, err)

	writer := archivetar.NewWriter(file)
	require.NoError(t, writer.WriteHeader(&archivetar.Header{
		Name: "../escape.txt",
		Mode: 0o644,
		Size: 4,
	}))
	_, err = writer.Write([]byte("oops"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())

	require.Error(t, tar.Extract(evil, t.TempDir()))
}
