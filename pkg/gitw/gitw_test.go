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

package gitw_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"sigs.k8s.io/release-utils/command"

	"github.com/apache/cloudberry-devops-release/pkg/gitw"
)

func initRepo(t *testing.T, dir string) {
	t.Helper()

	for _, args := range [][]string{
		{"init", "--initial-branch=main", "."},
		{"config", "user.name", "Cloudberry Tester"},
		{"config", "user.email", "test@cloudberry.local"},
	} {
		require.NoError(t, command.NewWithWorkDir(dir, "git", args...).RunSilentSuccess())
	}
}

func commitAll(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, command.NewWithWorkDir(dir, "git", "add", ".").RunSilentSuccess())
	require.NoError(t, command.NewWithWorkDir(
		dir, "git", "commit", "-m", "initial commit",
	).RunSilentSuccess())
}

func newTestRepo(t *testing.T) *gitw.Repo {
	t.Helper()

	if !command.Available("git") {
		t.Skip("git is not available")
	}

	dir := t.TempDir()
	initRepo(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "VERSION"), []byte("1.0.0\n"), 0o644))
	commitAll(t, dir)

	repo, err := gitw.OpenRepo(dir)
	require.NoError(t, err)
	return repo
}

// newTestRepoWithSubmodules builds a superproject containing a submodule
// at deps/sub which itself contains a submodule at nested.
func newTestRepoWithSubmodules(t *testing.T) *gitw.Repo {
	t.Helper()

	if !command.Available("git") {
		t.Skip("git is not available")
	}

	// Submodule clones in this test go through the local filesystem.
	t.Setenv("GIT_CONFIG_COUNT", "1")
	t.Setenv("GIT_CONFIG_KEY_0", "protocol.file.allow")
	t.Setenv("GIT_CONFIG_VALUE_0", "always")

	base := t.TempDir()

	nested := filepath.Join(base, "nested")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	initRepo(t, nested)
	require.NoError(t, os.WriteFile(filepath.Join(nested, "README"), []byte("nested\n"), 0o644))
	commitAll(t, nested)

	sub := filepath.Join(base, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	initRepo(t, sub)
	require.NoError(t, os.WriteFile(filepath.Join(sub, "README"), []byte("sub\n"), 0o644))
	require.NoError(t, command.NewWithWorkDir(
		sub, "git", "submodule", "add", nested, "nested",
	).RunSilentSuccess())
	commitAll(t, sub)

	super := filepath.Join(base, "super")
	require.NoError(t, os.MkdirAll(super, 0o755))
	initRepo(t, super)
	require.NoError(t, os.WriteFile(filepath.Join(super, "VERSION"), []byte("1.0.0\n"), 0o644))
	require.NoError(t, command.NewWithWorkDir(
		super, "git", "submodule", "add", sub, "deps/sub",
	).RunSilentSuccess())
	require.NoError(t, command.NewWithWorkDir(
		super, "git", "submodule", "update", "--init", "--recursive",
	).RunSilentSuccess())
	commitAll(t, super)

	repo, err := gitw.OpenRepo(super)
	require.NoError(t, err)
	return repo
}

func TestIsClean(t *testing.T) {
	repo := newTestRepo(t)

	clean, err := repo.IsClean()
	require.NoError(t, err)
	require.True(t, clean)

	require.NoError(t, os.WriteFile(
		filepath.Join(repo.Dir(), "untracked.txt"), []byte("x"), 0o644,
	))

	clean, err = repo.IsClean()
	require.NoError(t, err)
	require.False(t, clean)
}

func TestTagLifecycle(t *testing.T) {
	repo := newTestRepo(t)

	// Missing tag resolves to the empty SHA.
	sha, err := repo.TagSHA("1.0.0")
	require.NoError(t, err)
	require.Empty(t, sha)

	require.NoError(t, repo.CreateTag("1.0.0", "Apache Cloudberry 1.0.0"))

	head, err := repo.HeadSHA()
	require.NoError(t, err)

	sha, err = repo.TagSHA("1.0.0")
	require.NoError(t, err)
	require.Equal(t, head, sha)
}

func TestArchive(t *testing.T) {
	repo := newTestRepo(t)

	out := filepath.Join(t.TempDir(), "src.tar")
	require.NoError(t, repo.Archive("HEAD", "apache-cloudberry-incubating-1.0.0/", out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestSubmodulesEmpty(t *testing.T) {
	repo := newTestRepo(t)

	subs, err := repo.Submodules()
	require.NoError(t, err)
	require.Empty(t, subs)
}

func TestSubmodulesRecursive(t *testing.T) {
	repo := newTestRepoWithSubmodules(t)

	subs, err := repo.Submodules()
	require.NoError(t, err)
	require.Len(t, subs, 2)
	require.Equal(t, "deps/sub", subs[0].Path)
	require.Equal(t, "deps/sub/nested", subs[1].Path)
}

func TestCloneRepoKeepsSubmodules(t *testing.T) {
	source := newTestRepoWithSubmodules(t)

	clone, err := gitw.CloneRepo(source.Dir(), filepath.Join(t.TempDir(), "clone"))
	require.NoError(t, err)

	// The clone has to archive the same content as the source.
	subs, err := clone.Submodules()
	require.NoError(t, err)
	require.Len(t, subs, 2)
	require.Equal(t, "deps/sub", subs[0].Path)
	require.Equal(t, "deps/sub/nested", subs[1].Path)

	require.NoError(t, clone.UpdateSubmodules())
}
