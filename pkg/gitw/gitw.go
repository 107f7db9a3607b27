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

// Package gitw wraps the git operations needed for staging Apache Cloudberry
// releases. Read only queries go through go-git, everything that mutates the
// repository or talks to a remote shells out to the git binary.
package gitw

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"sigs.k8s.io/release-utils/command"
)

const (
	// DefaultRemote is the remote used for head and tag checks.
	DefaultRemote = "origin"

	// DefaultBranch is the default branch of the Cloudberry repositories.
	DefaultBranch = "main"
)

// Repo is a local git repository.
type Repo struct {
	inner *git.Repository
	dir   string
}

// Submodule describes an initialized git submodule.
type Submodule struct {
	Name string
	Path string
}

// OpenRepo opens the repository at `path`.
func OpenRepo(path string) (*Repo, error) {
	inner, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening git repository %q: %w", path, err)
	}
	return &Repo{inner: inner, dir: path}, nil
}

// CloneRepo creates a full local clone of `src` in `dst`, including all
// submodules so that the clone archives the same content as the source.
func CloneRepo(src, dst string) (*Repo, error) {
	if err := command.New(
		"git", "clone", "--no-hardlinks", "--recurse-submodules", src, dst,
	).RunSilentSuccess(); err != nil {
		return nil, fmt.Errorf("cloning %q to %q: %w", src, dst, err)
	}
	return OpenRepo(dst)
}

// Dir returns the repository directory.
func (r *Repo) Dir() string {
	return r.dir
}

// IsClean verifies that the worktree has no staged, unstaged or untracked
// changes.
func (r *Repo) IsClean() (bool, error) {
	status, err := command.NewWithWorkDir(
		r.dir, "git", "status", "--porcelain",
	).RunSilentSuccessOutput()
	if err != nil {
		return false, fmt.Errorf("getting worktree status: %w", err)
	}
	return strings.TrimSpace(status.Output()) == "", nil
}

// HeadSHA resolves the current HEAD to a commit SHA.
func (r *Repo) HeadSHA() (string, error) {
	head, err := r.inner.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// TagSHA returns the commit SHA the tag points to, peeling annotated tags.
// It returns an empty string if the tag does not exist.
func (r *Repo) TagSHA(tag string) (string, error) {
	ref, err := r.inner.Tag(tag)
	if err != nil {
		if err == git.ErrTagNotFound {
			return "", nil
		}
		return "", fmt.Errorf("looking up tag %q: %w", tag, err)
	}

	if tagObject, err := r.inner.TagObject(ref.Hash()); err == nil {
		return tagObject.Target.String(), nil
	} else if err != plumbing.ErrObjectNotFound {
		return "", fmt.Errorf("reading tag object %q: %w", tag, err)
	}

	// Lightweight tag, the ref points at the commit directly.
	return ref.Hash().String(), nil
}

// CreateTag creates an annotated tag at HEAD.
func (r *Repo) CreateTag(tag, message string) error {
	if err := command.NewWithWorkDir(
		r.dir, "git", "tag", "-a", "-m", message, tag,
	).RunSilentSuccess(); err != nil {
		return fmt.Errorf("creating tag %q: %w", tag, err)
	}
	return nil
}

// RemoteHeadSHA returns the commit the remote branch currently points to.
func (r *Repo) RemoteHeadSHA(remote, branch string) (string, error) {
	output, err := command.NewWithWorkDir(
		r.dir, "git", "ls-remote", remote, "refs/heads/"+branch,
	).RunSilentSuccessOutput()
	if err != nil {
		return "", fmt.Errorf("listing remote head of %s/%s: %w", remote, branch, err)
	}

	fields := strings.Fields(output.OutputTrimNL())
	if len(fields) == 0 {
		return "", fmt.Errorf("remote %s has no branch %q", remote, branch)
	}
	return fields[0], nil
}

// Archive exports the tree of `ref` into the plain tarball `outputPath`,
// storing all entries below `prefix`.
func (r *Repo) Archive(ref, prefix, outputPath string) error {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if err := command.NewWithWorkDir(
		r.dir, "git", "archive", "--format=tar",
		"--prefix="+prefix, "--output="+outputPath, ref,
	).RunSilentSuccess(); err != nil {
		return fmt.Errorf("archiving %q from %q: %w", ref, r.dir, err)
	}
	return nil
}

// ArchiveSubmodule exports the checked out tree of a submodule the same way
// Archive does for the superproject.
func (r *Repo) ArchiveSubmodule(sub Submodule, prefix, outputPath string) error {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if err := command.NewWithWorkDir(
		r.dir, "git", "-C", sub.Path, "archive", "--format=tar",
		"--prefix="+prefix, "--output="+outputPath, "HEAD",
	).RunSilentSuccess(); err != nil {
		return fmt.Errorf("archiving submodule %q: %w", sub.Name, err)
	}
	return nil
}

// Submodules enumerates the initialized submodules of the repository,
// including the submodules of submodules. Paths are relative to the
// superproject root.
func (r *Repo) Submodules() ([]Submodule, error) {
	return r.submodules("")
}

func (r *Repo) submodules(pathPrefix string) ([]Submodule, error) {
	worktree, err := r.inner.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	subs, err := worktree.Submodules()
	if err != nil {
		return nil, fmt.Errorf("enumerating submodules: %w", err)
	}

	res := []Submodule{}
	for _, sub := range subs {
		name := sub.Config().Name
		subPath := path.Join(pathPrefix, sub.Config().Path)

		status, err := sub.Status()
		if err != nil {
			return nil, fmt.Errorf("getting status of submodule %q: %w", name, err)
		}
		if status.Current.IsZero() {
			// Not initialized, nothing to archive.
			continue
		}
		res = append(res, Submodule{Name: name, Path: subPath})

		subRepo, err := sub.Repository()
		if err != nil {
			return nil, fmt.Errorf("opening submodule %q: %w", name, err)
		}
		nested, err := (&Repo{
			inner: subRepo,
			dir:   filepath.Join(r.dir, sub.Config().Path),
		}).submodules(subPath)
		if err != nil {
			return nil, err
		}
		res = append(res, nested...)
	}
	return res, nil
}

// UpdateSubmodules brings all submodule worktrees in sync with the
// currently checked out revision.
func (r *Repo) UpdateSubmodules() error {
	if err := command.NewWithWorkDir(
		r.dir, "git", "submodule", "update", "--init", "--recursive",
	).RunSilentSuccess(); err != nil {
		return fmt.Errorf("updating submodules: %w", err)
	}
	return nil
}

// Checkout checks out the provided revision.
func (r *Repo) Checkout(rev string) error {
	if err := command.NewWithWorkDir(
		r.dir, "git", "checkout", rev,
	).RunSilentSuccess(); err != nil {
		return fmt.Errorf("checking out %q: %w", rev, err)
	}
	return nil
}
