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

package stage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/apache/cloudberry-devops-release/pkg/gitw"
	"github.com/apache/cloudberry-devops-release/pkg/gpg"
	"github.com/apache/cloudberry-devops-release/pkg/release"
	"github.com/apache/cloudberry-devops-release/pkg/tar"
)

// DefaultStage is the default staging implementation used in production.
type DefaultStage struct {
	impl    stageImpl
	options *Options
	state   *State
}

// NewDefaultStage creates a new defaultStage instance.
func NewDefaultStage(options *Options) *DefaultStage {
	return &DefaultStage{
		impl:    &defaultStageImpl{},
		options: options,
	}
}

// SetImpl can be used to set the internal stage implementation.
func (d *DefaultStage) SetImpl(impl stageImpl) {
	d.impl = impl
}

// SetState fixes the current state. Mainly used for passing
// already initialized states on testing.
func (d *DefaultStage) SetState(state *State) {
	d.state = state
}

// State returns the internal state.
func (d *DefaultStage) State() *State {
	return d.state
}

// defaultStageImpl is the default internal stage client implementation.
type defaultStageImpl struct{}

// stageImpl is the implementation of the stage client.
//
//counterfeiter:generate . stageImpl
type stageImpl interface {
	CheckPrerequisites(workdir string, commands []string) error
	MkdirAll(path string) error
	MkdirTemp(dir, pattern string) (string, error)
	RemoveAll(path string) error
	OpenRepo(path string) (*gitw.Repo, error)
	CloneRepo(src, dst string) (*gitw.Repo, error)
	IsClean(repo *gitw.Repo) (bool, error)
	HeadSHA(repo *gitw.Repo) (string, error)
	RemoteHeadSHA(repo *gitw.Repo, remote, branch string) (string, error)
	TagSHA(repo *gitw.Repo, tag string) (string, error)
	CreateTag(repo *gitw.Repo, tag, message string) error
	Checkout(repo *gitw.Repo, rev string) error
	UpdateSubmodules(repo *gitw.Repo) error
	Archive(repo *gitw.Repo, ref, prefix, path string) error
	Submodules(repo *gitw.Repo) ([]gitw.Submodule, error)
	ArchiveSubmodule(repo *gitw.Repo, sub gitw.Submodule, prefix, path string) error
	ExtractTar(tarPath, destination string) error
	CompressTar(tarFilePath, root string) error
	CheckVersionConsistency(repoPath, version string) error
	GenerateChecksums(path string) ([]string, error)
	VerifyChecksum(sidecar string) error
	SignFile(user, path string) (string, error)
	VerifySignature(user, path, sigPath string) error
}

func (*defaultStageImpl) CheckPrerequisites(workdir string, commands []string) error {
	opts := *release.DefaultPrerequisitesCheckerOptions
	opts.Commands = commands
	return release.NewPrerequisitesChecker(&opts).Run(workdir)
}

func (*defaultStageImpl) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (*defaultStageImpl) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

func (*defaultStageImpl) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (*defaultStageImpl) OpenRepo(path string) (*gitw.Repo, error) {
	return gitw.OpenRepo(path)
}

func (*defaultStageImpl) CloneRepo(src, dst string) (*gitw.Repo, error) {
	return gitw.CloneRepo(src, dst)
}

func (*defaultStageImpl) IsClean(repo *gitw.Repo) (bool, error) {
	return repo.IsClean()
}

func (*defaultStageImpl) HeadSHA(repo *gitw.Repo) (string, error) {
	return repo.HeadSHA()
}

func (*defaultStageImpl) RemoteHeadSHA(repo *gitw.Repo, remote, branch string) (string, error) {
	return repo.RemoteHeadSHA(remote, branch)
}

func (*defaultStageImpl) TagSHA(repo *gitw.Repo, tag string) (string, error) {
	return repo.TagSHA(tag)
}

func (*defaultStageImpl) CreateTag(repo *gitw.Repo, tag, message string) error {
	return repo.CreateTag(tag, message)
}

func (*defaultStageImpl) Checkout(repo *gitw.Repo, rev string) error {
	return repo.Checkout(rev)
}

func (*defaultStageImpl) UpdateSubmodules(repo *gitw.Repo) error {
	return repo.UpdateSubmodules()
}

func (*defaultStageImpl) Archive(repo *gitw.Repo, ref, prefix, path string) error {
	return repo.Archive(ref, prefix, path)
}

func (*defaultStageImpl) Submodules(repo *gitw.Repo) ([]gitw.Submodule, error) {
	return repo.Submodules()
}

func (*defaultStageImpl) ArchiveSubmodule(repo *gitw.Repo, sub gitw.Submodule, prefix, path string) error {
	return repo.ArchiveSubmodule(sub, prefix, path)
}

func (*defaultStageImpl) ExtractTar(tarPath, destination string) error {
	return tar.Extract(tarPath, destination)
}

func (*defaultStageImpl) CompressTar(tarFilePath, root string) error {
	return tar.Compress(tarFilePath, root)
}

func (*defaultStageImpl) CheckVersionConsistency(repoPath, version string) error {
	return release.NewVersionChecker().Run(repoPath, version)
}

func (*defaultStageImpl) GenerateChecksums(path string) ([]string, error) {
	return release.GenerateChecksums(path)
}

func (*defaultStageImpl) VerifyChecksum(sidecar string) error {
	return release.VerifyChecksum(sidecar)
}

func (*defaultStageImpl) SignFile(user, path string) (string, error) {
	return gpg.NewSigner(user).SignFile(path)
}

func (*defaultStageImpl) VerifySignature(user, path, sigPath string) error {
	return gpg.NewSigner(user).VerifyFile(path, sigPath)
}

// InitState initializes the default internal state.
func (d *DefaultStage) InitState() {
	d.state = NewState()
}

// ValidateOptions validates the stage options.
func (d *DefaultStage) ValidateOptions() error {
	if err := d.options.Validate(d.state); err != nil {
		return fmt.Errorf("validating options: %w", err)
	}
	return nil
}

// CheckPrerequisites verifies that all required commands are available
// and that enough disk space exists below the stage directory.
func (d *DefaultStage) CheckPrerequisites() error {
	if err := d.impl.MkdirAll(d.options.StageDir); err != nil {
		return fmt.Errorf("creating stage directory: %w", err)
	}

	commands := []string{"git", "tar"}
	if !d.options.SkipSigning {
		commands = append(commands, "gpg")
	}
	return d.impl.CheckPrerequisites(d.options.StageDir, commands)
}

// CheckWorkingTree verifies that the source repository is clean and,
// unless disabled, in sync with the remote default branch.
func (d *DefaultStage) CheckWorkingTree() error {
	repo, err := d.impl.OpenRepo(d.options.RepoPath)
	if err != nil {
		return fmt.Errorf("opening repository %q: %w", d.options.RepoPath, err)
	}
	d.state.sourceRepo = repo

	clean, err := d.impl.IsClean(repo)
	if err != nil {
		return fmt.Errorf("checking working tree: %w", err)
	}
	if !clean {
		return errors.New("repository is not clean, commit or stash all changes before staging")
	}

	if d.options.SkipRemoteCheck {
		logrus.Info("Skipping remote head check")
		return nil
	}

	headSHA, err := d.impl.HeadSHA(repo)
	if err != nil {
		return fmt.Errorf("retrieving local HEAD: %w", err)
	}
	remoteSHA, err := d.impl.RemoteHeadSHA(repo, gitw.DefaultRemote, gitw.DefaultBranch)
	if err != nil {
		return fmt.Errorf("retrieving remote head: %w", err)
	}
	if headSHA != remoteSHA {
		return fmt.Errorf(
			"local HEAD %s does not match %s/%s (%s)",
			headSHA, gitw.DefaultRemote, gitw.DefaultBranch, remoteSHA,
		)
	}

	return nil
}

// CheckVersionConsistency verifies that all version carrying metadata
// files agree with the version being staged.
func (d *DefaultStage) CheckVersionConsistency() error {
	return d.impl.CheckVersionConsistency(d.options.RepoPath, d.state.version)
}

// InitWorkingRepository prepares the repository the release tag gets
// created in. In mock mode this is a throwaway clone inside the stage
// directory so that the source repository never gets mutated.
func (d *DefaultStage) InitWorkingRepository() error {
	if d.options.NoMock {
		logrus.Info("Staging from the source repository (nomock)")
		d.state.workRepo = d.state.sourceRepo
		return nil
	}

	mockDir, err := d.impl.MkdirTemp(d.options.StageDir, "mock-")
	if err != nil {
		return fmt.Errorf("creating mock directory: %w", err)
	}
	d.state.mockDir = mockDir

	clonePath := filepath.Join(mockDir, release.ProjectName)
	logrus.Infof("Running in mock mode, cloning the repository to %s", clonePath)
	repo, err := d.impl.CloneRepo(d.options.RepoPath, clonePath)
	if err != nil {
		return fmt.Errorf("cloning repository: %w", err)
	}
	d.state.workRepo = repo

	return nil
}

// TagRepository creates or reuses the release tag on the working
// repository.
func (d *DefaultStage) TagRepository() error {
	repo := d.state.workRepo
	tag := d.options.Tag

	headSHA, err := d.impl.HeadSHA(repo)
	if err != nil {
		return fmt.Errorf("retrieving HEAD: %w", err)
	}

	tagSHA, err := d.impl.TagSHA(repo, tag)
	if err != nil {
		return fmt.Errorf("looking up tag %q: %w", tag, err)
	}

	switch {
	case tagSHA == "":
		logrus.Infof("Creating annotated tag %s at %s", tag, headSHA)
		message := fmt.Sprintf("Apache Cloudberry (Incubating) %s", d.state.version)
		if err := d.impl.CreateTag(repo, tag, message); err != nil {
			return fmt.Errorf("creating tag %q: %w", tag, err)
		}
		d.state.sourceSHA = headSHA

	case tagSHA == headSHA:
		logrus.Infof("Tag %s already points at HEAD, reusing it", tag)
		d.state.sourceSHA = tagSHA

	case d.options.ForceTagReuse:
		logrus.Infof("Tag %s points at %s, staging from the tagged commit", tag, tagSHA)
		if err := d.impl.Checkout(repo, tag); err != nil {
			return fmt.Errorf("checking out tag %q: %w", tag, err)
		}
		// The checkout leaves the submodule worktrees at the previous
		// revision, sync them before archiving.
		if err := d.impl.UpdateSubmodules(repo); err != nil {
			return fmt.Errorf("updating submodules after checkout: %w", err)
		}
		d.state.sourceSHA = tagSHA

	default:
		return fmt.Errorf(
			"tag %s already exists at %s but HEAD is %s, use --force-tag-reuse to stage from the tag",
			tag, tagSHA, headSHA,
		)
	}

	return nil
}

// AssembleSourceArchive builds the release source tarball from the
// tagged tree and every initialized submodule.
func (d *DefaultStage) AssembleSourceArchive() error {
	repo := d.state.workRepo
	version := d.state.version
	prefix := release.ArchivePrefix(version)

	versionDir := filepath.Join(d.options.StageDir, version)
	if err := d.impl.MkdirAll(versionDir); err != nil {
		return fmt.Errorf("creating version directory: %w", err)
	}

	scratchDir, err := d.impl.MkdirTemp(d.options.StageDir, "src-")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	defer func() {
		if err := d.impl.RemoveAll(scratchDir); err != nil {
			logrus.Errorf("Unable to remove scratch directory: %v", err)
		}
	}()

	// The superproject and every submodule get archived separately and
	// merged into one tree below the shared archive prefix.
	treeDir := filepath.Join(scratchDir, "tree")
	superTar := filepath.Join(scratchDir, "super.tar")
	logrus.Infof("Archiving %s at %s", d.options.Tag, d.state.sourceSHA)
	if err := d.impl.Archive(repo, d.options.Tag, prefix, superTar); err != nil {
		return fmt.Errorf("archiving repository: %w", err)
	}
	if err := d.impl.ExtractTar(superTar, treeDir); err != nil {
		return fmt.Errorf("extracting repository archive: %w", err)
	}

	submodules, err := d.impl.Submodules(repo)
	if err != nil {
		return fmt.Errorf("listing submodules: %w", err)
	}
	for i, submodule := range submodules {
		logrus.Infof("Archiving submodule %s", submodule.Path)
		subTar := filepath.Join(scratchDir, fmt.Sprintf("submodule-%d.tar", i))
		subPrefix := prefix + submodule.Path + "/"
		if err := d.impl.ArchiveSubmodule(repo, submodule, subPrefix, subTar); err != nil {
			return fmt.Errorf("archiving submodule %q: %w", submodule.Path, err)
		}
		if err := d.impl.ExtractTar(subTar, treeDir); err != nil {
			return fmt.Errorf("extracting submodule archive %q: %w", submodule.Path, err)
		}
	}

	archivePath := filepath.Join(versionDir, release.SourceArchiveName(version))
	logrus.Infof("Compressing source archive to %s", archivePath)
	if err := d.impl.CompressTar(archivePath, treeDir); err != nil {
		return fmt.Errorf("compressing source archive: %w", err)
	}
	d.state.artifacts = append(d.state.artifacts, archivePath)

	return nil
}

// GenerateChecksums writes and verifies the checksum sidecar files for
// every staged artifact.
func (d *DefaultStage) GenerateChecksums() error {
	for _, artifact := range d.state.artifacts {
		sidecars, err := d.impl.GenerateChecksums(artifact)
		if err != nil {
			return fmt.Errorf("generating checksums for %q: %w", artifact, err)
		}
		for _, sidecar := range sidecars {
			if err := d.impl.VerifyChecksum(sidecar); err != nil {
				return fmt.Errorf("verifying checksum %q: %w", sidecar, err)
			}
		}
	}
	return nil
}

// SignArtifacts signs every staged artifact and verifies the resulting
// signature.
func (d *DefaultStage) SignArtifacts() error {
	if d.options.SkipSigning {
		logrus.Info("Skipping artifact signing")
		return nil
	}

	for _, artifact := range d.state.artifacts {
		sigPath, err := d.impl.SignFile(d.options.GPGUser, artifact)
		if err != nil {
			return fmt.Errorf("signing %q: %w", artifact, err)
		}
		if err := d.impl.VerifySignature(d.options.GPGUser, artifact, sigPath); err != nil {
			return fmt.Errorf("verifying signature of %q: %w", artifact, err)
		}
	}

	return nil
}
