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

// Package stage implements the Apache Cloudberry (Incubating) release
// staging pipeline: it validates the repository, cuts the release tag,
// assembles the source tarball and produces the checksum and signature
// sidecars next to it.
package stage

import (
	"errors"
	"fmt"

	"github.com/apache/cloudberry-devops-release/pkg/gitw"
	"github.com/apache/cloudberry-devops-release/pkg/release"
	"sigs.k8s.io/release-utils/log"
	"sigs.k8s.io/release-utils/version"
)

// Options are settings for the release staging process.
type Options struct {
	// Tag is the release tag to be staged, for example `v2.0.0`.
	Tag string

	// RepoPath is the local path to the repository being staged.
	RepoPath string

	// StageDir is the directory where the staged artifacts land.
	StageDir string

	// GPGUser is the user id of the key used for signing the artifacts.
	GPGUser string

	// SkipSigning skips artifact signing entirely.
	SkipSigning bool

	// SkipRemoteCheck skips verifying that the local HEAD matches the
	// remote default branch head.
	SkipRemoteCheck bool

	// ForceTagReuse allows staging from an already existing tag which
	// does not point at HEAD.
	ForceTagReuse bool

	// NoMock stages from the real repository. The default mock mode
	// clones the repository first so that the tag never touches it.
	NoMock bool
}

// DefaultOptions returns new staging options with sane defaults applied.
func DefaultOptions() *Options {
	return &Options{
		RepoPath: ".",
		StageDir: "stage",
	}
}

// Validate checks the options for completeness and populates the
// provided state with the parsed release version.
func (o *Options) Validate(state *State) error {
	if o.Tag == "" {
		return errors.New("no release tag provided")
	}
	if o.StageDir == "" {
		return errors.New("no stage directory provided")
	}
	if o.RepoPath == "" {
		return errors.New("no repository path provided")
	}
	if !o.SkipSigning && o.GPGUser == "" {
		return errors.New("no GPG user id provided, use --skip-signing to stage unsigned")
	}

	semverVersion, err := release.ParseVersion(o.Tag)
	if err != nil {
		return fmt.Errorf("invalid release tag: %w", err)
	}
	state.version = semverVersion.String()

	return nil
}

// State holds all artifacts of the staging process.
type State struct {
	version string

	sourceRepo *gitw.Repo
	workRepo   *gitw.Repo
	mockDir    string

	// sourceSHA is the commit the release is staged from.
	sourceSHA string

	// artifacts are the files to be checksummed and signed.
	artifacts []string
}

// NewState creates a new empty staging state.
func NewState() *State {
	return &State{}
}

// Version returns the release version being staged, without `v` prefix.
func (s *State) Version() string {
	return s.version
}

// Stage is the main structure of this package.
type Stage struct {
	client stageClient
}

// NewStage creates a new Stage instance.
func NewStage(options *Options) *Stage {
	return &Stage{
		client: NewDefaultStage(options),
	}
}

// SetClient can be used to set the internal stage client.
func (s *Stage) SetClient(client stageClient) {
	s.client = client
}

// stageClient is the interface the stage run is driven through. It
// stays private so that the main logic lives in this package.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate . stageClient
type stageClient interface {
	// InitState initializes the default internal state.
	InitState()

	// ValidateOptions validates the stage options.
	ValidateOptions() error

	// CheckPrerequisites verifies that all required commands and
	// enough disk space are available.
	CheckPrerequisites() error

	// CheckWorkingTree verifies that the repository is clean and in
	// sync with the remote default branch.
	CheckWorkingTree() error

	// CheckVersionConsistency verifies that all version carrying
	// metadata files agree on the version being staged.
	CheckVersionConsistency() error

	// InitWorkingRepository prepares the repository the tag gets
	// created in, a throwaway clone unless running with NoMock.
	InitWorkingRepository() error

	// TagRepository creates or reuses the release tag.
	TagRepository() error

	// AssembleSourceArchive builds the release source tarball from the
	// tagged tree and all initialized submodules.
	AssembleSourceArchive() error

	// GenerateChecksums writes and verifies the checksum sidecar files
	// for every staged artifact.
	GenerateChecksums() error

	// SignArtifacts signs and verifies every staged artifact.
	SignArtifacts() error
}

// Run invokes the stage process in order.
func (s *Stage) Run() error {
	s.client.InitState()

	logger := log.NewStepLogger(9)
	v := version.GetVersionInfo()
	logger.Infof("Using cbrel version: %s", v.GitVersion)

	logger.WithStep().Info("Validating options")
	if err := s.client.ValidateOptions(); err != nil {
		return fmt.Errorf("validate options: %w", err)
	}

	logger.WithStep().Info("Checking prerequisites")
	if err := s.client.CheckPrerequisites(); err != nil {
		return fmt.Errorf("check prerequisites: %w", err)
	}

	logger.WithStep().Info("Checking the working tree")
	if err := s.client.CheckWorkingTree(); err != nil {
		return fmt.Errorf("check working tree: %w", err)
	}

	logger.WithStep().Info("Checking version consistency")
	if err := s.client.CheckVersionConsistency(); err != nil {
		return fmt.Errorf("check version consistency: %w", err)
	}

	logger.WithStep().Info("Initializing the working repository")
	if err := s.client.InitWorkingRepository(); err != nil {
		return fmt.Errorf("initialize working repository: %w", err)
	}

	logger.WithStep().Info("Tagging the repository")
	if err := s.client.TagRepository(); err != nil {
		return fmt.Errorf("tag repository: %w", err)
	}

	logger.WithStep().Info("Assembling the source archive")
	if err := s.client.AssembleSourceArchive(); err != nil {
		return fmt.Errorf("assemble source archive: %w", err)
	}

	logger.WithStep().Info("Generating checksums")
	if err := s.client.GenerateChecksums(); err != nil {
		return fmt.Errorf("generate checksums: %w", err)
	}

	logger.WithStep().Info("Signing artifacts")
	if err := s.client.SignArtifacts(); err != nil {
		return fmt.Errorf("sign artifacts: %w", err)
	}

	return nil
}
