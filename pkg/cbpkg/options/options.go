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

package options

import (
	"fmt"
	"path/filepath"

	"sigs.k8s.io/release-utils/util"
)

type BuildType string

const (
	BuildRpm BuildType = "rpm"
	BuildDeb BuildType = "deb"

	// DefaultRevision is the package revision used if none is given.
	DefaultRevision = "1"

	// DefaultTemplateDir is the root of the packaging templates.
	DefaultTemplateDir = "templates"
)

var (
	supportedPackages = []string{
		"cloudberry-db",
	}
	supportedChannels = []string{
		"release", "testing", "nightly",
	}
	supportedArchitectures = []string{
		"amd64", "arm64", "ppc64le",
	}
)

type Options struct {
	buildType BuildType

	version  string
	revision string

	packages      []string
	channels      []string
	architectures []string

	templateDir string
	sourcePath  string
	specOnly    bool
}

func New() *Options {
	return &Options{
		revision:      DefaultRevision,
		packages:      supportedPackages,
		channels:      supportedChannels,
		architectures: supportedArchitectures,
		templateDir:   DefaultTemplateDir,
	}
}

// SupportedPackages returns the buildable packages.
func SupportedPackages() []string {
	return supportedPackages
}

// SupportedChannels returns the available release channels.
func SupportedChannels() []string {
	return supportedChannels
}

// SupportedArchitectures returns the buildable architectures.
func SupportedArchitectures() []string {
	return supportedArchitectures
}

func (o *Options) WithBuildType(buildType BuildType) *Options {
	o.buildType = buildType
	return o
}

func (o *Options) WithVersion(version string) *Options {
	o.version = version
	return o
}

func (o *Options) WithRevision(revision string) *Options {
	o.revision = revision
	return o
}

func (o *Options) WithPackages(packages ...string) *Options {
	o.packages = packages
	return o
}

func (o *Options) WithChannels(channels ...string) *Options {
	o.channels = channels
	return o
}

func (o *Options) WithArchitectures(architectures ...string) *Options {
	o.architectures = architectures
	return o
}

func (o *Options) WithTemplateDir(templateDir string) *Options {
	o.templateDir = templateDir
	return o
}

func (o *Options) WithSourcePath(sourcePath string) *Options {
	o.sourcePath = sourcePath
	return o
}

func (o *Options) WithSpecOnly(specOnly bool) *Options {
	o.specOnly = specOnly
	return o
}

func (o *Options) BuildType() BuildType {
	return o.buildType
}

func (o *Options) Version() string {
	return o.version
}

func (o *Options) Revision() string {
	return o.revision
}

func (o *Options) Packages() []string {
	return o.packages
}

func (o *Options) Channels() []string {
	return o.channels
}

func (o *Options) Architectures() []string {
	return o.architectures
}

func (o *Options) TemplateDir() string {
	return o.templateDir
}

// TypeTemplateDir is the template root for the selected build type.
func (o *Options) TypeTemplateDir() string {
	return filepath.Join(o.templateDir, string(o.buildType))
}

// SourcePath is the location of the staged source tarball consumed by
// the package builds.
func (o *Options) SourcePath() string {
	return o.sourcePath
}

func (o *Options) SpecOnly() bool {
	return o.specOnly
}

// Validate verifies if all set options are valid.
func (o *Options) Validate() error {
	if o.buildType != BuildRpm && o.buildType != BuildDeb {
		return fmt.Errorf("build type must be one of: rpm, deb")
	}
	if o.version == "" {
		return fmt.Errorf("version must be set")
	}
	if _, err := util.TagStringToSemver(o.version); err != nil {
		return fmt.Errorf("version is not valid semver: %w", err)
	}
	if ok := isSupported(o.packages, supportedPackages); !ok {
		return fmt.Errorf("package selections are not supported")
	}
	if ok := isSupported(o.channels, supportedChannels); !ok {
		return fmt.Errorf("channel selections are not supported")
	}
	if ok := isSupported(o.architectures, supportedArchitectures); !ok {
		return fmt.Errorf("architecture selections are not supported")
	}
	if !o.specOnly && o.sourcePath == "" {
		return fmt.Errorf("source archive must be set for package builds")
	}

	o.version = util.TrimTagPrefix(o.version)

	return nil
}

func isSupported(input, expected []string) bool {
	for _, i := range input {
		supported := false
		for _, j := range expected {
			if i == j {
				supported = true
				break
			}
		}
		if !supported {
			return false
		}
	}
	return true
}
