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

// Package cbpkg renders the RPM and DEB packaging templates and drives
// the native package builders over them.
package cbpkg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/release-utils/command"
	"sigs.k8s.io/release-utils/util"

	"github.com/apache/cloudberry-devops-release/pkg/cbpkg/options"
	"github.com/apache/cloudberry-devops-release/pkg/release"
	"github.com/apache/cloudberry-devops-release/pkg/tar"
)

type ChannelType string

const (
	ChannelRelease ChannelType = "release"
	ChannelTesting ChannelType = "testing"
	ChannelNightly ChannelType = "nightly"

	specFileName = "cloudberry-db.spec"
)

var (
	buildArchMap = map[string]map[options.BuildType]string{
		"amd64": {
			"deb": "amd64",
			"rpm": "x86_64",
		},
		"arm64": {
			"deb": "arm64",
			"rpm": "aarch64",
		},
		"ppc64le": {
			"deb": "ppc64el",
			"rpm": "ppc64le",
		},
	}

	builtins = map[string]interface{}{
		"date": func() string {
			return time.Now().Format(time.RFC1123Z)
		},
		// The rpm changelog format rejects RFC1123Z dates.
		"rpmdate": func() string {
			return time.Now().Format("Mon Jan 02 2006")
		},
	}
)

type Client struct {
	options *options.Options
	impl    Impl
}

func New(o *options.Options) *Client {
	return &Client{
		options: o,
		impl:    &impl{},
	}
}

func (c *Client) SetImpl(impl Impl) {
	c.impl = impl
}

type impl struct{}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate . Impl
type Impl interface {
	RunSuccessWithWorkDir(workDir, cmd string, args ...string) error
	ReadFile(string) ([]byte, error)
	WriteFile(string, []byte, os.FileMode) error
	Glob(pattern string) ([]string, error)
	CopyFile(src, dst string) error
	ExtractTar(tarPath, dst string) error
	Rename(oldPath, newPath string) error
}

func (i *impl) RunSuccessWithWorkDir(workDir, cmd string, args ...string) error {
	return command.NewWithWorkDir(workDir, cmd, args...).RunSuccess()
}

func (i *impl) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

func (i *impl) WriteFile(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}

func (i *impl) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

func (i *impl) CopyFile(src, dst string) error {
	return util.CopyFileLocal(src, dst, true)
}

func (i *impl) ExtractTar(tarPath, dst string) error {
	return tar.Extract(tarPath, dst)
}

func (i *impl) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

type Build struct {
	Type        options.BuildType
	Package     string
	Definitions []*PackageDefinition
	TemplateDir string
}

type PackageDefinition struct {
	Name     string
	Version  string
	Revision string

	Channel ChannelType
}

type buildConfig struct {
	*PackageDefinition
	Type      options.BuildType
	GoArch    string
	BuildArch string
	Package   string

	InstallPrefix string
	AdminUser     string

	TemplateDir string
	workspace   string
	sourcePath  string
	specOnly    bool
}

func (c *Client) ConstructBuilds() ([]Build, error) {
	logrus.Infof("Constructing builds...")

	builds := []Build{}

	for _, pkg := range c.options.Packages() {
		packageTemplateDir := filepath.Join(c.options.TypeTemplateDir(), pkg)
		if _, err := os.Stat(packageTemplateDir); err != nil {
			return nil, fmt.Errorf("finding package template dir: %w", err)
		}

		b := &Build{
			Type:        c.options.BuildType(),
			Package:     pkg,
			TemplateDir: packageTemplateDir,
		}

		for _, channel := range c.options.Channels() {
			b.Definitions = append(b.Definitions, &PackageDefinition{
				Name:     pkg,
				Version:  util.TrimTagPrefix(c.options.Version()),
				Revision: c.options.Revision(),
				Channel:  ChannelType(channel),
			})
		}

		builds = append(builds, *b)
	}

	logrus.Infof("Successfully constructed builds")

	return builds, nil
}

func (c *Client) WalkBuilds(builds []Build) (err error) {
	logrus.Infof("Walking builds...")

	workingDir := os.Getenv("CBPKG_WORKING_DIR")
	if workingDir == "" {
		workingDir, err = os.MkdirTemp("", "cbpkg")
		if err != nil {
			return err
		}
	}

	for _, arch := range c.options.Architectures() {
		for _, build := range builds {
			for _, packageDef := range build.Definitions {
				if err := c.buildPackage(build, packageDef, arch, workingDir); err != nil {
					return err
				}
			}
		}
	}
	if c.options.SpecOnly() {
		logrus.Infof("Package specs have been saved in %s", workingDir)
	}
	logrus.Infof("Successfully walked builds")

	return nil
}

func (c *Client) buildPackage(build Build, packageDef *PackageDefinition, arch, tmpDir string) error {
	if packageDef == nil {
		return errors.New("package definition cannot be nil")
	}

	pd := &PackageDefinition{}
	*pd = *packageDef

	bc := &buildConfig{
		PackageDefinition: pd,
		Type:              build.Type,
		Package:           build.Package,
		GoArch:            arch,
		BuildArch:         getBuildArch(arch, build.Type),
		InstallPrefix:     release.InstallPrefix,
		AdminUser:         release.AdminUser,
		TemplateDir:       build.TemplateDir,
		workspace:         tmpDir,
		sourcePath:        c.options.SourcePath(),
		specOnly:          c.options.SpecOnly(),
	}
	if bc.BuildArch == "" {
		return fmt.Errorf("no %s architecture mapping for %q", build.Type, arch)
	}

	logrus.Infof(
		"Building %s package for %s/%s architecture...",
		bc.Package, bc.GoArch, bc.BuildArch,
	)

	return c.run(bc)
}

func (c *Client) run(bc *buildConfig) error {
	workspaceInfo, err := os.Stat(bc.workspace)
	if err != nil {
		return err
	}

	specDir := filepath.Join(bc.workspace, string(bc.Channel), bc.Package)
	specDirWithArch := filepath.Join(specDir, bc.GoArch)

	if err := os.MkdirAll(specDirWithArch, workspaceInfo.Mode()); err != nil {
		return err
	}

	if !bc.specOnly {
		defer os.RemoveAll(specDirWithArch)
	}

	if err := renderTemplateDir(bc, bc.TemplateDir, specDirWithArch); err != nil {
		return fmt.Errorf("rendering packaging templates: %w", err)
	}

	if bc.specOnly {
		logrus.Info("Spec-only mode was selected; cbpkg will now exit without building packages")
		return nil
	}

	switch bc.Type {
	case options.BuildRpm:
		return c.buildRpm(bc, specDirWithArch)
	case options.BuildDeb:
		return c.buildDeb(bc, specDirWithArch)
	}

	return nil
}

func (c *Client) buildRpm(bc *buildConfig, specDirWithArch string) error {
	logrus.Infof("Running rpmbuild for %s (%s/%s)", bc.Package, bc.GoArch, bc.BuildArch)

	// Source0 of the rendered spec, staged into the rpmbuild source dir.
	sourceTar := filepath.Join(specDirWithArch, release.SourceArchiveName(bc.Version))
	if err := c.impl.CopyFile(bc.sourcePath, sourceTar); err != nil {
		return fmt.Errorf("staging source archive: %w", err)
	}

	topDir := filepath.Join(specDirWithArch, "rpmbuild")

	if err := c.impl.RunSuccessWithWorkDir(
		specDirWithArch,
		"rpmbuild",
		"-ba",
		"--define", "_topdir "+topDir,
		"--define", "_sourcedir "+specDirWithArch,
		"--target", bc.BuildArch,
		specFileName,
	); err != nil {
		return fmt.Errorf("running rpm package build: %w", err)
	}

	rpms, err := c.impl.Glob(filepath.Join(topDir, "RPMS", bc.BuildArch, "*.rpm"))
	if err != nil {
		return fmt.Errorf("finding built rpms: %w", err)
	}
	if len(rpms) == 0 {
		return fmt.Errorf("rpmbuild produced no packages under %s", topDir)
	}

	for _, rpm := range rpms {
		if err := c.copyPackage(rpm, bc.Channel); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) buildDeb(bc *buildConfig, specDirWithArch string) error {
	logrus.Infof("Running dpkg-buildpackage for %s (%s/%s)", bc.Package, bc.GoArch, bc.BuildArch)

	// The build runs inside the unpacked source tree, with the rendered
	// debian/ dir moved into it. dpkg-buildpackage drops the artifacts
	// one level above the tree.
	if err := c.impl.ExtractTar(bc.sourcePath, specDirWithArch); err != nil {
		return fmt.Errorf("unpacking source archive: %w", err)
	}

	srcRoot := filepath.Join(
		specDirWithArch, strings.TrimSuffix(release.ArchivePrefix(bc.Version), "/"),
	)
	if err := c.impl.Rename(
		filepath.Join(specDirWithArch, "debian"),
		filepath.Join(srcRoot, "debian"),
	); err != nil {
		return fmt.Errorf("moving debian dir into the source tree: %w", err)
	}

	if err := c.impl.RunSuccessWithWorkDir(
		srcRoot,
		"dpkg-buildpackage",
		"--unsigned-source",
		"--unsigned-changes",
		"--build=binary",
		"--host-arch",
		bc.BuildArch,
	); err != nil {
		return fmt.Errorf("running debian package build: %w", err)
	}

	fileName := fmt.Sprintf(
		"%s_%s-%s_%s.deb",
		bc.Package,
		bc.Version,
		bc.Revision,
		bc.BuildArch,
	)

	return c.copyPackage(filepath.Join(specDirWithArch, fileName), bc.Channel)
}

func (c *Client) copyPackage(srcPath string, channel ChannelType) error {
	dstPath := filepath.Join("bin", string(channel), filepath.Base(srcPath))
	logrus.Infof("Using package destination path %s", dstPath)

	if err := os.MkdirAll(filepath.Dir(dstPath), os.FileMode(0o777)); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dstPath), err)
	}

	input, err := c.impl.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	if err := c.impl.WriteFile(dstPath, input, os.FileMode(0o644)); err != nil {
		return fmt.Errorf("writing file to %s: %w", dstPath, err)
	}

	logrus.Infof("Successfully built %s", dstPath)

	return nil
}

func getBuildArch(goArch string, buildType options.BuildType) string {
	return buildArchMap[goArch][buildType]
}
