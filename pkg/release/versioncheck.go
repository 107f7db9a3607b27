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

package release

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// MetadataFile describes one file carrying the release version and the
// pattern extracting it. The pattern's first capture group has to yield the
// version string.
type MetadataFile struct {
	Path     string
	Pattern  *regexp.Regexp
	Optional bool
}

// DefaultMetadataFiles returns the set of files which have to agree on the
// release version before a tag may be cut.
func DefaultMetadataFiles() []MetadataFile {
	return []MetadataFile{
		{
			Path:    "configure.ac",
			Pattern: regexp.MustCompile(`(?m)^AC_INIT\(\[Apache Cloudberry\],\s*\[([^\]]+)\]`),
		},
		{
			Path:    "VERSION",
			Pattern: regexp.MustCompile(`(?m)^\s*([0-9][^\s]*)\s*$`),
		},
		{
			Path:     filepath.Join("concourse", "cloudberry-db.spec"),
			Pattern:  regexp.MustCompile(`(?m)^Version:\s*(\S+)`),
			Optional: true,
		},
		{
			Path:     filepath.Join("debian", "changelog"),
			Pattern:  regexp.MustCompile(`(?m)^cloudberry-db \(([^)-]+)`),
			Optional: true,
		},
	}
}

// VersionChecker validates that all version carrying metadata files of a
// repository agree with the release version being staged.
type VersionChecker struct {
	impl  versionCheckerImpl
	files []MetadataFile
}

// NewVersionChecker creates a VersionChecker over the default metadata file
// set.
func NewVersionChecker() *VersionChecker {
	return &VersionChecker{
		impl:  &defaultVersionCheckerImpl{},
		files: DefaultMetadataFiles(),
	}
}

// SetImpl can be used to set the internal version checker implementation.
func (v *VersionChecker) SetImpl(impl versionCheckerImpl) {
	v.impl = impl
}

// SetFiles overrides the metadata file set.
func (v *VersionChecker) SetFiles(files []MetadataFile) {
	v.files = files
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate . versionCheckerImpl
type versionCheckerImpl interface {
	ReadFile(path string) ([]byte, error)
	FileExists(path string) bool
}

type defaultVersionCheckerImpl struct{}

func (*defaultVersionCheckerImpl) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (*defaultVersionCheckerImpl) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Run extracts the version from every metadata file below `repoPath` and
// requires each to equal `version`. All mismatches are reported at once.
func (v *VersionChecker) Run(repoPath, version string) error {
	mismatches := []string{}
	checked := 0

	for _, file := range v.files {
		path := filepath.Join(repoPath, file.Path)

		if !v.impl.FileExists(path) {
			if file.Optional {
				logrus.Debugf("Skipping optional metadata file %s", file.Path)
				continue
			}
			return fmt.Errorf("required metadata file %q does not exist", file.Path)
		}

		content, err := v.impl.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading metadata file %q: %w", file.Path, err)
		}

		match := file.Pattern.FindSubmatch(content)
		if match == nil {
			return fmt.Errorf(
				"no version found in %q using pattern %q",
				file.Path, file.Pattern.String(),
			)
		}

		found := strings.TrimSpace(string(match[1]))
		checked++
		if found != version {
			mismatches = append(mismatches, fmt.Sprintf(
				"%s: expected %q, found %q", file.Path, version, found,
			))
			continue
		}
		logrus.Infof("Version %s confirmed in %s", version, file.Path)
	}

	if checked == 0 {
		return fmt.Errorf("no metadata file carries a version in %q", repoPath)
	}

	if len(mismatches) > 0 {
		return fmt.Errorf(
			"version mismatch across metadata files:\n%s",
			strings.Join(mismatches, "\n"),
		)
	}

	return nil
}
