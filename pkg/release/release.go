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

// Package release holds the shared domain knowledge for staging Apache
// Cloudberry (Incubating) releases: naming conventions, version handling,
// prerequisites and artifact checksums.
package release

import (
	"fmt"

	"github.com/blang/semver/v4"

	"sigs.k8s.io/release-utils/util"
)

const (
	// ProjectName is the prefix used for release tarballs and the top level
	// directory stored inside of them.
	ProjectName = "apache-cloudberry-incubating"

	// DefaultBucket is the production object storage bucket for staged
	// release artifacts.
	DefaultBucket = "cloudberry-releases"

	// TestBucket is the bucket used when running in mock mode.
	TestBucket = "cloudberry-releases-test"

	// DefaultBucketPrefix is the key prefix below which release artifacts
	// are staged.
	DefaultBucketPrefix = "releases"

	// CurrentMarker is the object name which tracks the most recently
	// staged release, the object storage equivalent of the `current`
	// symlink used in the on-disk install layout.
	CurrentMarker = "current"

	// InstallPrefix is where the packaged database lands on target hosts.
	InstallPrefix = "/usr/local/cloudberry-db"

	// AdminUser is the conventional administrative OS user of the packaged
	// database.
	AdminUser = "gpadmin"
)

// SourceArchiveName returns the file name of the source tarball for the
// provided version.
func SourceArchiveName(version string) string {
	return fmt.Sprintf("%s-%s-src.tar.gz", ProjectName, version)
}

// ArchivePrefix returns the top level directory stored inside the source
// tarball for the provided version.
func ArchivePrefix(version string) string {
	return fmt.Sprintf("%s-%s/", ProjectName, version)
}

// ParseVersion parses a release version or tag. A leading `v` is accepted
// and stripped, everything else has to be valid semver.
func ParseVersion(tag string) (semver.Version, error) {
	version, err := util.TagStringToSemver(tag)
	if err != nil {
		return semver.Version{}, fmt.Errorf("parsing version %q: %w", tag, err)
	}
	return version, nil
}
