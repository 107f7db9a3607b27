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

package release_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apache/cloudberry-devops-release/pkg/release"
)

func TestGenerateAndVerifyChecksums(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	artifact := filepath.Join(dir, "apache-cloudberry-incubating-2.0.0-src.tar.gz")
	require.NoError(t, os.WriteFile(artifact, []byte("not really a tarball"), 0o644))

	sidecars, err := release.GenerateChecksums(artifact)
	require.NoError(t, err)
	require.Len(t, sidecars, 2)

	for _, sidecar := range sidecars {
		content, err := os.ReadFile(sidecar)
		require.NoError(t, err)

		// sha256sum compatible: "<digest>  <basename>"
		fields := strings.Fields(string(content))
		require.Len(t, fields, 2)
		require.Equal(t, filepath.Base(artifact), fields[1])

		require.NoError(t, release.VerifyChecksum(sidecar))
	}
}

func TestVerifyChecksumMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	artifact := filepath.Join(dir, "artifact.tar.gz")
	require.NoError(t, os.WriteFile(artifact, []byte("payload"), 0o644))

	sidecars, err := release.GenerateChecksums(artifact)
	require.NoError(t, err)

	// Corrupt the artifact after hashing.
	require.NoError(t, os.WriteFile(artifact, []byte("tampered"), 0o644))

	for _, sidecar := range sidecars {
		require.Error(t, release.VerifyChecksum(sidecar))
	}
}

func TestVersionNaming(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"apache-cloudberry-incubating-2.0.0-src.tar.gz",
		release.SourceArchiveName("2.0.0"),
	)
	require.Equal(t,
		"apache-cloudberry-incubating-2.0.0/",
		release.ArchivePrefix("2.0.0"),
	)

	version, err := release.ParseVersion("v2.0.0")
	require.NoError(t, err)
	require.Equal(t, "2.0.0", version.String())

	_, err = release.ParseVersion("not-a-version")
	require.Error(t, err)
}
