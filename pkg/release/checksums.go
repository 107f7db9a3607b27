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
	"strings"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/release-utils/hash"
)

// Checksum sidecar file extensions.
const (
	SHA256Extension = ".sha256"
	SHA512Extension = ".sha512"
)

// GenerateChecksums writes `sha256sum` compatible sidecar files next to the
// artifact and returns their paths.
func GenerateChecksums(path string) (sidecars []string, err error) {
	for extension, hasher := range map[string]func(string) (string, error){
		SHA256Extension: hash.SHA256ForFile,
		SHA512Extension: hash.SHA512ForFile,
	} {
		digest, err := hasher(path)
		if err != nil {
			return nil, fmt.Errorf("hashing %q: %w", path, err)
		}

		sidecar := path + extension
		line := fmt.Sprintf("%s  %s\n", digest, filepath.Base(path))
		if err := os.WriteFile(sidecar, []byte(line), 0o644); err != nil {
			return nil, fmt.Errorf("writing checksum file %q: %w", sidecar, err)
		}
		logrus.Infof("Wrote %s", sidecar)
		sidecars = append(sidecars, sidecar)
	}

	return sidecars, nil
}

// VerifyChecksum validates a checksum sidecar file against its artifact.
func VerifyChecksum(sidecar string) error {
	content, err := os.ReadFile(sidecar)
	if err != nil {
		return fmt.Errorf("reading checksum file %q: %w", sidecar, err)
	}

	fields := strings.Fields(string(content))
	if len(fields) != 2 {
		return fmt.Errorf("malformed checksum file %q", sidecar)
	}
	expected, name := fields[0], fields[1]

	artifact := filepath.Join(filepath.Dir(sidecar), name)
	var digest string
	switch filepath.Ext(sidecar) {
	case SHA256Extension:
		digest, err = hash.SHA256ForFile(artifact)
	case SHA512Extension:
		digest, err = hash.SHA512ForFile(artifact)
	default:
		return fmt.Errorf("unknown checksum extension on %q", sidecar)
	}
	if err != nil {
		return fmt.Errorf("hashing %q: %w", artifact, err)
	}

	if digest != expected {
		return fmt.Errorf(
			"checksum mismatch for %q: expected %s, got %s",
			artifact, expected, digest,
		)
	}
	return nil
}
