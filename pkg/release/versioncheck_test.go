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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apache/cloudberry-devops-release/pkg/release"
	"github.com/apache/cloudberry-devops-release/pkg/release/releasefakes"
)

const (
	testConfigureAC = `AC_PREREQ([2.69])
AC_INIT([Apache Cloudberry], [2.0.0], [dev@cloudberry.apache.org])
`
	testVersionFile = "2.0.0\n"
	testSpecFile    = `Name:    cloudberry-db
Version: 2.0.0
Release: 1%{?dist}
`
	testChangelog = `cloudberry-db (2.0.0-1) unstable; urgency=medium

  * New upstream release.
`
)

func contentByPath(t *testing.T, overrides map[string]string) func(string) ([]byte, error) {
	t.Helper()
	defaults := map[string]string{
		"configure.ac":                 testConfigureAC,
		"VERSION":                      testVersionFile,
		"concourse/cloudberry-db.spec": testSpecFile,
		"debian/changelog":             testChangelog,
	}
	return func(path string) ([]byte, error) {
		for suffix, content := range overrides {
			if strings.HasSuffix(path, suffix) {
				return []byte(content), nil
			}
		}
		for suffix, content := range defaults {
			if strings.HasSuffix(path, suffix) {
				return []byte(content), nil
			}
		}
		return nil, errors.New("unexpected path: " + path)
	}
}

func TestVersionCheckerRun(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		version string
		prepare func(*releasefakes.FakeVersionCheckerImpl)
		assert  func(error)
	}{
		{
			name:    "success all files agree",
			version: "2.0.0",
			prepare: func(mock *releasefakes.FakeVersionCheckerImpl) {
				mock.FileExistsReturns(true)
				mock.ReadFileStub = contentByPath(t, nil)
			},
			assert: func(err error) { require.NoError(t, err) },
		},
		{
			name:    "success optional files missing",
			version: "2.0.0",
			prepare: func(mock *releasefakes.FakeVersionCheckerImpl) {
				mock.FileExistsStub = func(path string) bool {
					return strings.HasSuffix(path, "configure.ac") ||
						strings.HasSuffix(path, "VERSION")
				}
				mock.ReadFileStub = contentByPath(t, nil)
			},
			assert: func(err error) { require.NoError(t, err) },
		},
		{
			name:    "failure single mismatch",
			version: "2.0.0",
			prepare: func(mock *releasefakes.FakeVersionCheckerImpl) {
				mock.FileExistsReturns(true)
				mock.ReadFileStub = contentByPath(t, map[string]string{
					"VERSION": "2.0.1\n",
				})
			},
			assert: func(err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "VERSION")
				require.Contains(t, err.Error(), "2.0.1")
			},
		},
		{
			name:    "failure reports all mismatches",
			version: "2.0.0",
			prepare: func(mock *releasefakes.FakeVersionCheckerImpl) {
				mock.FileExistsReturns(true)
				mock.ReadFileStub = contentByPath(t, map[string]string{
					"VERSION":          "2.0.1\n",
					"debian/changelog": "cloudberry-db (1.9.9-1) unstable; urgency=low\n",
				})
			},
			assert: func(err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "2.0.1")
				require.Contains(t, err.Error(), "1.9.9")
			},
		},
		{
			name:    "failure required file missing",
			version: "2.0.0",
			prepare: func(mock *releasefakes.FakeVersionCheckerImpl) {
				mock.FileExistsReturns(false)
			},
			assert: func(err error) { require.Error(t, err) },
		},
		{
			name:    "failure no version in file",
			version: "2.0.0",
			prepare: func(mock *releasefakes.FakeVersionCheckerImpl) {
				mock.FileExistsReturns(true)
				mock.ReadFileStub = contentByPath(t, map[string]string{
					"configure.ac": "AC_PREREQ([2.69])\n",
				})
			},
			assert: func(err error) { require.Error(t, err) },
		},
		{
			name:    "failure on ReadFile",
			version: "2.0.0",
			prepare: func(mock *releasefakes.FakeVersionCheckerImpl) {
				mock.FileExistsReturns(true)
				mock.ReadFileReturns(nil, errors.New(""))
			},
			assert: func(err error) { require.Error(t, err) },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &releasefakes.FakeVersionCheckerImpl{}
			tc.prepare(mock)

			sut := release.NewVersionChecker()
			sut.SetImpl(mock)

			tc.assert(sut.Run("/src/cloudberry", tc.version))
		})
	}
}
