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
	"testing"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/stretchr/testify/require"

	"github.com/apache/cloudberry-devops-release/pkg/release"
	"github.com/apache/cloudberry-devops-release/pkg/release/releasefakes"
)

func TestCheckPrerequisites(t *testing.T) {
	t.Parallel()

	err := errors.New("")
	opts := &release.PrerequisitesCheckerOptions{
		Commands:             []string{"git", "tar", "gpg"},
		EnvironmentVariables: []string{"GNUPGHOME"},
		MinDiskSpaceGiB:      10,
	}

	for _, tc := range []struct {
		name      string
		prepare   func(*releasefakes.FakePrerequisitesCheckerImpl)
		shouldErr bool
	}{
		{
			name: "success",
			prepare: func(mock *releasefakes.FakePrerequisitesCheckerImpl) {
				mock.CommandAvailableReturns(true)
				mock.IsEnvSetReturns(true)
				mock.UsageReturns(
					&disk.UsageStat{Free: 101 * 1024 * 1024 * 1024}, nil,
				)
			},
			shouldErr: false,
		},
		{
			name: "failure CommandAvailable",
			prepare: func(mock *releasefakes.FakePrerequisitesCheckerImpl) {
				mock.CommandAvailableReturns(false)
			},
			shouldErr: true,
		},
		{
			name: "failure IsEnvSet",
			prepare: func(mock *releasefakes.FakePrerequisitesCheckerImpl) {
				mock.CommandAvailableReturns(true)
				mock.IsEnvSetReturns(false)
			},
			shouldErr: true,
		},
		{
			name: "failure Usage",
			prepare: func(mock *releasefakes.FakePrerequisitesCheckerImpl) {
				mock.CommandAvailableReturns(true)
				mock.IsEnvSetReturns(true)
				mock.UsageReturns(nil, err)
			},
			shouldErr: true,
		},
		{
			name: "failure not enough disk space",
			prepare: func(mock *releasefakes.FakePrerequisitesCheckerImpl) {
				mock.CommandAvailableReturns(true)
				mock.IsEnvSetReturns(true)
				mock.UsageReturns(&disk.UsageStat{Free: 100}, nil)
			},
			shouldErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &releasefakes.FakePrerequisitesCheckerImpl{}
			tc.prepare(mock)

			sut := release.NewPrerequisitesChecker(opts)
			sut.SetImpl(mock)

			err := sut.Run(t.TempDir())
			if tc.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
