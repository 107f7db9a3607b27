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

package cluster_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apache/cloudberry-devops-release/pkg/cluster"
	"github.com/apache/cloudberry-devops-release/pkg/cluster/clusterfakes"
)

var errTest = errors.New("")

func TestDriverCreate(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name      string
		opts      *cluster.Options
		prepare   func(*clusterfakes.FakeDriverImpl)
		shouldErr bool
	}{
		{
			name: "success",
			opts: &cluster.Options{SrcDir: "/src/cloudberry", Pairs: 2},
			prepare: func(mock *clusterfakes.FakeDriverImpl) {
				mock.CommandAvailableReturns(true)
				mock.ProbeReturns("PostgreSQL 14.4 (Apache Cloudberry 2.0.0)", nil)
			},
			shouldErr: false,
		},
		{
			name:      "failure no source dir",
			opts:      &cluster.Options{Pairs: 2},
			prepare:   func(mock *clusterfakes.FakeDriverImpl) {},
			shouldErr: true,
		},
		{
			name:      "failure invalid pairs",
			opts:      &cluster.Options{SrcDir: "/src/cloudberry", Pairs: 0},
			prepare:   func(mock *clusterfakes.FakeDriverImpl) {},
			shouldErr: true,
		},
		{
			name: "failure make not available",
			opts: &cluster.Options{SrcDir: "/src/cloudberry", Pairs: 2},
			prepare: func(mock *clusterfakes.FakeDriverImpl) {
				mock.CommandAvailableReturns(false)
			},
			shouldErr: true,
		},
		{
			name: "failure on RunMake",
			opts: &cluster.Options{SrcDir: "/src/cloudberry", Pairs: 2},
			prepare: func(mock *clusterfakes.FakeDriverImpl) {
				mock.CommandAvailableReturns(true)
				mock.RunMakeReturns(errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure on Probe",
			opts: &cluster.Options{SrcDir: "/src/cloudberry", Pairs: 2},
			prepare: func(mock *clusterfakes.FakeDriverImpl) {
				mock.CommandAvailableReturns(true)
				mock.ProbeReturns("", errTest)
			},
			shouldErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &clusterfakes.FakeDriverImpl{}
			tc.prepare(mock)

			sut := cluster.NewDriver(tc.opts)
			sut.SetImpl(mock)

			err := sut.Create()
			if tc.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)

				srcDir, target, variables := mock.RunMakeArgsForCall(0)
				require.Equal(t, "/src/cloudberry", srcDir)
				require.Equal(t, cluster.CreateTarget, target)
				require.Equal(t, []string{"NUM_PRIMARY_MIRROR_PAIRS=2"}, variables)
			}
		})
	}
}

func TestDriverDestroy(t *testing.T) {
	t.Parallel()

	mock := &clusterfakes.FakeDriverImpl{}
	mock.CommandAvailableReturns(true)

	sut := cluster.NewDriver(&cluster.Options{SrcDir: "/src/cloudberry", Pairs: 2})
	sut.SetImpl(mock)

	require.NoError(t, sut.Destroy())

	srcDir, target, variables := mock.RunMakeArgsForCall(0)
	require.Equal(t, "/src/cloudberry", srcDir)
	require.Equal(t, cluster.DestroyTarget, target)
	require.Empty(t, variables)
	require.Zero(t, mock.ProbeCallCount())
}

func TestDriverStatus(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		prepare func(*clusterfakes.FakeDriverImpl)
		assert  func(string, error)
	}{
		{
			name: "success",
			prepare: func(mock *clusterfakes.FakeDriverImpl) {
				mock.CommandAvailableReturns(true)
				mock.ProbeReturns("PostgreSQL 14.4 (Apache Cloudberry 2.0.0)", nil)
			},
			assert: func(version string, err error) {
				require.NoError(t, err)
				require.Contains(t, version, "Cloudberry")
			},
		},
		{
			name: "failure psql not available",
			prepare: func(mock *clusterfakes.FakeDriverImpl) {
				mock.CommandAvailableReturns(false)
			},
			assert: func(version string, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "failure empty version",
			prepare: func(mock *clusterfakes.FakeDriverImpl) {
				mock.CommandAvailableReturns(true)
				mock.ProbeReturns("", nil)
			},
			assert: func(version string, err error) {
				require.Error(t, err)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &clusterfakes.FakeDriverImpl{}
			tc.prepare(mock)

			sut := cluster.NewDriver(&cluster.Options{SrcDir: "/src", Pairs: 1})
			sut.SetImpl(mock)

			tc.assert(sut.Status())
		})
	}
}
