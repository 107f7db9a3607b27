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

package object_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apache/cloudberry-devops-release/pkg/object"
	"github.com/apache/cloudberry-devops-release/pkg/object/objectfakes"
)

var errTest = errors.New("")

func testOptions() *object.Options {
	opts := object.DefaultOptions()
	opts.Version = "2.0.0"
	opts.StageDir = "/stage"
	opts.NoProgress = true
	return opts
}

func stagedArtifacts() []string {
	return []string{
		"/stage/2.0.0/apache-cloudberry-incubating-2.0.0-src.tar.gz",
		"/stage/2.0.0/apache-cloudberry-incubating-2.0.0-src.tar.gz.sha256",
		"/stage/2.0.0/apache-cloudberry-incubating-2.0.0-src.tar.gz.sha512",
		"/stage/2.0.0/apache-cloudberry-incubating-2.0.0-src.tar.gz.asc",
	}
}

func TestPusherRun(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		opts    *object.Options
		prepare func(*objectfakes.FakePusherImpl)
		assert  func(*objectfakes.FakePusherImpl, error)
	}{
		{
			name: "success",
			opts: testOptions(),
			prepare: func(mock *objectfakes.FakePusherImpl) {
				mock.ListFilesReturns(stagedArtifacts(), nil)
				mock.FileSizesReturns(1024, nil)
			},
			assert: func(mock *objectfakes.FakePusherImpl, err error) {
				require.NoError(t, err)
				require.Equal(t, 4, mock.UploadFileCallCount())

				keys := []string{}
				contentTypes := map[string]string{}
				for i := 0; i < mock.UploadFileCallCount(); i++ {
					_, bucket, key, contentType, _, _ := mock.UploadFileArgsForCall(i)
					require.Equal(t, "cloudberry-releases", bucket)
					keys = append(keys, key)
					contentTypes[key] = contentType
				}
				sort.Strings(keys)
				require.Equal(t,
					"releases/2.0.0/apache-cloudberry-incubating-2.0.0-src.tar.gz",
					keys[0],
				)
				require.Equal(t, "application/gzip", contentTypes[keys[0]])
				require.Equal(t, "text/plain", contentTypes[keys[1]])

				// Marker written after the artifacts.
				require.Equal(t, 1, mock.UploadStringCallCount())
				_, bucket, key, content := mock.UploadStringArgsForCall(0)
				require.Equal(t, "cloudberry-releases", bucket)
				require.Equal(t, "releases/current", key)
				require.Equal(t, "2.0.0\n", content)
			},
		},
		{
			name:    "failure invalid options",
			opts:    &object.Options{},
			prepare: func(mock *objectfakes.FakePusherImpl) {},
			assert: func(mock *objectfakes.FakePusherImpl, err error) {
				require.Error(t, err)
				require.Zero(t, mock.ConfigureCallCount())
			},
		},
		{
			name: "failure on Configure",
			opts: testOptions(),
			prepare: func(mock *objectfakes.FakePusherImpl) {
				mock.ConfigureReturns(errTest)
			},
			assert: func(mock *objectfakes.FakePusherImpl, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "failure no artifacts",
			opts: testOptions(),
			prepare: func(mock *objectfakes.FakePusherImpl) {
				mock.ListFilesReturns(nil, nil)
			},
			assert: func(mock *objectfakes.FakePusherImpl, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "failure on UploadFile",
			opts: testOptions(),
			prepare: func(mock *objectfakes.FakePusherImpl) {
				mock.ListFilesReturns(stagedArtifacts(), nil)
				mock.FileSizesReturns(1024, nil)
				mock.UploadFileReturns(errTest)
			},
			assert: func(mock *objectfakes.FakePusherImpl, err error) {
				require.Error(t, err)
				require.Zero(t, mock.UploadStringCallCount())
			},
		},
		{
			name: "failure on marker upload",
			opts: testOptions(),
			prepare: func(mock *objectfakes.FakePusherImpl) {
				mock.ListFilesReturns(stagedArtifacts(), nil)
				mock.FileSizesReturns(1024, nil)
				mock.UploadStringReturns(errTest)
			},
			assert: func(mock *objectfakes.FakePusherImpl, err error) {
				require.Error(t, err)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &objectfakes.FakePusherImpl{}
			tc.prepare(mock)

			sut := object.NewPusher(tc.opts)
			sut.SetImpl(mock)

			tc.assert(mock, sut.Run(context.Background()))
		})
	}
}

func TestOptionsKeys(t *testing.T) {
	t.Parallel()

	opts := &object.Options{Version: "2.0.0"}
	require.Equal(t, "2.0.0/", opts.VersionPrefix())
	require.Equal(t, "current", opts.MarkerKey())

	opts.Prefix = "releases"
	require.Equal(t, "releases/2.0.0/", opts.VersionPrefix())
	require.Equal(t, "releases/current", opts.MarkerKey())
}
