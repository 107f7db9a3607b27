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

package gpg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apache/cloudberry-devops-release/pkg/gpg"
	"github.com/apache/cloudberry-devops-release/pkg/gpg/gpgfakes"
)

var errTest = errors.New("")

func TestSignFile(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		user    string
		prepare func(*gpgfakes.FakeSignerImpl)
		assert  func(string, error)
	}{
		{
			name: "success",
			user: "release@cloudberry.apache.org",
			prepare: func(mock *gpgfakes.FakeSignerImpl) {
				mock.CommandAvailableReturns(true)
				mock.FileExistsReturns(true)
			},
			assert: func(sig string, err error) {
				require.NoError(t, err)
				require.Equal(t, "artifact.tar.gz.asc", sig)
			},
		},
		{
			name: "failure gpg not available",
			user: "release@cloudberry.apache.org",
			prepare: func(mock *gpgfakes.FakeSignerImpl) {
				mock.CommandAvailableReturns(false)
			},
			assert: func(_ string, err error) { require.Error(t, err) },
		},
		{
			name: "failure no user",
			user: "",
			prepare: func(mock *gpgfakes.FakeSignerImpl) {
				mock.CommandAvailableReturns(true)
			},
			assert: func(_ string, err error) { require.Error(t, err) },
		},
		{
			name: "failure artifact missing",
			user: "release@cloudberry.apache.org",
			prepare: func(mock *gpgfakes.FakeSignerImpl) {
				mock.CommandAvailableReturns(true)
				mock.FileExistsReturns(false)
			},
			assert: func(_ string, err error) { require.Error(t, err) },
		},
		{
			name: "failure on RunGPG",
			user: "release@cloudberry.apache.org",
			prepare: func(mock *gpgfakes.FakeSignerImpl) {
				mock.CommandAvailableReturns(true)
				mock.FileExistsReturns(true)
				mock.RunGPGReturns(errTest)
			},
			assert: func(_ string, err error) { require.Error(t, err) },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &gpgfakes.FakeSignerImpl{}
			tc.prepare(mock)

			sut := gpg.NewSigner(tc.user)
			sut.SetImpl(mock)

			sig, err := sut.SignFile("artifact.tar.gz")
			tc.assert(sig, err)
		})
	}
}

func TestVerifyFile(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		prepare func(*gpgfakes.FakeSignerImpl)
		assert  func(error)
	}{
		{
			name: "success",
			prepare: func(mock *gpgfakes.FakeSignerImpl) {
				mock.FileExistsReturns(true)
			},
			assert: func(err error) { require.NoError(t, err) },
		},
		{
			name: "failure signature missing",
			prepare: func(mock *gpgfakes.FakeSignerImpl) {
				mock.FileExistsReturns(false)
			},
			assert: func(err error) { require.Error(t, err) },
		},
		{
			name: "failure on RunGPG",
			prepare: func(mock *gpgfakes.FakeSignerImpl) {
				mock.FileExistsReturns(true)
				mock.RunGPGReturns(errTest)
			},
			assert: func(err error) { require.Error(t, err) },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &gpgfakes.FakeSignerImpl{}
			tc.prepare(mock)

			sut := gpg.NewSigner("release@cloudberry.apache.org")
			sut.SetImpl(mock)

			tc.assert(sut.VerifyFile("artifact.tar.gz", "artifact.tar.gz.asc"))
		})
	}
}
