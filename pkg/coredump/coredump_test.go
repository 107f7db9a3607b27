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

package coredump_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/apache/cloudberry-devops-release/pkg/coredump"
	"github.com/apache/cloudberry-devops-release/pkg/coredump/coredumpfakes"
)

func TestAnalyzerRun(t *testing.T) {
	t.Parallel()

	err := errors.New("")
	binary := "/usr/local/cloudberry-db/bin/postgres"

	for _, tc := range []struct {
		name    string
		opts    *coredump.Options
		prepare func(*coredumpfakes.FakeAnalyzerImpl)
		assert  func([]string, error)
	}{
		{
			name: "success explicit cores",
			opts: &coredump.Options{
				Binary: binary,
				Cores:  []string{"/cores/core.postgres.1234", "/cores/core.postgres.5678"},
			},
			prepare: func(mock *coredumpfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableReturns(true)
				mock.FileExistsReturns(true)
				mock.RunGDBReturns("#0  0x0000 in main ()", nil)
			},
			assert: func(reports []string, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{
					"/cores/core.postgres.1234.txt",
					"/cores/core.postgres.5678.txt",
				}, reports)
			},
		},
		{
			name: "success directory mode with output dir",
			opts: &coredump.Options{
				Binary:    binary,
				Dir:       "/cores",
				OutputDir: "/reports",
			},
			prepare: func(mock *coredumpfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableReturns(true)
				mock.FileExistsReturns(true)
				// A stale report from a previous run is skipped.
				mock.GlobReturns([]string{
					"/cores/core.postgres.1234",
					"/cores/core.postgres.1234.txt",
				}, nil)
				mock.RunGDBReturns("bt output", nil)
			},
			assert: func(reports []string, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"/reports/core.postgres.1234.txt"}, reports)
			},
		},
		{
			name:    "failure no binary",
			opts:    &coredump.Options{Cores: []string{"/cores/core.1"}},
			prepare: func(mock *coredumpfakes.FakeAnalyzerImpl) {},
			assert: func(reports []string, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "failure gdb not available",
			opts: &coredump.Options{Binary: binary, Cores: []string{"/cores/core.1"}},
			prepare: func(mock *coredumpfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableReturns(false)
			},
			assert: func(reports []string, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "failure binary does not exist",
			opts: &coredump.Options{Binary: binary, Cores: []string{"/cores/core.1"}},
			prepare: func(mock *coredumpfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableReturns(true)
				mock.FileExistsReturns(false)
			},
			assert: func(reports []string, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "failure no cores found",
			opts: &coredump.Options{Binary: binary, Dir: "/cores"},
			prepare: func(mock *coredumpfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableReturns(true)
				mock.FileExistsReturns(true)
				mock.GlobReturns(nil, nil)
			},
			assert: func(reports []string, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "failure on ModTime",
			opts: &coredump.Options{Binary: binary, Cores: []string{"/cores/core.1"}},
			prepare: func(mock *coredumpfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableReturns(true)
				mock.FileExistsReturns(true)
				mock.ModTimeReturns(time.Time{}, err)
			},
			assert: func(reports []string, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "failure on RunGDB",
			opts: &coredump.Options{Binary: binary, Cores: []string{"/cores/core.1"}},
			prepare: func(mock *coredumpfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableReturns(true)
				mock.FileExistsReturns(true)
				mock.RunGDBReturns("", err)
			},
			assert: func(reports []string, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "failure on WriteFile",
			opts: &coredump.Options{Binary: binary, Cores: []string{"/cores/core.1"}},
			prepare: func(mock *coredumpfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableReturns(true)
				mock.FileExistsReturns(true)
				mock.RunGDBReturns("bt output", nil)
				mock.WriteFileReturns(err)
			},
			assert: func(reports []string, err error) {
				require.Error(t, err)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &coredumpfakes.FakeAnalyzerImpl{}
			tc.prepare(mock)

			sut := coredump.NewAnalyzer(tc.opts)
			sut.SetImpl(mock)

			tc.assert(sut.Run())
		})
	}
}

func TestAnalyzerRunSkipsCurrentReports(t *testing.T) {
	t.Parallel()

	coreTime := time.Now()

	mock := &coredumpfakes.FakeAnalyzerImpl{}
	mock.CommandAvailableReturns(true)
	mock.FileExistsReturns(true)
	mock.ModTimeStub = func(path string) (time.Time, error) {
		if strings.HasSuffix(path, coredump.ReportExtension) {
			return coreTime.Add(time.Minute), nil
		}
		return coreTime, nil
	}

	sut := coredump.NewAnalyzer(&coredump.Options{
		Binary: "/usr/local/cloudberry-db/bin/postgres",
		Cores:  []string{"/cores/core.postgres.1234"},
	})
	sut.SetImpl(mock)

	reports, err := sut.Run()
	require.NoError(t, err)
	require.Equal(t, []string{"/cores/core.postgres.1234.txt"}, reports)
	require.Zero(t, mock.RunGDBCallCount())
	require.Zero(t, mock.WriteFileCallCount())
}

func TestAnalyzerRunRefreshesStaleReports(t *testing.T) {
	t.Parallel()

	coreTime := time.Now()

	mock := &coredumpfakes.FakeAnalyzerImpl{}
	mock.CommandAvailableReturns(true)
	mock.FileExistsReturns(true)
	mock.RunGDBReturns("bt output", nil)
	mock.ModTimeStub = func(path string) (time.Time, error) {
		if strings.HasSuffix(path, coredump.ReportExtension) {
			return coreTime.Add(-time.Minute), nil
		}
		return coreTime, nil
	}

	sut := coredump.NewAnalyzer(&coredump.Options{
		Binary: "/usr/local/cloudberry-db/bin/postgres",
		Cores:  []string{"/cores/core.postgres.1234"},
	})
	sut.SetImpl(mock)

	reports, err := sut.Run()
	require.NoError(t, err)
	require.Equal(t, []string{"/cores/core.postgres.1234.txt"}, reports)
	require.Equal(t, 1, mock.RunGDBCallCount())
	require.Equal(t, 1, mock.WriteFileCallCount())
}
