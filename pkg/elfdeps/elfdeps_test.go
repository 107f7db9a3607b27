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

package elfdeps_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apache/cloudberry-devops-release/pkg/elfdeps"
	"github.com/apache/cloudberry-devops-release/pkg/elfdeps/elfdepsfakes"
)

const postgresLddOutput = `	linux-vdso.so.1 (0x00007ffd4a5f2000)
	libxml2.so.2 => /lib64/libxml2.so.2 (0x00007f7e9c400000)
	libz.so.1 => /lib64/libz.so.1 (0x00007f7e9c9d4000)
	libxerces-c-3.3.so => not found
	/lib64/ld-linux-x86-64.so.2 (0x00007f7e9cb4a000)
`

func rpmAvailable(commands ...string) bool {
	return commands[0] != "dpkg"
}

func TestAnalyzerRun(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		opts    *elfdeps.Options
		prepare func(*elfdepsfakes.FakeAnalyzerImpl)
		assert  func(*elfdeps.Report, error)
	}{
		{
			name: "success single binary",
			opts: &elfdeps.Options{Files: []string{"/usr/local/cloudberry-db/bin/postgres"}},
			prepare: func(mock *elfdepsfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableStub = rpmAvailable
				mock.IsELFReturns(true, nil)
				mock.RunLddReturns(postgresLddOutput, nil)
				mock.OwnerRPMStub = func(path string) (string, error) {
					switch {
					case strings.Contains(path, "libxml2"):
						return "libxml2", nil
					case strings.Contains(path, "libz"):
						return "zlib", nil
					}
					return "", errors.New("file is not owned by any package")
				}
			},
			assert: func(report *elfdeps.Report, err error) {
				require.NoError(t, err)
				require.Len(t, report.Binaries, 1)

				// The vdso and loader pseudo libraries are dropped.
				libs := report.Binaries[0].Libraries
				require.Len(t, libs, 3)

				require.Equal(t, []string{"libxml2", "zlib"}, report.Packages())

				unresolved := report.Unresolved()
				require.Len(t, unresolved, 1)
				require.Equal(t, "libxerces-c-3.3.so", unresolved[0].Name)
				require.True(t, unresolved[0].NotFound)
			},
		},
		{
			name: "success LD_LIBRARY_PATH fallback",
			opts: &elfdeps.Options{
				Files:        []string{"/bin/postgres"},
				LibraryPaths: []string{"/opt/cloudberry/lib"},
			},
			prepare: func(mock *elfdepsfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableStub = rpmAvailable
				mock.IsELFReturns(true, nil)
				mock.RunLddReturns("\tlibxerces-c-3.3.so => not found\n", nil)
				mock.FileExistsReturns(true)
				mock.OwnerRPMReturns("", errors.New("not owned"))
			},
			assert: func(report *elfdeps.Report, err error) {
				require.NoError(t, err)
				libs := report.Binaries[0].Libraries
				require.Len(t, libs, 1)
				require.False(t, libs[0].NotFound)
				require.Equal(t, "/opt/cloudberry/lib/libxerces-c-3.3.so", libs[0].Path)
			},
		},
		{
			name: "success dpkg backend",
			opts: &elfdeps.Options{Files: []string{"/bin/postgres"}},
			prepare: func(mock *elfdepsfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableStub = func(commands ...string) bool {
					return commands[0] != "rpm"
				}
				mock.IsELFReturns(true, nil)
				mock.RunLddReturns(
					"\tlibz.so.1 => /lib/x86_64-linux-gnu/libz.so.1 (0x00007f00)\n", nil,
				)
				mock.OwnerDebReturns("zlib1g", nil)
			},
			assert: func(report *elfdeps.Report, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"zlib1g"}, report.Packages())
			},
		},
		{
			name: "success directory mode skips non ELF files",
			opts: &elfdeps.Options{Dir: "/usr/local/cloudberry-db/bin"},
			prepare: func(mock *elfdepsfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableStub = rpmAvailable
				mock.WalkFilesReturns([]string{
					"/usr/local/cloudberry-db/bin/postgres",
					"/usr/local/cloudberry-db/bin/gpstart",
				}, nil)
				mock.IsELFStub = func(path string) (bool, error) {
					return strings.HasSuffix(path, "postgres"), nil
				}
				mock.RunLddReturns(postgresLddOutput, nil)
				mock.OwnerRPMReturns("libxml2", nil)
			},
			assert: func(report *elfdeps.Report, err error) {
				require.NoError(t, err)
				require.Len(t, report.Binaries, 1)
			},
		},
		{
			name:    "failure no inputs",
			opts:    &elfdeps.Options{},
			prepare: func(mock *elfdepsfakes.FakeAnalyzerImpl) {},
			assert: func(report *elfdeps.Report, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "failure ldd not available",
			opts: &elfdeps.Options{Files: []string{"/bin/postgres"}},
			prepare: func(mock *elfdepsfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableReturns(false)
			},
			assert: func(report *elfdeps.Report, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "failure explicit file is not ELF",
			opts: &elfdeps.Options{Files: []string{"/etc/passwd"}},
			prepare: func(mock *elfdepsfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableReturns(true)
				mock.IsELFReturns(false, nil)
			},
			assert: func(report *elfdeps.Report, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "failure on RunLdd",
			opts: &elfdeps.Options{Files: []string{"/bin/postgres"}},
			prepare: func(mock *elfdepsfakes.FakeAnalyzerImpl) {
				mock.CommandAvailableReturns(true)
				mock.IsELFReturns(true, nil)
				mock.RunLddReturns("", errors.New(""))
			},
			assert: func(report *elfdeps.Report, err error) {
				require.Error(t, err)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &elfdepsfakes.FakeAnalyzerImpl{}
			tc.prepare(mock)

			sut := elfdeps.NewAnalyzer(tc.opts)
			sut.SetImpl(mock)

			tc.assert(sut.Run())
		})
	}
}

func TestReportRender(t *testing.T) {
	t.Parallel()

	report := &elfdeps.Report{Binaries: []elfdeps.BinaryReport{
		{
			Binary: "/bin/postgres",
			Libraries: []elfdeps.Library{
				{Name: "libxml2.so.2", Path: "/lib64/libxml2.so.2", Package: "libxml2"},
				{Name: "libxerces-c-3.3.so", NotFound: true},
			},
		},
	}}

	builder := &strings.Builder{}
	report.Render(builder)

	output := builder.String()
	require.Contains(t, output, "libxml2.so.2")
	require.Contains(t, output, "NOT FOUND")
	require.Contains(t, output, "Required packages")
	require.Contains(t, output, "Libraries without an owning package")
}
