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

package testlog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apache/cloudberry-devops-release/pkg/testlog"
)

const passedLog = `============== running regression test queries ==============
test boolean                      ... ok (120 ms)
test char                         ... ok (95 ms)

=======================
 All 202 tests passed.
=======================
`

const failedLog = `============== running regression test queries ==============
test boolean                      ... ok (120 ms)
test gp_aggregates                ... FAILED (2071 ms)
test char                         ... ok (95 ms)
test qp_misc                      ... FAILED (11045 ms)

========================
 2 of 202 tests failed.
========================
`

const failedIgnoredLog = `test boolean                      ... ok
test gp_aggregates                ... FAILED
test qp_misc                      ... FAILED (ignored)
test tuple_serialization          ... FAILED

======================================================
 3 of 202 tests failed, 1 of these failures ignored.
======================================================
`

func TestParse(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		log    string
		assert func(*testlog.Results, error)
	}{
		{
			name: "success all passed",
			log:  passedLog,
			assert: func(res *testlog.Results, err error) {
				require.NoError(t, err)
				require.Equal(t, testlog.StatusPassed, res.Status)
				require.Equal(t, 202, res.TotalTests)
				require.Zero(t, res.FailedTests)
				require.Empty(t, res.FailedTestNames)
			},
		},
		{
			name: "success with failures",
			log:  failedLog,
			assert: func(res *testlog.Results, err error) {
				require.NoError(t, err)
				require.Equal(t, testlog.StatusFailed, res.Status)
				require.Equal(t, 202, res.TotalTests)
				require.Equal(t, 2, res.FailedTests)
				require.Equal(t,
					[]string{"gp_aggregates", "qp_misc"}, res.FailedTestNames,
				)
			},
		},
		{
			name: "success with ignored failures",
			log:  failedIgnoredLog,
			assert: func(res *testlog.Results, err error) {
				require.NoError(t, err)
				require.Equal(t, testlog.StatusFailed, res.Status)
				require.Equal(t, 3, res.FailedTests)
				require.Equal(t, 1, res.IgnoredFailures)
				require.Len(t, res.FailedTestNames, 3)
			},
		},
		{
			name: "failure no summary line",
			log:  "test boolean ... ok\ntest char ... ok\n",
			assert: func(res *testlog.Results, err error) {
				require.Error(t, err)
				require.Nil(t, res)
			},
		},
		{
			name: "failure summary and FAILED lines disagree",
			log: `test gp_aggregates ... FAILED

 2 of 202 tests failed.
`,
			assert: func(res *testlog.Results, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "FAILED lines")
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := testlog.Parse(strings.NewReader(tc.log))
			tc.assert(res, err)
		})
	}
}

func TestWriteResults(t *testing.T) {
	t.Parallel()

	res := &testlog.Results{
		Status:          testlog.StatusFailed,
		TotalTests:      202,
		FailedTests:     3,
		IgnoredFailures: 1,
		FailedTestNames: []string{"gp_aggregates", "qp_misc", "tuple_serialization"},
	}

	path := filepath.Join(t.TempDir(), testlog.DefaultResultsFile)
	require.NoError(t, res.WriteFile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t,
		"STATUS=failed\n"+
			"TOTAL_TESTS=202\n"+
			"FAILED_TESTS=3\n"+
			"IGNORED_FAILURES=1\n"+
			"FAILED_TEST_NAMES=gp_aggregates,qp_misc,tuple_serialization\n",
		string(content),
	)
}

func TestWriteResultsPassed(t *testing.T) {
	t.Parallel()

	res := &testlog.Results{Status: testlog.StatusPassed, TotalTests: 202}

	builder := &strings.Builder{}
	require.NoError(t, res.Write(builder))
	require.Equal(t,
		"STATUS=passed\nTOTAL_TESTS=202\nFAILED_TESTS=0\n",
		builder.String(),
	)
}
