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

package cmd

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apache/cloudberry-devops-release/pkg/testlog"
)

var testlogCmd = &cobra.Command{
	Use:   "testlog",
	Short: "Work with pg_regress test logs",
}

var testlogParseCmd = &cobra.Command{
	Use:   "parse LOGFILE",
	Short: "Parse a pg_regress log into a machine readable results file",
	Long: `cbrel testlog parse

This command parses the summary of a pg_regress regression run and
writes the outcome into a simple key=value results file for CI
consumption. A log whose failure details do not match its summary
counts is rejected.`,
	Example:       "cbrel testlog parse regression.out --output test_results.txt",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runTestlogParse(args[0])
	},
}

var testlogOutput string

func init() {
	testlogParseCmd.PersistentFlags().StringVar(
		&testlogOutput,
		"output",
		testlog.DefaultResultsFile,
		"path of the results file to write",
	)

	testlogCmd.AddCommand(testlogParseCmd)
	rootCmd.AddCommand(testlogCmd)
}

func runTestlogParse(logFile string) error {
	results, err := testlog.ParseFile(logFile)
	if err != nil {
		return err
	}

	if err := results.WriteFile(testlogOutput); err != nil {
		return err
	}
	logrus.Infof("Wrote %s", testlogOutput)

	if results.Status == testlog.StatusFailed {
		logrus.Errorf(
			"%d of %d tests failed: %s",
			results.FailedTests, results.TotalTests,
			strings.Join(results.FailedTestNames, ", "),
		)
		return errors.New("regression run failed")
	}

	logrus.Infof("All %d tests passed", results.TotalTests)
	return nil
}
