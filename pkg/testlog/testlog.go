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

// Package testlog parses pg_regress style test logs into a shell sourceable
// key value summary (`test_results.txt`).
package testlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Status values of a parsed test run.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// DefaultResultsFile is the conventional output file name, sourced by the
// calling shell scripts.
const DefaultResultsFile = "test_results.txt"

var (
	passedRegex = regexp.MustCompile(`^\s*All (\d+) tests passed\.`)
	failedRegex = regexp.MustCompile(
		`^\s*(\d+) of (\d+) tests failed(?:, (\d+) of these failures ignored)?\.`,
	)
	failedLineRegex = regexp.MustCompile(`^\s*(?:test\s+)?(\S+)\s+\.\.\..*\bFAILED\b`)
)

// Results is the parsed summary of a test log.
type Results struct {
	Status          string
	TotalTests      int
	FailedTests     int
	IgnoredFailures int
	FailedTestNames []string
}

// Parse reads a test log and extracts its summary.
func Parse(reader io.Reader) (*Results, error) {
	res := &Results{}
	summaryFound := false
	failedNames := []string{}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if match := failedLineRegex.FindStringSubmatch(line); match != nil {
			failedNames = append(failedNames, match[1])
			continue
		}

		if match := passedRegex.FindStringSubmatch(line); match != nil {
			total, err := strconv.Atoi(match[1])
			if err != nil {
				return nil, fmt.Errorf("parsing total test count: %w", err)
			}
			res.Status = StatusPassed
			res.TotalTests = total
			summaryFound = true
			continue
		}

		if match := failedRegex.FindStringSubmatch(line); match != nil {
			failed, err := strconv.Atoi(match[1])
			if err != nil {
				return nil, fmt.Errorf("parsing failed test count: %w", err)
			}
			total, err := strconv.Atoi(match[2])
			if err != nil {
				return nil, fmt.Errorf("parsing total test count: %w", err)
			}
			if match[3] != "" {
				ignored, err := strconv.Atoi(match[3])
				if err != nil {
					return nil, fmt.Errorf("parsing ignored failure count: %w", err)
				}
				res.IgnoredFailures = ignored
			}
			res.Status = StatusFailed
			res.FailedTests = failed
			res.TotalTests = total
			summaryFound = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading test log: %w", err)
	}

	if !summaryFound {
		return nil, fmt.Errorf("no test summary found in log")
	}

	if res.Status == StatusFailed {
		if len(failedNames) != res.FailedTests {
			return nil, fmt.Errorf(
				"summary reports %d failed tests but %d FAILED lines found",
				res.FailedTests, len(failedNames),
			)
		}
		res.FailedTestNames = failedNames
	}

	return res, nil
}

// ParseFile parses the test log at `path`.
func ParseFile(path string) (*Results, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening test log %q: %w", path, err)
	}
	defer file.Close()
	return Parse(file)
}

// Write renders the results in the shell sourceable KEY=VALUE format.
func (r *Results) Write(writer io.Writer) error {
	lines := []string{
		"STATUS=" + r.Status,
		"TOTAL_TESTS=" + strconv.Itoa(r.TotalTests),
		"FAILED_TESTS=" + strconv.Itoa(r.FailedTests),
	}
	if r.IgnoredFailures > 0 {
		lines = append(lines, "IGNORED_FAILURES="+strconv.Itoa(r.IgnoredFailures))
	}
	if len(r.FailedTestNames) > 0 {
		lines = append(lines, "FAILED_TEST_NAMES="+strings.Join(r.FailedTestNames, ","))
	}

	if _, err := io.WriteString(writer, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("writing test results: %w", err)
	}
	return nil
}

// WriteFile renders the results into the file at `path`.
func (r *Results) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results file %q: %w", path, err)
	}
	defer file.Close()
	return r.Write(file)
}
