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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apache/cloudberry-devops-release/pkg/coredump"
	"github.com/apache/cloudberry-devops-release/pkg/elfdeps"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze binaries and core dumps of a build",
}

var analyzeDepsCmd = &cobra.Command{
	Use:   "deps (--file BINARY... | --dir DIR)",
	Short: "Report the shared library and package dependencies of ELF binaries",
	Long: `cbrel analyze deps

This command runs ldd over the given ELF binaries, resolves every
shared library to its owning distribution package and renders a
per-binary report plus a deduplicated package summary. Libraries
without an owning package are listed separately.`,
	Example:       "cbrel analyze deps --dir /usr/local/cloudberry-db/bin",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(*cobra.Command, []string) error {
		return runAnalyzeDeps()
	},
}

var analyzeCoresCmd = &cobra.Command{
	Use:   "cores --binary BINARY (--core FILE... | --dir DIR)",
	Short: "Extract gdb backtraces from core dump files",
	Long: `cbrel analyze cores

This command runs gdb in batch mode against every core file and writes
one backtrace report per core, next to the core or into --output-dir.
Cores which already have an up to date report are skipped.`,
	Example:       "cbrel analyze cores --binary /usr/local/cloudberry-db/bin/postgres --dir /tmp/cores",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(*cobra.Command, []string) error {
		return runAnalyzeCores()
	},
}

var (
	depsOpts  = elfdeps.DefaultOptions()
	coresOpts = &coredump.Options{}
)

func init() {
	analyzeDepsCmd.PersistentFlags().StringSliceVar(
		&depsOpts.Files,
		"file",
		nil,
		"binaries to analyze, repeatable",
	)
	analyzeDepsCmd.PersistentFlags().StringVar(
		&depsOpts.Dir,
		"dir",
		"",
		"directory to scan recursively for ELF binaries",
	)
	analyzeDepsCmd.PersistentFlags().StringSliceVar(
		&depsOpts.LibraryPaths,
		"library-path",
		depsOpts.LibraryPaths,
		"extra directories consulted for unresolved libraries",
	)
	analyzeDepsCmd.PersistentFlags().IntVar(
		&depsOpts.MaxParallel,
		"parallel",
		depsOpts.MaxParallel,
		"maximum number of concurrently analyzed binaries",
	)

	analyzeCoresCmd.PersistentFlags().StringVar(
		&coresOpts.Binary,
		"binary",
		"",
		"the executable the cores were dumped from",
	)
	analyzeCoresCmd.PersistentFlags().StringSliceVar(
		&coresOpts.Cores,
		"core",
		nil,
		"core files to analyze, repeatable",
	)
	analyzeCoresCmd.PersistentFlags().StringVar(
		&coresOpts.Dir,
		"dir",
		"",
		"directory to scan for core files",
	)
	analyzeCoresCmd.PersistentFlags().StringVar(
		&coresOpts.OutputDir,
		"output-dir",
		"",
		"directory receiving one report per core, next to the core if unset",
	)

	analyzeCmd.AddCommand(analyzeDepsCmd)
	analyzeCmd.AddCommand(analyzeCoresCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeDeps() error {
	report, err := elfdeps.NewAnalyzer(depsOpts).Run()
	if err != nil {
		return err
	}
	report.Render(os.Stdout)
	return nil
}

func runAnalyzeCores() error {
	reports, err := coredump.NewAnalyzer(coresOpts).Run()
	if err != nil {
		return err
	}
	for _, report := range reports {
		logrus.Infof("Wrote %s", report)
	}
	return nil
}
