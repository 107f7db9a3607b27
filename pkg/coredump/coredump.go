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

// Package coredump drives gdb in batch mode to turn core files into
// human readable crash reports.
package coredump

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/release-utils/command"
	"sigs.k8s.io/release-utils/util"
)

// gdbCommands is the fixed batch command list run against every core.
var gdbCommands = []string{
	"bt",
	"thread apply all bt",
	"info sharedlibrary",
	"info registers",
}

// ReportExtension is appended to the core file name for its report.
const ReportExtension = ".txt"

// Options configure an Analyzer run.
type Options struct {
	// Binary is the executable the cores were dumped from.
	Binary string

	// Cores are explicit core files to analyze.
	Cores []string

	// Dir is scanned for files named like cores when set.
	Dir string

	// OutputDir receives one report per core. Defaults to the
	// directory of each core file.
	OutputDir string
}

// Validate checks the option consistency.
func (o *Options) Validate() error {
	if o.Binary == "" {
		return fmt.Errorf("binary must be set")
	}
	if len(o.Cores) == 0 && o.Dir == "" {
		return fmt.Errorf("either core files or a directory to scan must be set")
	}
	if len(o.Cores) > 0 && o.Dir != "" {
		return fmt.Errorf("core files and directory mode are mutually exclusive")
	}
	return nil
}

// Analyzer runs gdb over core dumps.
type Analyzer struct {
	impl analyzerImpl
	opts *Options
}

// NewAnalyzer creates a new Analyzer for the provided options.
func NewAnalyzer(opts *Options) *Analyzer {
	return &Analyzer{
		impl: &defaultAnalyzerImpl{},
		opts: opts,
	}
}

// SetImpl can be used to set the internal implementation.
func (a *Analyzer) SetImpl(impl analyzerImpl) {
	a.impl = impl
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate . analyzerImpl
type analyzerImpl interface {
	CommandAvailable(commands ...string) bool
	FileExists(path string) bool
	Glob(pattern string) ([]string, error)
	ModTime(path string) (time.Time, error)
	RunGDB(binary, core string, commands []string) (string, error)
	WriteFile(path string, data []byte) error
}

type defaultAnalyzerImpl struct{}

func (*defaultAnalyzerImpl) CommandAvailable(commands ...string) bool {
	return command.Available(commands...)
}

func (*defaultAnalyzerImpl) FileExists(path string) bool {
	return util.Exists(path)
}

func (*defaultAnalyzerImpl) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

func (*defaultAnalyzerImpl) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

func (*defaultAnalyzerImpl) RunGDB(binary, core string, commands []string) (string, error) {
	args := []string{"--batch", "--quiet"}
	for _, gdbCommand := range commands {
		args = append(args, "-ex", gdbCommand)
	}
	args = append(args, binary, core)

	status, err := command.New("gdb", args...).RunSilentSuccessOutput()
	if err != nil {
		return "", err
	}
	return status.Output(), nil
}

func (*defaultAnalyzerImpl) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// Run analyzes all cores and returns the report file paths.
func (a *Analyzer) Run() ([]string, error) {
	if err := a.opts.Validate(); err != nil {
		return nil, fmt.Errorf("validating options: %w", err)
	}

	// Missing tooling or binary fails the whole run, not single cores.
	if !a.impl.CommandAvailable("gdb") {
		return nil, fmt.Errorf("gdb is required but not available in $PATH")
	}
	if !a.impl.FileExists(a.opts.Binary) {
		return nil, fmt.Errorf("binary %q does not exist", a.opts.Binary)
	}

	cores, err := a.collectCores()
	if err != nil {
		return nil, err
	}
	if len(cores) == 0 {
		return nil, fmt.Errorf("no core files found to analyze")
	}

	reports := []string{}
	for _, core := range cores {
		report := a.reportPath(core)

		current, err := a.reportCurrent(report, core)
		if err != nil {
			return nil, err
		}
		if current {
			logrus.Infof("Report %s is up to date, skipping %s", report, core)
			reports = append(reports, report)
			continue
		}

		logrus.Infof("Analyzing core %s", core)

		output, err := a.impl.RunGDB(a.opts.Binary, core, gdbCommands)
		if err != nil {
			return nil, fmt.Errorf("running gdb on %q: %w", core, err)
		}

		if err := a.impl.WriteFile(report, []byte(output)); err != nil {
			return nil, fmt.Errorf("writing report %q: %w", report, err)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// reportCurrent reports whether `report` exists and is newer than `core`.
func (a *Analyzer) reportCurrent(report, core string) (bool, error) {
	if !a.impl.FileExists(report) {
		return false, nil
	}

	reportTime, err := a.impl.ModTime(report)
	if err != nil {
		return false, fmt.Errorf("getting modification time of %q: %w", report, err)
	}
	coreTime, err := a.impl.ModTime(core)
	if err != nil {
		return false, fmt.Errorf("getting modification time of %q: %w", core, err)
	}

	return reportTime.After(coreTime), nil
}

func (a *Analyzer) collectCores() ([]string, error) {
	if len(a.opts.Cores) > 0 {
		for _, core := range a.opts.Cores {
			if !a.impl.FileExists(core) {
				return nil, fmt.Errorf("core file %q does not exist", core)
			}
		}
		return a.opts.Cores, nil
	}

	cores, err := a.impl.Glob(filepath.Join(a.opts.Dir, "core*"))
	if err != nil {
		return nil, fmt.Errorf("scanning %q for cores: %w", a.opts.Dir, err)
	}

	// Reports from earlier runs live next to the cores.
	filtered := []string{}
	for _, core := range cores {
		if strings.HasSuffix(core, ReportExtension) {
			continue
		}
		filtered = append(filtered, core)
	}
	return filtered, nil
}

func (a *Analyzer) reportPath(core string) string {
	dir := a.opts.OutputDir
	if dir == "" {
		dir = filepath.Dir(core)
	}
	return filepath.Join(dir, filepath.Base(core)+ReportExtension)
}
