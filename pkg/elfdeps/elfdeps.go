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

// Package elfdeps resolves the runtime library dependencies of ELF
// binaries and maps each library back to the distro package owning it.
package elfdeps

import (
	"debug/elf"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/nozzle/throttler"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/release-utils/command"
	"sigs.k8s.io/release-utils/env"
	"sigs.k8s.io/release-utils/util"
)

// DefaultMaxParallel bounds concurrent ldd/package queries in
// directory mode.
const DefaultMaxParallel = 4

// Libraries reported by ldd which are provided by the kernel or the
// dynamic loader and never belong to a package.
var pseudoLibraries = map[string]struct{}{
	"linux-vdso.so.1":             {},
	"linux-gate.so.1":             {},
	"ld-linux-x86-64.so.2":        {},
	"ld-linux-aarch64.so.1":       {},
	"ld64.so.2":                   {},
	"ld-linux-riscv64-lp64d.so.1": {},
}

var (
	// Matches "libxml2.so.2 => /lib64/libxml2.so.2 (0x00007f7e9c400000)".
	lddResolvedRegex = regexp.MustCompile(`^\s*(\S+) => (\S+) \((0x[0-9a-f]+)\)`)

	// Matches "libfoo.so.1 => not found".
	lddNotFoundRegex = regexp.MustCompile(`^\s*(\S+) => not found`)

	// Matches the loader line "/lib64/ld-linux-x86-64.so.2 (0x...)".
	lddLoaderRegex = regexp.MustCompile(`^\s*(/\S+) \((0x[0-9a-f]+)\)`)
)

// Options configure an Analyzer run.
type Options struct {
	// Files are explicit binaries to analyze.
	Files []string

	// Dir is scanned recursively for ELF binaries when set.
	Dir string

	// LibraryPaths are extra directories consulted for libraries ldd
	// reports as not found. Defaults to $LD_LIBRARY_PATH.
	LibraryPaths []string

	// MaxParallel bounds concurrent binary analysis in directory mode.
	MaxParallel int
}

// DefaultOptions returns options with the LD_LIBRARY_PATH fallback and
// parallelism defaults applied.
func DefaultOptions() *Options {
	return &Options{
		LibraryPaths: filepath.SplitList(env.Default("LD_LIBRARY_PATH", "")),
		MaxParallel:  DefaultMaxParallel,
	}
}

// Validate checks the option consistency.
func (o *Options) Validate() error {
	if len(o.Files) == 0 && o.Dir == "" {
		return fmt.Errorf("either files or a directory to scan must be set")
	}
	if len(o.Files) > 0 && o.Dir != "" {
		return fmt.Errorf("files and directory mode are mutually exclusive")
	}
	return nil
}

// Library is a single resolved runtime dependency.
type Library struct {
	// Name is the soname as printed by ldd.
	Name string

	// Path is the resolved file system location, empty if not found.
	Path string

	// Package is the owning distro package, empty if none claims it.
	Package string

	// NotFound is true if the library could not be located at all.
	NotFound bool
}

// BinaryReport holds the dependencies of one binary.
type BinaryReport struct {
	Binary    string
	Libraries []Library
}

// Report aggregates the analysis over all binaries.
type Report struct {
	Binaries []BinaryReport
}

// Analyzer resolves ELF runtime dependencies.
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
	IsELF(path string) (bool, error)
	RunLdd(path string) (string, error)
	OwnerRPM(path string) (string, error)
	OwnerDeb(path string) (string, error)
	FileExists(path string) bool
	WalkFiles(dir string) ([]string, error)
}

type defaultAnalyzerImpl struct{}

func (*defaultAnalyzerImpl) CommandAvailable(commands ...string) bool {
	return command.Available(commands...)
}

func (*defaultAnalyzerImpl) IsELF(path string) (bool, error) {
	file, err := elf.Open(path)
	if err != nil {
		// Not an ELF file is a negative answer, not an error.
		if _, ok := err.(*elf.FormatError); ok {
			return false, nil
		}
		if strings.Contains(err.Error(), "bad magic number") {
			return false, nil
		}
		return false, fmt.Errorf("opening %q: %w", path, err)
	}
	defer file.Close()
	return file.Type == elf.ET_EXEC || file.Type == elf.ET_DYN, nil
}

func (*defaultAnalyzerImpl) RunLdd(path string) (string, error) {
	status, err := command.New("ldd", path).RunSilentSuccessOutput()
	if err != nil {
		return "", err
	}
	return status.Output(), nil
}

func (*defaultAnalyzerImpl) OwnerRPM(path string) (string, error) {
	status, err := command.New(
		"rpm", "-qf", "--queryformat", "%{NAME}", path,
	).RunSilentSuccessOutput()
	if err != nil {
		return "", err
	}
	return status.OutputTrimNL(), nil
}

func (*defaultAnalyzerImpl) OwnerDeb(path string) (string, error) {
	status, err := command.New("dpkg", "-S", path).RunSilentSuccessOutput()
	if err != nil {
		return "", err
	}
	// dpkg -S prints "libxml2:amd64: /usr/lib/...".
	output := status.OutputTrimNL()
	if pkg, _, found := strings.Cut(output, ": "); found {
		return pkg, nil
	}
	return "", fmt.Errorf("unexpected dpkg output: %q", output)
}

func (*defaultAnalyzerImpl) FileExists(path string) bool {
	return util.Exists(path)
}

func (*defaultAnalyzerImpl) WalkFiles(dir string) (files []string, err error) {
	err = filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// Run performs the analysis and returns the aggregated report.
func (a *Analyzer) Run() (*Report, error) {
	if err := a.opts.Validate(); err != nil {
		return nil, fmt.Errorf("validating options: %w", err)
	}
	if !a.impl.CommandAvailable("ldd") {
		return nil, fmt.Errorf("ldd is required but not available in $PATH")
	}

	binaries, err := a.collectBinaries()
	if err != nil {
		return nil, err
	}
	if len(binaries) == 0 {
		return nil, fmt.Errorf("no ELF binaries found to analyze")
	}

	logrus.Infof("Analyzing %d binaries", len(binaries))

	maxParallel := a.opts.MaxParallel
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}

	report := &Report{Binaries: make([]BinaryReport, len(binaries))}
	mutex := sync.Mutex{}

	t := throttler.New(maxParallel, len(binaries))
	for i, binary := range binaries {
		go func(i int, binary string) {
			libraries, err := a.analyzeBinary(binary)
			if err == nil {
				mutex.Lock()
				report.Binaries[i] = BinaryReport{
					Binary:    binary,
					Libraries: libraries,
				}
				mutex.Unlock()
			}
			t.Done(err)
		}(i, binary)

		if t.Throttle() > 0 {
			break
		}
	}
	if err := t.Err(); err != nil {
		return nil, fmt.Errorf("analyzing binaries: %w", err)
	}

	return report, nil
}

func (a *Analyzer) collectBinaries() ([]string, error) {
	candidates := a.opts.Files
	if a.opts.Dir != "" {
		files, err := a.impl.WalkFiles(a.opts.Dir)
		if err != nil {
			return nil, fmt.Errorf("scanning %q: %w", a.opts.Dir, err)
		}
		candidates = files
	}

	binaries := []string{}
	for _, candidate := range candidates {
		isELF, err := a.impl.IsELF(candidate)
		if err != nil {
			return nil, fmt.Errorf("inspecting %q: %w", candidate, err)
		}
		if isELF {
			binaries = append(binaries, candidate)
		} else if a.opts.Dir == "" {
			// Explicitly requested files must be ELF.
			return nil, fmt.Errorf("%q is not an ELF binary", candidate)
		}
	}
	return binaries, nil
}

func (a *Analyzer) analyzeBinary(binary string) ([]Library, error) {
	output, err := a.impl.RunLdd(binary)
	if err != nil {
		return nil, fmt.Errorf("running ldd on %q: %w", binary, err)
	}

	libraries := []Library{}
	for _, line := range strings.Split(output, "\n") {
		library, ok := a.parseLddLine(line)
		if !ok {
			continue
		}
		if _, pseudo := pseudoLibraries[library.Name]; pseudo {
			continue
		}

		if library.NotFound {
			if path := a.searchLibraryPaths(library.Name); path != "" {
				library.Path = path
				library.NotFound = false
			}
		}

		if library.Path != "" {
			pkg, err := a.ownerPackage(library.Path)
			if err == nil {
				library.Package = pkg
			}
		}

		libraries = append(libraries, library)
	}
	return libraries, nil
}

func (a *Analyzer) parseLddLine(line string) (Library, bool) {
	if match := lddResolvedRegex.FindStringSubmatch(line); match != nil {
		return Library{Name: match[1], Path: match[2]}, true
	}
	if match := lddNotFoundRegex.FindStringSubmatch(line); match != nil {
		return Library{Name: match[1], NotFound: true}, true
	}
	if match := lddLoaderRegex.FindStringSubmatch(line); match != nil {
		return Library{
			Name: filepath.Base(match[1]),
			Path: match[1],
		}, true
	}
	return Library{}, false
}

func (a *Analyzer) searchLibraryPaths(name string) string {
	for _, dir := range a.opts.LibraryPaths {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if a.impl.FileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func (a *Analyzer) ownerPackage(path string) (string, error) {
	if a.impl.CommandAvailable("rpm") {
		return a.impl.OwnerRPM(path)
	}
	if a.impl.CommandAvailable("dpkg") {
		return a.impl.OwnerDeb(path)
	}
	return "", fmt.Errorf("no package manager found to query %q", path)
}

// Packages returns the deduplicated, sorted set of packages the
// analyzed binaries depend on.
func (r *Report) Packages() []string {
	set := map[string]struct{}{}
	for _, binary := range r.Binaries {
		for _, library := range binary.Libraries {
			if library.Package != "" {
				set[library.Package] = struct{}{}
			}
		}
	}

	packages := make([]string, 0, len(set))
	for pkg := range set {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)
	return packages
}

// Unresolved returns the libraries which either could not be located
// or have no owning package, deduplicated by soname.
func (r *Report) Unresolved() []Library {
	seen := map[string]struct{}{}
	unresolved := []Library{}
	for _, binary := range r.Binaries {
		for _, library := range binary.Libraries {
			if library.Package != "" {
				continue
			}
			if _, ok := seen[library.Name]; ok {
				continue
			}
			seen[library.Name] = struct{}{}
			unresolved = append(unresolved, library)
		}
	}
	sort.Slice(unresolved, func(i, j int) bool {
		return unresolved[i].Name < unresolved[j].Name
	})
	return unresolved
}

// Render writes the per binary reports and the grand summary table.
func (r *Report) Render(writer io.Writer) {
	for _, binary := range r.Binaries {
		fmt.Fprintf(writer, "\nDependencies of %s:\n", binary.Binary)

		table := tablewriter.NewWriter(writer)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"Library", "Path", "Package"})
		for _, library := range binary.Libraries {
			path := library.Path
			if library.NotFound {
				path = "NOT FOUND"
			}
			table.Append([]string{library.Name, path, library.Package})
		}
		table.Render()
	}

	fmt.Fprintf(writer, "\nRequired packages (all binaries):\n")
	summary := tablewriter.NewWriter(writer)
	summary.SetAutoWrapText(false)
	summary.SetHeader([]string{"Package"})
	for _, pkg := range r.Packages() {
		summary.Append([]string{pkg})
	}
	summary.Render()

	if unresolved := r.Unresolved(); len(unresolved) > 0 {
		fmt.Fprintf(writer, "\nLibraries without an owning package:\n")
		special := tablewriter.NewWriter(writer)
		special.SetAutoWrapText(false)
		special.SetHeader([]string{"Library", "Path"})
		for _, library := range unresolved {
			path := library.Path
			if library.NotFound {
				path = "NOT FOUND"
			}
			special.Append([]string{library.Name, path})
		}
		special.Render()
	}
}
