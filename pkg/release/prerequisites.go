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

package release

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/sirupsen/logrus"

	"sigs.k8s.io/release-utils/command"
	"sigs.k8s.io/release-utils/env"
)

// PrerequisitesChecker is the main type for checking the prerequisites of
// release operations.
type PrerequisitesChecker struct {
	impl prerequisitesCheckerImpl
	opts *PrerequisitesCheckerOptions
}

// PrerequisitesCheckerOptions configures a prerequisites check run.
type PrerequisitesCheckerOptions struct {
	// Commands which have to be available in $PATH.
	Commands []string

	// Environment variables which have to be set.
	EnvironmentVariables []string

	// Minimum free disk space in GiB required in the working directory.
	MinDiskSpaceGiB uint64
}

// DefaultPrerequisitesCheckerOptions are the options used for staging runs.
var DefaultPrerequisitesCheckerOptions = &PrerequisitesCheckerOptions{
	Commands:        []string{"git", "tar"},
	MinDiskSpaceGiB: 10,
}

// NewPrerequisitesChecker creates a new PrerequisitesChecker instance.
func NewPrerequisitesChecker(opts *PrerequisitesCheckerOptions) *PrerequisitesChecker {
	if opts == nil {
		opts = DefaultPrerequisitesCheckerOptions
	}
	return &PrerequisitesChecker{
		impl: &defaultPrerequisitesChecker{},
		opts: opts,
	}
}

// Options return the options from the prereq checker.
func (p *PrerequisitesChecker) Options() *PrerequisitesCheckerOptions {
	return p.opts
}

// SetImpl can be used to set the internal PrerequisitesChecker implementation.
func (p *PrerequisitesChecker) SetImpl(impl prerequisitesCheckerImpl) {
	p.impl = impl
}

//counterfeiter:generate . prerequisitesCheckerImpl
type prerequisitesCheckerImpl interface {
	CommandAvailable(commands ...string) bool
	IsEnvSet(key string) bool
	Usage(dir string) (*disk.UsageStat, error)
}

type defaultPrerequisitesChecker struct{}

func (*defaultPrerequisitesChecker) CommandAvailable(commands ...string) bool {
	return command.Available(commands...)
}

func (*defaultPrerequisitesChecker) IsEnvSet(key string) bool {
	return env.IsSet(key)
}

func (*defaultPrerequisitesChecker) Usage(dir string) (*disk.UsageStat, error) {
	return disk.Usage(dir)
}

// Run performs all configured prerequisite checks against the provided
// working directory.
func (p *PrerequisitesChecker) Run(workdir string) error {
	if len(p.opts.Commands) > 0 {
		logrus.Infof(
			"Verifying that the commands %s exist in $PATH",
			strings.Join(p.opts.Commands, ", "),
		)
		if !p.impl.CommandAvailable(p.opts.Commands...) {
			return errors.New("not all required commands are available")
		}
	}

	for _, key := range p.opts.EnvironmentVariables {
		logrus.Infof("Verifying that %s environment variable is set", key)
		if !p.impl.IsEnvSet(key) {
			return fmt.Errorf("no %s env variable set", key)
		}
	}

	if p.opts.MinDiskSpaceGiB > 0 {
		logrus.Infof(
			"Checking available disk space (%dGiB) for %s",
			p.opts.MinDiskSpaceGiB, workdir,
		)
		res, err := p.impl.Usage(workdir)
		if err != nil {
			return fmt.Errorf("check available disk space: %w", err)
		}
		diskSpaceGiB := res.Free / 1024 / 1024 / 1024
		if diskSpaceGiB < p.opts.MinDiskSpaceGiB {
			return fmt.Errorf(
				"not enough disk space available. Got %dGiB, need at least %dGiB",
				diskSpaceGiB, p.opts.MinDiskSpaceGiB,
			)
		}
	}

	return nil
}
