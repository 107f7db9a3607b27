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

// Package cluster drives the upstream demo cluster make targets and
// probes the resulting database for liveness.
package cluster

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/release-utils/command"
	"sigs.k8s.io/release-utils/env"
)

const (
	// CreateTarget is the upstream make target building the cluster.
	CreateTarget = "create-demo-cluster"

	// DestroyTarget is the upstream make target tearing it down.
	DestroyTarget = "destroy-demo-cluster"

	// DefaultPairs is the default number of primary/mirror pairs.
	DefaultPairs = 3

	// pairsVariable is the make variable selecting the segment count.
	pairsVariable = "NUM_PRIMARY_MIRROR_PAIRS"
)

// Options configure a cluster Driver.
type Options struct {
	// SrcDir is the database source checkout holding the Makefile.
	// Defaults to $SRC_DIR.
	SrcDir string

	// Pairs is the number of primary/mirror segment pairs.
	Pairs int
}

// DefaultOptions returns options populated from the environment.
func DefaultOptions() *Options {
	return &Options{
		SrcDir: env.Default("SRC_DIR", ""),
		Pairs:  DefaultPairs,
	}
}

// Validate checks the option consistency.
func (o *Options) Validate() error {
	if o.SrcDir == "" {
		return fmt.Errorf("source directory must be set (or $SRC_DIR exported)")
	}
	if o.Pairs < 1 {
		return fmt.Errorf("number of primary/mirror pairs must be at least 1")
	}
	return nil
}

// Driver invokes the demo cluster targets and verifies the result.
type Driver struct {
	impl driverImpl
	opts *Options
}

// NewDriver creates a new Driver for the provided options.
func NewDriver(opts *Options) *Driver {
	return &Driver{
		impl: &defaultDriverImpl{},
		opts: opts,
	}
}

// SetImpl can be used to set the internal implementation.
func (d *Driver) SetImpl(impl driverImpl) {
	d.impl = impl
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate . driverImpl
type driverImpl interface {
	CommandAvailable(commands ...string) bool
	RunMake(srcDir, target string, variables ...string) error
	Probe() (string, error)
}

type defaultDriverImpl struct{}

func (*defaultDriverImpl) CommandAvailable(commands ...string) bool {
	return command.Available(commands...)
}

func (*defaultDriverImpl) RunMake(srcDir, target string, variables ...string) error {
	args := append([]string{"-C", srcDir, target}, variables...)
	return command.New("make", args...).RunSuccess()
}

func (*defaultDriverImpl) Probe() (string, error) {
	status, err := command.New(
		"psql", "-At", "-d", "template1", "-c", "select version()",
	).RunSilentSuccessOutput()
	if err != nil {
		return "", err
	}
	return status.OutputTrimNL(), nil
}

// Create builds the demo cluster and probes it afterwards.
func (d *Driver) Create() error {
	if err := d.checkPrerequisites(); err != nil {
		return err
	}

	logrus.Infof(
		"Creating demo cluster with %d primary/mirror pairs", d.opts.Pairs,
	)
	if err := d.impl.RunMake(
		d.opts.SrcDir, CreateTarget,
		fmt.Sprintf("%s=%d", pairsVariable, d.opts.Pairs),
	); err != nil {
		return fmt.Errorf("creating demo cluster: %w", err)
	}

	version, err := d.Status()
	if err != nil {
		return fmt.Errorf("verifying demo cluster: %w", err)
	}
	logrus.Infof("Demo cluster is up: %s", version)

	return nil
}

// Destroy tears the demo cluster down.
func (d *Driver) Destroy() error {
	if err := d.checkPrerequisites(); err != nil {
		return err
	}

	logrus.Info("Destroying demo cluster")
	if err := d.impl.RunMake(d.opts.SrcDir, DestroyTarget); err != nil {
		return fmt.Errorf("destroying demo cluster: %w", err)
	}

	return nil
}

// Status probes the cluster and returns the server version string.
func (d *Driver) Status() (string, error) {
	if !d.impl.CommandAvailable("psql") {
		return "", fmt.Errorf("psql is required but not available in $PATH")
	}

	version, err := d.impl.Probe()
	if err != nil {
		return "", fmt.Errorf("probing database: %w", err)
	}
	if version == "" {
		return "", fmt.Errorf("database returned an empty version")
	}

	return version, nil
}

func (d *Driver) checkPrerequisites() error {
	if err := d.opts.Validate(); err != nil {
		return fmt.Errorf("validating options: %w", err)
	}
	if !d.impl.CommandAvailable("make") {
		return fmt.Errorf("make is required but not available in $PATH")
	}
	return nil
}
