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

package repoconf

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/release-utils/command"
	"sigs.k8s.io/release-utils/util"
)

// Updater refreshes RPM repository metadata via createrepo_c.
type Updater struct {
	impl updaterImpl
}

// NewUpdater creates a new metadata Updater.
func NewUpdater() *Updater {
	return &Updater{impl: &defaultUpdaterImpl{}}
}

// SetImpl can be used to set the internal implementation.
func (u *Updater) SetImpl(impl updaterImpl) {
	u.impl = impl
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate . updaterImpl
type updaterImpl interface {
	CommandAvailable(commands ...string) bool
	DirExists(path string) bool
	RunCreateRepo(dir string) error
}

type defaultUpdaterImpl struct{}

func (*defaultUpdaterImpl) CommandAvailable(commands ...string) bool {
	return command.Available(commands...)
}

func (*defaultUpdaterImpl) DirExists(path string) bool {
	return util.Exists(path)
}

func (*defaultUpdaterImpl) RunCreateRepo(dir string) error {
	return command.New("createrepo_c", "--update", dir).RunSuccess()
}

// Run updates the repository metadata under `dir`.
func (u *Updater) Run(dir string) error {
	if !u.impl.CommandAvailable("createrepo_c") {
		return fmt.Errorf("createrepo_c is required but not available in $PATH")
	}
	if !u.impl.DirExists(dir) {
		return fmt.Errorf("repository directory %q does not exist", dir)
	}

	logrus.Infof("Updating repository metadata in %s", dir)
	if err := u.impl.RunCreateRepo(dir); err != nil {
		return fmt.Errorf("running createrepo_c: %w", err)
	}

	return nil
}
