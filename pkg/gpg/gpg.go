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

// Package gpg produces and verifies the armored detached signatures
// published next to Apache Cloudberry release artifacts.
package gpg

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/release-utils/command"
	"sigs.k8s.io/release-utils/util"
)

// SignatureExtension is appended to an artifact path to name its signature.
const SignatureExtension = ".asc"

// Signer signs and verifies release artifacts via the gpg binary.
type Signer struct {
	impl signerImpl
	user string
}

// NewSigner creates a new Signer for the given GPG user id.
func NewSigner(user string) *Signer {
	return &Signer{impl: &defaultSignerImpl{}, user: user}
}

// SetImpl can be used to set the internal signer implementation.
func (s *Signer) SetImpl(impl signerImpl) {
	s.impl = impl
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate . signerImpl
type signerImpl interface {
	CommandAvailable(commands ...string) bool
	RunGPG(args ...string) error
	FileExists(path string) bool
}

type defaultSignerImpl struct{}

func (*defaultSignerImpl) CommandAvailable(commands ...string) bool {
	return command.Available(commands...)
}

func (*defaultSignerImpl) RunGPG(args ...string) error {
	return command.New("gpg", args...).RunSilentSuccess()
}

func (*defaultSignerImpl) FileExists(path string) bool {
	return util.Exists(path)
}

// SignFile creates an armored detached signature for `path` and returns the
// signature file location.
func (s *Signer) SignFile(path string) (string, error) {
	if !s.impl.CommandAvailable("gpg") {
		return "", errors.New("gpg is not available in $PATH")
	}
	if s.user == "" {
		return "", errors.New("no GPG user id set")
	}
	if !s.impl.FileExists(path) {
		return "", fmt.Errorf("artifact %q does not exist", path)
	}

	sigPath := path + SignatureExtension
	logrus.Infof("Signing %s as %s", path, s.user)
	if err := s.impl.RunGPG(
		"--batch", "--yes", "--armor", "--detach-sign",
		"--local-user", s.user, "--output", sigPath, path,
	); err != nil {
		return "", fmt.Errorf("signing %q: %w", path, err)
	}

	return sigPath, nil
}

// VerifyFile checks the detached signature `sigPath` against `path`.
func (s *Signer) VerifyFile(path, sigPath string) error {
	if !s.impl.FileExists(sigPath) {
		return fmt.Errorf("signature %q does not exist", sigPath)
	}

	logrus.Infof("Verifying signature %s", sigPath)
	if err := s.impl.RunGPG("--verify", sigPath, path); err != nil {
		return fmt.Errorf("verifying signature of %q: %w", path, err)
	}
	return nil
}
