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

// Package repoconf renders yum and apt repository configuration from a
// YAML channel definition and refreshes RPM repository metadata.
package repoconf

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Default deb line fields when the channel does not override them.
const (
	DefaultSuite     = "stable"
	DefaultComponent = "main"
)

// Channel is one package repository channel definition.
type Channel struct {
	// Name is the repository identifier (section name / list file).
	Name string `yaml:"name"`

	// Description is the human readable repository name.
	Description string `yaml:"description"`

	// BaseURL is the repository root URL.
	BaseURL string `yaml:"baseurl"`

	// GPGKey is the URL or path of the signing key.
	GPGKey string `yaml:"gpgkey,omitempty"`

	// GPGCheck enables package signature verification.
	GPGCheck bool `yaml:"gpgcheck"`

	// RepoGPGCheck enables repository metadata verification.
	RepoGPGCheck bool `yaml:"repo_gpgcheck"`

	// Suite is the deb line distribution field.
	Suite string `yaml:"suite,omitempty"`

	// Component is the deb line component field.
	Component string `yaml:"component,omitempty"`

	// KeyringPath is the local keyring the deb line is signed by.
	KeyringPath string `yaml:"keyring,omitempty"`
}

// Definition is the top level YAML document.
type Definition struct {
	Channels []Channel `yaml:"channels"`
}

// Load reads and validates a channel definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading channel definition %q: %w", path, err)
	}

	definition := &Definition{}
	if err := yaml.UnmarshalStrict(data, definition); err != nil {
		return nil, fmt.Errorf("parsing channel definition %q: %w", path, err)
	}

	if err := definition.Validate(); err != nil {
		return nil, fmt.Errorf("validating channel definition %q: %w", path, err)
	}

	return definition, nil
}

// Validate checks the definition for completeness.
func (d *Definition) Validate() error {
	if len(d.Channels) == 0 {
		return fmt.Errorf("no channels defined")
	}
	for i, channel := range d.Channels {
		if channel.Name == "" {
			return fmt.Errorf("channel %d has no name", i)
		}
		if channel.BaseURL == "" {
			return fmt.Errorf("channel %q has no baseurl", channel.Name)
		}
		if (channel.GPGCheck || channel.RepoGPGCheck) && channel.GPGKey == "" {
			return fmt.Errorf(
				"channel %q enables gpg checks but sets no gpgkey", channel.Name,
			)
		}
	}
	return nil
}

// RenderYum renders the definition as a yum .repo file.
func (d *Definition) RenderYum() string {
	builder := &strings.Builder{}
	for i, channel := range d.Channels {
		if i > 0 {
			fmt.Fprintln(builder)
		}

		fmt.Fprintf(builder, "[%s]\n", channel.Name)
		fmt.Fprintf(builder, "name=%s\n", channel.Description)
		fmt.Fprintf(builder, "baseurl=%s\n", channel.BaseURL)
		fmt.Fprintln(builder, "enabled=1")
		fmt.Fprintf(builder, "gpgcheck=%s\n", yumBool(channel.GPGCheck))
		fmt.Fprintf(builder, "repo_gpgcheck=%s\n", yumBool(channel.RepoGPGCheck))
		if channel.GPGKey != "" {
			fmt.Fprintf(builder, "gpgkey=%s\n", channel.GPGKey)
		}
	}
	return builder.String()
}

// RenderApt renders the definition as an apt sources .list file.
func (d *Definition) RenderApt() string {
	builder := &strings.Builder{}
	for _, channel := range d.Channels {
		suite := channel.Suite
		if suite == "" {
			suite = DefaultSuite
		}
		component := channel.Component
		if component == "" {
			component = DefaultComponent
		}

		if channel.KeyringPath != "" {
			fmt.Fprintf(builder,
				"deb [signed-by=%s] %s %s %s\n",
				channel.KeyringPath, channel.BaseURL, suite, component,
			)
		} else {
			fmt.Fprintf(builder,
				"deb %s %s %s\n", channel.BaseURL, suite, component,
			)
		}
	}
	return builder.String()
}

// YumRepoFileName is the .repo file name for this definition.
func (d *Definition) YumRepoFileName() string {
	return d.Channels[0].Name + ".repo"
}

// AptListFileName is the .list file name for this definition.
func (d *Definition) AptListFileName() string {
	return d.Channels[0].Name + ".list"
}

func yumBool(value bool) string {
	if value {
		return "1"
	}
	return "0"
}
