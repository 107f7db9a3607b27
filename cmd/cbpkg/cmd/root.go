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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/log"

	"github.com/apache/cloudberry-devops-release/pkg/cbpkg"
	"github.com/apache/cloudberry-devops-release/pkg/cbpkg/options"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cbpkg --type (rpm|deb) --version X.Y.Z --source TARBALL",
	Short: "cbpkg builds Apache Cloudberry (Incubating) OS packages",
	Long: `cbpkg

This command renders the packaging templates for the selected build
type and invokes rpmbuild or dpkg-buildpackage per package, channel
and architecture over the staged source tarball. The built packages
land below bin/<channel>/.`,
	Example: "cbpkg --type rpm --version 2.0.0 --arch amd64 --channels release " +
		"--source apache-cloudberry-incubating-2.0.0-src.tar.gz",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogging,
	RunE: func(*cobra.Command, []string) error {
		return run(rootOpts)
	},
}

type rootOptions struct {
	buildType string
	version   string
	revision  string

	packages      []string
	channels      []string
	architectures []string

	templateDir string
	sourcePath  string
	specOnly    bool

	logLevel string
}

var rootOpts = &rootOptions{}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.buildType,
		"type",
		"",
		"the package type to build, either 'rpm' or 'deb'",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.version,
		"version",
		"",
		"the Cloudberry version to build",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.revision,
		"revision",
		options.DefaultRevision,
		"the package revision",
	)
	rootCmd.PersistentFlags().StringArrayVar(
		&rootOpts.packages,
		"packages",
		options.SupportedPackages(),
		"packages to build",
	)
	rootCmd.PersistentFlags().StringArrayVar(
		&rootOpts.channels,
		"channels",
		options.SupportedChannels(),
		"channels to build for",
	)
	rootCmd.PersistentFlags().StringArrayVar(
		&rootOpts.architectures,
		"arch",
		options.SupportedArchitectures(),
		"architectures to build for",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.templateDir,
		"template-dir",
		options.DefaultTemplateDir,
		"template directory",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.sourcePath,
		"source",
		"",
		"path to the staged source tarball, required unless --spec-only is set",
	)
	rootCmd.PersistentFlags().BoolVar(
		&rootOpts.specOnly,
		"spec-only",
		false,
		"only render the specs instead of building packages",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.logLevel,
		"log-level",
		"info",
		"the logging verbosity, either 'panic', 'fatal', 'error', 'warn', 'warning', 'info', 'debug' or 'trace'",
	)
}

func initLogging(*cobra.Command, []string) error {
	return log.SetupGlobalLogger(rootOpts.logLevel)
}

func run(ro *rootOptions) error {
	opts := options.New().
		WithBuildType(options.BuildType(ro.buildType)).
		WithVersion(ro.version).
		WithRevision(ro.revision).
		WithPackages(ro.packages...).
		WithChannels(ro.channels...).
		WithArchitectures(ro.architectures...).
		WithTemplateDir(ro.templateDir).
		WithSourcePath(ro.sourcePath).
		WithSpecOnly(ro.specOnly)
	if err := opts.Validate(); err != nil {
		return err
	}

	client := cbpkg.New(opts)
	builds, err := client.ConstructBuilds()
	if err != nil {
		return err
	}
	return client.WalkBuilds(builds)
}
