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
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apache/cloudberry-devops-release/pkg/repoconf"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage package repository configuration",
}

var repoConfigCmd = &cobra.Command{
	Use:   "config --definition FILE --format (yum|apt)",
	Short: "Render repository configuration from a channel definition",
	Long: `cbrel repo config

This command reads a YAML channel definition and renders either a yum
.repo file or an apt .list file into the output directory.`,
	Example:       "cbrel repo config --definition channels.yaml --format yum --output-dir /etc/yum.repos.d",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(*cobra.Command, []string) error {
		return runRepoConfig()
	},
}

var repoUpdateCmd = &cobra.Command{
	Use:           "update DIR",
	Short:         "Update the repository metadata of an RPM directory",
	Example:       "cbrel repo update /srv/repo/el9",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return repoconf.NewUpdater().Run(args[0])
	},
}

var (
	repoDefinition string
	repoFormat     string
	repoOutputDir  string
)

func init() {
	repoConfigCmd.PersistentFlags().StringVar(
		&repoDefinition,
		"definition",
		"",
		"path of the YAML channel definition",
	)
	repoConfigCmd.PersistentFlags().StringVar(
		&repoFormat,
		"format",
		"yum",
		"output format, either 'yum' or 'apt'",
	)
	repoConfigCmd.PersistentFlags().StringVar(
		&repoOutputDir,
		"output-dir",
		".",
		"directory receiving the rendered configuration file",
	)

	repoCmd.AddCommand(repoConfigCmd)
	repoCmd.AddCommand(repoUpdateCmd)
	rootCmd.AddCommand(repoCmd)
}

func runRepoConfig() error {
	definition, err := repoconf.Load(repoDefinition)
	if err != nil {
		return err
	}

	var fileName, content string
	switch repoFormat {
	case "yum":
		fileName = definition.YumRepoFileName()
		content = definition.RenderYum()
	case "apt":
		fileName = definition.AptListFileName()
		content = definition.RenderApt()
	default:
		return fmt.Errorf("unknown format %q, expected 'yum' or 'apt'", repoFormat)
	}

	path := filepath.Join(repoOutputDir, fileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	logrus.Infof("Wrote %s", path)

	return nil
}
