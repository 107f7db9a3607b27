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
	"github.com/spf13/cobra"

	"github.com/apache/cloudberry-devops-release/pkg/stage"
)

var stageCmd = &cobra.Command{
	Use:   "stage --tag vX.Y.Z [--stage DIR]",
	Short: "Stage a new Apache Cloudberry release",
	Long: `cbrel stage

This command stages a new Apache Cloudberry (Incubating) release: it
verifies the repository and its version carrying metadata files, cuts
the release tag, assembles the source tarball including all submodules
and produces checksum and signature sidecar files next to it.

By default the tag is created in a throwaway clone so that the source
repository stays untouched. Pass --nomock to stage the real thing.`,
	Example:       "cbrel stage --tag v2.0.0 --stage ./stage --gpg-user dev@cloudberry.apache.org",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(*cobra.Command, []string) error {
		return runStage(stageOpts)
	},
}

var stageOpts = stage.DefaultOptions()

func init() {
	stageCmd.PersistentFlags().StringVar(
		&stageOpts.Tag,
		"tag",
		"",
		"the release tag to stage, for example v2.0.0",
	)
	stageCmd.PersistentFlags().StringVar(
		&stageOpts.StageDir,
		"stage",
		stageOpts.StageDir,
		"the directory where the staged artifacts land",
	)
	stageCmd.PersistentFlags().StringVar(
		&stageOpts.GPGUser,
		"gpg-user",
		"",
		"the GPG user id used for signing the artifacts",
	)
	stageCmd.PersistentFlags().BoolVar(
		&stageOpts.SkipSigning,
		"skip-signing",
		false,
		"skip artifact signing",
	)
	stageCmd.PersistentFlags().BoolVar(
		&stageOpts.SkipRemoteCheck,
		"skip-remote-check",
		false,
		"do not verify that the local HEAD matches the remote default branch",
	)
	stageCmd.PersistentFlags().BoolVar(
		&stageOpts.ForceTagReuse,
		"force-tag-reuse",
		false,
		"stage from an already existing tag which does not point at HEAD",
	)

	rootCmd.AddCommand(stageCmd)
}

func runStage(opts *stage.Options) error {
	opts.RepoPath = rootOpts.repoPath
	opts.NoMock = rootOpts.nomock
	return stage.NewStage(opts).Run()
}
