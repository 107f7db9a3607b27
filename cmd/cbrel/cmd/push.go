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

	"github.com/apache/cloudberry-devops-release/pkg/object"
	"github.com/apache/cloudberry-devops-release/pkg/release"
)

var pushCmd = &cobra.Command{
	Use:   "push --version X.Y.Z --stage DIR",
	Short: "Push staged release artifacts to object storage",
	Long: `cbrel push

This command uploads the staged artifacts of one release version to the
release bucket and flips the 'current' marker object once every
artifact is in place. In the default mock mode the test bucket is used
unless --bucket overrides it.`,
	Example:       "cbrel push --version 2.0.0 --stage ./stage",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPush(cmd)
	},
}

var pushOpts = object.DefaultOptions()

func init() {
	pushCmd.PersistentFlags().StringVar(
		&pushOpts.Bucket,
		"bucket",
		"",
		"the target bucket, derived from the mock mode if unset",
	)
	pushCmd.PersistentFlags().StringVar(
		&pushOpts.Version,
		"version",
		"",
		"the release version to push",
	)
	pushCmd.PersistentFlags().StringVar(
		&pushOpts.Prefix,
		"prefix",
		pushOpts.Prefix,
		"the key prefix below the bucket",
	)
	pushCmd.PersistentFlags().StringVar(
		&pushOpts.StageDir,
		"stage",
		"stage",
		"the local staging directory",
	)
	pushCmd.PersistentFlags().StringVar(
		&pushOpts.Region,
		"region",
		"",
		"the bucket region",
	)
	pushCmd.PersistentFlags().StringVar(
		&pushOpts.Endpoint,
		"endpoint",
		"",
		"S3 endpoint override for compatible object stores",
	)
	pushCmd.PersistentFlags().IntVar(
		&pushOpts.MaxParallel,
		"parallel",
		pushOpts.MaxParallel,
		"maximum number of concurrent uploads",
	)
	pushCmd.PersistentFlags().BoolVar(
		&pushOpts.NoProgress,
		"no-progress",
		false,
		"disable the upload progress bar",
	)

	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command) error {
	if pushOpts.Bucket == "" {
		pushOpts.Bucket = release.TestBucket
		if rootOpts.nomock {
			pushOpts.Bucket = release.DefaultBucket
		}
	}
	return object.NewPusher(pushOpts).Run(cmd.Context())
}
