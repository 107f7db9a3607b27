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

	"github.com/apache/cloudberry-devops-release/pkg/cluster"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Manage the demo cluster of a source build",
}

var clusterCreateCmd = &cobra.Command{
	Use:           "create",
	Short:         "Create the demo cluster and probe it",
	Example:       "cbrel cluster create --src-dir ~/cloudberry --pairs 3",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(*cobra.Command, []string) error {
		return cluster.NewDriver(clusterOpts).Create()
	},
}

var clusterDestroyCmd = &cobra.Command{
	Use:           "destroy",
	Short:         "Tear the demo cluster down",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(*cobra.Command, []string) error {
		return cluster.NewDriver(clusterOpts).Destroy()
	},
}

var clusterStatusCmd = &cobra.Command{
	Use:           "status",
	Short:         "Probe the demo cluster",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(*cobra.Command, []string) error {
		version, err := cluster.NewDriver(clusterOpts).Status()
		if err != nil {
			return err
		}
		logrus.Infof("Cluster is up: %s", version)
		return nil
	},
}

var clusterOpts = cluster.DefaultOptions()

func init() {
	clusterCmd.PersistentFlags().StringVar(
		&clusterOpts.SrcDir,
		"src-dir",
		clusterOpts.SrcDir,
		"the database source checkout, defaults to $SRC_DIR",
	)
	clusterCmd.PersistentFlags().IntVar(
		&clusterOpts.Pairs,
		"pairs",
		clusterOpts.Pairs,
		"the number of primary/mirror segment pairs",
	)

	clusterCmd.AddCommand(clusterCreateCmd)
	clusterCmd.AddCommand(clusterDestroyCmd)
	clusterCmd.AddCommand(clusterStatusCmd)
	rootCmd.AddCommand(clusterCmd)
}
