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

package stage_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apache/cloudberry-devops-release/pkg/gitw"
	"github.com/apache/cloudberry-devops-release/pkg/stage"
	"github.com/apache/cloudberry-devops-release/pkg/stage/stagefakes"
)

var errTest = errors.New("")

func TestRunStage(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name      string
		prepare   func(*stagefakes.FakeStageClient)
		shouldErr bool
	}{
		{
			name:      "success",
			prepare:   func(*stagefakes.FakeStageClient) {},
			shouldErr: false,
		},
		{
			name: "failure ValidateOptions",
			prepare: func(mock *stagefakes.FakeStageClient) {
				mock.ValidateOptionsReturns(errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure CheckPrerequisites",
			prepare: func(mock *stagefakes.FakeStageClient) {
				mock.CheckPrerequisitesReturns(errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure CheckWorkingTree",
			prepare: func(mock *stagefakes.FakeStageClient) {
				mock.CheckWorkingTreeReturns(errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure CheckVersionConsistency",
			prepare: func(mock *stagefakes.FakeStageClient) {
				mock.CheckVersionConsistencyReturns(errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure InitWorkingRepository",
			prepare: func(mock *stagefakes.FakeStageClient) {
				mock.InitWorkingRepositoryReturns(errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure TagRepository",
			prepare: func(mock *stagefakes.FakeStageClient) {
				mock.TagRepositoryReturns(errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure AssembleSourceArchive",
			prepare: func(mock *stagefakes.FakeStageClient) {
				mock.AssembleSourceArchiveReturns(errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure GenerateChecksums",
			prepare: func(mock *stagefakes.FakeStageClient) {
				mock.GenerateChecksumsReturns(errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure SignArtifacts",
			prepare: func(mock *stagefakes.FakeStageClient) {
				mock.SignArtifactsReturns(errTest)
			},
			shouldErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &stagefakes.FakeStageClient{}
			tc.prepare(mock)

			sut := stage.NewStage(stage.DefaultOptions())
			sut.SetClient(mock)

			err := sut.Run()
			if tc.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, 1, mock.InitStateCallCount())
				require.Equal(t, 1, mock.SignArtifactsCallCount())
			}
		})
	}
}

func newSut(opts *stage.Options) (*stage.DefaultStage, *stagefakes.FakeStageImpl) {
	sut := stage.NewDefaultStage(opts)
	sut.SetState(stage.NewState())

	mock := &stagefakes.FakeStageImpl{}
	sut.SetImpl(mock)

	return sut, mock
}

func validOptions() *stage.Options {
	opts := stage.DefaultOptions()
	opts.Tag = "v2.0.0"
	opts.GPGUser = "dev@cloudberry.apache.org"
	return opts
}

func TestValidateOptions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name      string
		modify    func(*stage.Options)
		shouldErr bool
	}{
		{
			name:      "success",
			modify:    func(*stage.Options) {},
			shouldErr: false,
		},
		{
			name: "success skip signing without gpg user",
			modify: func(opts *stage.Options) {
				opts.GPGUser = ""
				opts.SkipSigning = true
			},
			shouldErr: false,
		},
		{
			name: "failure no tag",
			modify: func(opts *stage.Options) {
				opts.Tag = ""
			},
			shouldErr: true,
		},
		{
			name: "failure invalid tag",
			modify: func(opts *stage.Options) {
				opts.Tag = "not-semver"
			},
			shouldErr: true,
		},
		{
			name: "failure no stage dir",
			modify: func(opts *stage.Options) {
				opts.StageDir = ""
			},
			shouldErr: true,
		},
		{
			name: "failure no gpg user",
			modify: func(opts *stage.Options) {
				opts.GPGUser = ""
			},
			shouldErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			opts := validOptions()
			tc.modify(opts)
			sut, _ := newSut(opts)

			err := sut.ValidateOptions()
			if tc.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, "2.0.0", sut.State().Version())
			}
		})
	}
}

func TestCheckPrerequisites(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		sut, mock := newSut(validOptions())
		require.NoError(t, sut.CheckPrerequisites())

		_, commands := mock.CheckPrerequisitesArgsForCall(0)
		require.Contains(t, commands, "gpg")
	})

	t.Run("success skip signing drops gpg", func(t *testing.T) {
		t.Parallel()

		opts := validOptions()
		opts.SkipSigning = true
		sut, mock := newSut(opts)
		require.NoError(t, sut.CheckPrerequisites())

		_, commands := mock.CheckPrerequisitesArgsForCall(0)
		require.NotContains(t, commands, "gpg")
	})

	t.Run("failure create stage dir", func(t *testing.T) {
		t.Parallel()

		sut, mock := newSut(validOptions())
		mock.MkdirAllReturns(errTest)
		require.Error(t, sut.CheckPrerequisites())
	})

	t.Run("failure prerequisites", func(t *testing.T) {
		t.Parallel()

		sut, mock := newSut(validOptions())
		mock.CheckPrerequisitesReturns(errTest)
		require.Error(t, sut.CheckPrerequisites())
	})
}

func TestCheckWorkingTree(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name      string
		opts      func() *stage.Options
		prepare   func(*stagefakes.FakeStageImpl)
		shouldErr bool
	}{
		{
			name: "success",
			opts: validOptions,
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.IsCleanReturns(true, nil)
				mock.HeadSHAReturns("abc", nil)
				mock.RemoteHeadSHAReturns("abc", nil)
			},
			shouldErr: false,
		},
		{
			name: "success skip remote check",
			opts: func() *stage.Options {
				opts := validOptions()
				opts.SkipRemoteCheck = true
				return opts
			},
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.IsCleanReturns(true, nil)
			},
			shouldErr: false,
		},
		{
			name: "failure open repo",
			opts: validOptions,
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.OpenRepoReturns(nil, errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure dirty working tree",
			opts: validOptions,
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.IsCleanReturns(false, nil)
			},
			shouldErr: true,
		},
		{
			name: "failure IsClean errors",
			opts: validOptions,
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.IsCleanReturns(false, errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure local HEAD behind remote",
			opts: validOptions,
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.IsCleanReturns(true, nil)
				mock.HeadSHAReturns("abc", nil)
				mock.RemoteHeadSHAReturns("def", nil)
			},
			shouldErr: true,
		},
		{
			name: "failure remote head lookup",
			opts: validOptions,
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.IsCleanReturns(true, nil)
				mock.RemoteHeadSHAReturns("", errTest)
			},
			shouldErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sut, mock := newSut(tc.opts())
			tc.prepare(mock)

			err := sut.CheckWorkingTree()
			if tc.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestInitWorkingRepository(t *testing.T) {
	t.Parallel()

	t.Run("success mock mode clones", func(t *testing.T) {
		t.Parallel()

		sut, mock := newSut(validOptions())
		mock.MkdirTempReturns("stage/mock-1", nil)
		require.NoError(t, sut.InitWorkingRepository())

		require.Equal(t, 1, mock.CloneRepoCallCount())
		src, dst := mock.CloneRepoArgsForCall(0)
		require.Equal(t, ".", src)
		require.Equal(t, filepath.Join("stage", "mock-1", "apache-cloudberry-incubating"), dst)
	})

	t.Run("success nomock reuses the source repository", func(t *testing.T) {
		t.Parallel()

		opts := validOptions()
		opts.NoMock = true
		sut, mock := newSut(opts)
		require.NoError(t, sut.InitWorkingRepository())
		require.Zero(t, mock.CloneRepoCallCount())
	})

	t.Run("failure temp dir", func(t *testing.T) {
		t.Parallel()

		sut, mock := newSut(validOptions())
		mock.MkdirTempReturns("", errTest)
		require.Error(t, sut.InitWorkingRepository())
	})

	t.Run("failure clone", func(t *testing.T) {
		t.Parallel()

		sut, mock := newSut(validOptions())
		mock.CloneRepoReturns(nil, errTest)
		require.Error(t, sut.InitWorkingRepository())
	})
}

func TestTagRepository(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name      string
		opts      func() *stage.Options
		prepare   func(*stagefakes.FakeStageImpl)
		assert    func(*testing.T, *stagefakes.FakeStageImpl)
		shouldErr bool
	}{
		{
			name: "success tag missing creates it at HEAD",
			opts: validOptions,
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.HeadSHAReturns("abc", nil)
				mock.TagSHAReturns("", nil)
			},
			assert: func(t *testing.T, mock *stagefakes.FakeStageImpl) {
				require.Equal(t, 1, mock.CreateTagCallCount())
				_, tag, message := mock.CreateTagArgsForCall(0)
				require.Equal(t, "v2.0.0", tag)
				require.Contains(t, message, "2.0.0")
			},
			shouldErr: false,
		},
		{
			name: "success tag at HEAD gets reused",
			opts: validOptions,
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.HeadSHAReturns("abc", nil)
				mock.TagSHAReturns("abc", nil)
			},
			assert: func(t *testing.T, mock *stagefakes.FakeStageImpl) {
				require.Zero(t, mock.CreateTagCallCount())
				require.Zero(t, mock.CheckoutCallCount())
			},
			shouldErr: false,
		},
		{
			name: "success forced reuse checks out the tag",
			opts: func() *stage.Options {
				opts := validOptions()
				opts.ForceTagReuse = true
				return opts
			},
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.HeadSHAReturns("abc", nil)
				mock.TagSHAReturns("def", nil)
			},
			assert: func(t *testing.T, mock *stagefakes.FakeStageImpl) {
				require.Equal(t, 1, mock.CheckoutCallCount())
				_, rev := mock.CheckoutArgsForCall(0)
				require.Equal(t, "v2.0.0", rev)
				// The submodule worktrees follow the checkout.
				require.Equal(t, 1, mock.UpdateSubmodulesCallCount())
			},
			shouldErr: false,
		},
		{
			name: "failure tag exists elsewhere",
			opts: validOptions,
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.HeadSHAReturns("abc", nil)
				mock.TagSHAReturns("def", nil)
			},
			shouldErr: true,
		},
		{
			name: "failure HEAD lookup",
			opts: validOptions,
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.HeadSHAReturns("", errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure tag lookup",
			opts: validOptions,
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.TagSHAReturns("", errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure create tag",
			opts: validOptions,
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.HeadSHAReturns("abc", nil)
				mock.TagSHAReturns("", nil)
				mock.CreateTagReturns(errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure checkout on forced reuse",
			opts: func() *stage.Options {
				opts := validOptions()
				opts.ForceTagReuse = true
				return opts
			},
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.HeadSHAReturns("abc", nil)
				mock.TagSHAReturns("def", nil)
				mock.CheckoutReturns(errTest)
			},
			shouldErr: true,
		},
		{
			name: "failure submodule update on forced reuse",
			opts: func() *stage.Options {
				opts := validOptions()
				opts.ForceTagReuse = true
				return opts
			},
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.HeadSHAReturns("abc", nil)
				mock.TagSHAReturns("def", nil)
				mock.UpdateSubmodulesReturns(errTest)
			},
			shouldErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sut, mock := newSut(tc.opts())
			require.NoError(t, sut.ValidateOptions())
			tc.prepare(mock)

			err := sut.TagRepository()
			if tc.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				if tc.assert != nil {
					tc.assert(t, mock)
				}
			}
		})
	}
}

func TestAssembleSourceArchive(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		sut, mock := newSut(validOptions())
		require.NoError(t, sut.ValidateOptions())

		mock.MkdirTempReturns(filepath.Join("stage", "src-1"), nil)
		mock.SubmodulesReturns([]gitw.Submodule{
			{Name: "xerces-c", Path: "deps/xerces-c"},
			{Name: "orafce", Path: "contrib/orafce"},
		}, nil)

		require.NoError(t, sut.AssembleSourceArchive())

		_, ref, prefix, _ := mock.ArchiveArgsForCall(0)
		require.Equal(t, "v2.0.0", ref)
		require.Equal(t, "apache-cloudberry-incubating-2.0.0/", prefix)

		require.Equal(t, 2, mock.ArchiveSubmoduleCallCount())
		_, submodule, subPrefix, _ := mock.ArchiveSubmoduleArgsForCall(0)
		require.Equal(t, "deps/xerces-c", submodule.Path)
		require.Equal(t, "apache-cloudberry-incubating-2.0.0/deps/xerces-c/", subPrefix)

		// One extraction for the superproject, one per submodule.
		require.Equal(t, 3, mock.ExtractTarCallCount())

		archivePath, treeDir := mock.CompressTarArgsForCall(0)
		require.Equal(t, filepath.Join(
			"stage", "2.0.0", "apache-cloudberry-incubating-2.0.0-src.tar.gz",
		), archivePath)
		require.Equal(t, filepath.Join("stage", "src-1", "tree"), treeDir)

		// The scratch directory gets cleaned up.
		require.Equal(t, 1, mock.RemoveAllCallCount())
	})

	for _, tc := range []struct {
		name    string
		prepare func(*stagefakes.FakeStageImpl)
	}{
		{
			name: "failure version dir",
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.MkdirAllReturns(errTest)
			},
		},
		{
			name: "failure scratch dir",
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.MkdirTempReturns("", errTest)
			},
		},
		{
			name: "failure archive",
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.ArchiveReturns(errTest)
			},
		},
		{
			name: "failure extract",
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.ExtractTarReturns(errTest)
			},
		},
		{
			name: "failure submodule listing",
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.SubmodulesReturns(nil, errTest)
			},
		},
		{
			name: "failure submodule archive",
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.SubmodulesReturns([]gitw.Submodule{
					{Name: "xerces-c", Path: "deps/xerces-c"},
				}, nil)
				mock.ArchiveSubmoduleReturns(errTest)
			},
		},
		{
			name: "failure compress",
			prepare: func(mock *stagefakes.FakeStageImpl) {
				mock.CompressTarReturns(errTest)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sut, mock := newSut(validOptions())
			require.NoError(t, sut.ValidateOptions())
			tc.prepare(mock)

			require.Error(t, sut.AssembleSourceArchive())
		})
	}
}

func TestGenerateChecksums(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*stage.DefaultStage, *stagefakes.FakeStageImpl) {
		t.Helper()

		sut, mock := newSut(validOptions())
		require.NoError(t, sut.ValidateOptions())
		require.NoError(t, sut.AssembleSourceArchive())
		return sut, mock
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		sut, mock := setup(t)
		mock.GenerateChecksumsReturns([]string{"a.sha256", "a.sha512"}, nil)

		require.NoError(t, sut.GenerateChecksums())
		require.Equal(t, 1, mock.GenerateChecksumsCallCount())
		require.Equal(t, 2, mock.VerifyChecksumCallCount())
	})

	t.Run("failure generate", func(t *testing.T) {
		t.Parallel()

		sut, mock := setup(t)
		mock.GenerateChecksumsReturns(nil, errTest)
		require.Error(t, sut.GenerateChecksums())
	})

	t.Run("failure verify", func(t *testing.T) {
		t.Parallel()

		sut, mock := setup(t)
		mock.GenerateChecksumsReturns([]string{"a.sha256"}, nil)
		mock.VerifyChecksumReturns(errTest)
		require.Error(t, sut.GenerateChecksums())
	})
}

func TestSignArtifacts(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T, opts *stage.Options) (*stage.DefaultStage, *stagefakes.FakeStageImpl) {
		t.Helper()

		sut, mock := newSut(opts)
		require.NoError(t, sut.ValidateOptions())
		require.NoError(t, sut.AssembleSourceArchive())
		return sut, mock
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		sut, mock := setup(t, validOptions())
		mock.SignFileReturns("artifact.asc", nil)

		require.NoError(t, sut.SignArtifacts())
		require.Equal(t, 1, mock.SignFileCallCount())

		user, _ := mock.SignFileArgsForCall(0)
		require.Equal(t, "dev@cloudberry.apache.org", user)

		_, _, sigPath := mock.VerifySignatureArgsForCall(0)
		require.Equal(t, "artifact.asc", sigPath)
	})

	t.Run("success skip signing", func(t *testing.T) {
		t.Parallel()

		opts := validOptions()
		opts.SkipSigning = true
		sut, mock := setup(t, opts)

		require.NoError(t, sut.SignArtifacts())
		require.Zero(t, mock.SignFileCallCount())
	})

	t.Run("failure sign", func(t *testing.T) {
		t.Parallel()

		sut, mock := setup(t, validOptions())
		mock.SignFileReturns("", errTest)
		require.Error(t, sut.SignArtifacts())
	})

	t.Run("failure verify", func(t *testing.T) {
		t.Parallel()

		sut, mock := setup(t, validOptions())
		mock.SignFileReturns("artifact.asc", nil)
		mock.VerifySignatureReturns(errTest)
		require.Error(t, sut.SignArtifacts())
	})
}
