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

// Package object pushes staged release artifacts to S3 compatible
// object storage using versioned prefixes and a `current` marker.
package object

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cheggaaa/pb/v3"
	"github.com/nozzle/throttler"
	"github.com/sirupsen/logrus"

	"github.com/apache/cloudberry-devops-release/pkg/release"
)

// DefaultMaxParallel bounds concurrent artifact uploads.
const DefaultMaxParallel = 4

// contentTypes maps artifact extensions which mime.TypeByExtension
// does not know about.
var contentTypes = map[string]string{
	".gz":     "application/gzip",
	".asc":    "text/plain",
	".sha256": "text/plain",
	".sha512": "text/plain",
	".rpm":    "application/x-rpm",
	".deb":    "application/vnd.debian.binary-package",
}

// Options configure a Pusher.
type Options struct {
	// Bucket is the target bucket name.
	Bucket string

	// Version selects the artifact directory below the stage dir and
	// the destination prefix.
	Version string

	// Prefix is the key prefix below the bucket.
	Prefix string

	// StageDir is the local staging directory.
	StageDir string

	// Region is the bucket region.
	Region string

	// Endpoint overrides the S3 endpoint for compatible stores.
	Endpoint string

	// MaxParallel bounds concurrent uploads.
	MaxParallel int

	// NoProgress disables the progress bar, for CI logs.
	NoProgress bool
}

// DefaultOptions returns options with the bucket layout defaults.
func DefaultOptions() *Options {
	return &Options{
		Bucket:      release.DefaultBucket,
		Prefix:      release.DefaultBucketPrefix,
		MaxParallel: DefaultMaxParallel,
	}
}

// Validate checks the option consistency.
func (o *Options) Validate() error {
	if o.Bucket == "" {
		return fmt.Errorf("bucket must be set")
	}
	if o.Version == "" {
		return fmt.Errorf("version must be set")
	}
	if o.StageDir == "" {
		return fmt.Errorf("stage directory must be set")
	}
	return nil
}

// VersionPrefix is the destination key prefix for the artifacts.
func (o *Options) VersionPrefix() string {
	if o.Prefix == "" {
		return o.Version + "/"
	}
	return o.Prefix + "/" + o.Version + "/"
}

// MarkerKey is the key of the `current` marker object.
func (o *Options) MarkerKey() string {
	if o.Prefix == "" {
		return release.CurrentMarker
	}
	return o.Prefix + "/" + release.CurrentMarker
}

// Pusher uploads staged artifacts.
type Pusher struct {
	impl pusherImpl
	opts *Options
}

// NewPusher creates a new Pusher for the provided options.
func NewPusher(opts *Options) *Pusher {
	return &Pusher{
		impl: &defaultPusherImpl{},
		opts: opts,
	}
}

// SetImpl can be used to set the internal implementation.
func (p *Pusher) SetImpl(impl pusherImpl) {
	p.impl = impl
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate . pusherImpl
type pusherImpl interface {
	Configure(ctx context.Context, region, endpoint string) error
	UploadFile(ctx context.Context, bucket, key, contentType, path string, progress *pb.ProgressBar) error
	UploadString(ctx context.Context, bucket, key, content string) error
	ListFiles(dir string) ([]string, error)
	FileSizes(files []string) (int64, error)
}

type defaultPusherImpl struct {
	uploader *manager.Uploader
}

func (d *defaultPusherImpl) Configure(ctx context.Context, region, endpoint string) error {
	loadOpts := []func(*config.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return fmt.Errorf("loading AWS configuration: %w", err)
	}

	s3Opts := []func(*s3.Options){}
	if endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	d.uploader = manager.NewUploader(s3.NewFromConfig(cfg, s3Opts...))

	return nil
}

func (d *defaultPusherImpl) UploadFile(
	ctx context.Context, bucket, key, contentType, path string,
	progress *pb.ProgressBar,
) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer file.Close()

	body := progress.NewProxyReader(file)

	if _, err := d.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	}); err != nil {
		return fmt.Errorf("uploading %q: %w", key, err)
	}
	return nil
}

func (d *defaultPusherImpl) UploadString(
	ctx context.Context, bucket, key, content string,
) error {
	if _, err := d.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String("text/plain"),
		Body:        strings.NewReader(content),
	}); err != nil {
		return fmt.Errorf("uploading %q: %w", key, err)
	}
	return nil
}

func (*defaultPusherImpl) ListFiles(dir string) (files []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

func (*defaultPusherImpl) FileSizes(files []string) (total int64, err error) {
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return 0, err
		}
		total += info.Size()
	}
	return total, nil
}

// Run uploads every artifact and finally the `current` marker.
func (p *Pusher) Run(ctx context.Context) error {
	if err := p.opts.Validate(); err != nil {
		return fmt.Errorf("validating options: %w", err)
	}

	if err := p.impl.Configure(ctx, p.opts.Region, p.opts.Endpoint); err != nil {
		return fmt.Errorf("configuring object storage client: %w", err)
	}

	artifactDir := filepath.Join(p.opts.StageDir, p.opts.Version)
	files, err := p.impl.ListFiles(artifactDir)
	if err != nil {
		return fmt.Errorf("listing artifacts in %q: %w", artifactDir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no artifacts found in %q", artifactDir)
	}

	totalSize, err := p.impl.FileSizes(files)
	if err != nil {
		return fmt.Errorf("sizing artifacts: %w", err)
	}

	logrus.Infof(
		"Uploading %d artifacts (%d bytes) to s3://%s/%s",
		len(files), totalSize, p.opts.Bucket, p.opts.VersionPrefix(),
	)

	progress := pb.New64(totalSize)
	progress.Set(pb.Bytes, true)
	if p.opts.NoProgress {
		progress.SetWriter(&nullWriter{})
	}
	progress.Start()
	defer progress.Finish()

	maxParallel := p.opts.MaxParallel
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}

	t := throttler.New(maxParallel, len(files))
	for _, file := range files {
		go func(file string) {
			key := p.opts.VersionPrefix() + filepath.Base(file)
			t.Done(p.impl.UploadFile(
				ctx, p.opts.Bucket, key, contentType(file), file, progress,
			))
		}(file)

		if t.Throttle() > 0 {
			break
		}
	}
	if err := t.Err(); err != nil {
		return fmt.Errorf("uploading artifacts: %w", err)
	}

	// The marker flips only after every artifact is in place.
	if err := p.impl.UploadString(
		ctx, p.opts.Bucket, p.opts.MarkerKey(), p.opts.Version+"\n",
	); err != nil {
		return fmt.Errorf("writing current marker: %w", err)
	}

	logrus.Infof("Marked %s as current", p.opts.Version)

	return nil
}

func contentType(path string) string {
	ext := filepath.Ext(path)
	if contentType, ok := contentTypes[ext]; ok {
		return contentType
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}

type nullWriter struct{}

func (*nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
