// Copyright 2025 docdex contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/tags"
)

// MinioAdapter implements ObjectStore on top of a MinIO bucket. The client
// is constructed once at process start and reused for the process lifetime.
type MinioAdapter struct {
	conf   *MinioConf
	client *minio.Client
}

func (ma *MinioAdapter) String() string {
	return fmt.Sprintf("MinioAdapter, endpoint %s, bucket %s", ma.conf.Endpoint, ma.conf.Bucket)
}

func (ma *MinioAdapter) List(ctx context.Context) ([]ObjectInfo, error) {
	var ans []ObjectInfo
	opts := minio.ListObjectsOptions{Recursive: true}
	for obj := range ma.client.ListObjects(ctx, ma.conf.Bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", ma.conf.Bucket, obj.Err)
		}
		ans = append(ans, ObjectInfo{
			Name:         obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			ETag:         obj.ETag,
		})
	}
	return ans, nil
}

// normalizeErr maps the store's "no such key" responses to
// ErrObjectNotFound so handlers can branch on them.
func normalizeErr(op, name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrObjectNotFound
	}
	return fmt.Errorf("failed to %s object %s: %w", op, name, err)
}

func (ma *MinioAdapter) Get(ctx context.Context, name string) ([]byte, error) {
	obj, err := ma.client.GetObject(ctx, ma.conf.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, normalizeErr("fetch", name, err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, normalizeErr("read", name, err)
	}
	return data, nil
}

func (ma *MinioAdapter) Stat(ctx context.Context, name string) (ObjectInfo, error) {
	info, err := ma.client.StatObject(ctx, ma.conf.Bucket, name, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, normalizeErr("stat", name, err)
	}
	return ObjectInfo{
		Name:         name,
		Size:         info.Size,
		LastModified: info.LastModified,
		ETag:         info.ETag,
	}, nil
}

func (ma *MinioAdapter) GetTags(ctx context.Context, name string) (map[string]string, error) {
	tagSet, err := ma.client.GetObjectTagging(ctx, ma.conf.Bucket, name, minio.GetObjectTaggingOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tags of object %s: %w", name, err)
	}
	if tagSet == nil {
		return map[string]string{}, nil
	}
	return tagSet.ToMap(), nil
}

func (ma *MinioAdapter) SetTags(ctx context.Context, name string, tagMap map[string]string) error {
	tagSet, err := tags.NewTags(tagMap, true)
	if err != nil {
		return fmt.Errorf("failed to set tags of object %s: %w", name, err)
	}
	if err := ma.client.PutObjectTagging(ctx, ma.conf.Bucket, name, tagSet, minio.PutObjectTaggingOptions{}); err != nil {
		return fmt.Errorf("failed to set tags of object %s: %w", name, err)
	}
	return nil
}

func (ma *MinioAdapter) Put(ctx context.Context, name string, data []byte, contentType string) (ObjectInfo, error) {
	info, err := ma.client.PutObject(
		ctx, ma.conf.Bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to store object %s: %w", name, err)
	}
	return ObjectInfo{
		Name:         name,
		Size:         info.Size,
		LastModified: info.LastModified,
		ETag:         info.ETag,
	}, nil
}

func NewMinioAdapter(conf *MinioConf) (*MinioAdapter, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}
	return &MinioAdapter{conf: conf, client: client}, nil
}
