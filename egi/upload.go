/*
Copyright © 2018 the atltools authors.
This file is part of atltools.

atltools is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

atltools is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with atltools.  If not, see <http://www.gnu.org/licenses/>.
*/

package egi

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

// IsBlob returns whether dest refers to blob storage
// (i.e., if it starts with `gs://`, `s3://`, or `file://`).
func IsBlob(dest string) bool {
	return strings.HasPrefix(dest, "gs://") || strings.HasPrefix(dest, "s3://") || strings.HasPrefix(dest, "file://")
}

// splitBlobURL separates a destination URL into a bucket URL and a key
// prefix. For file:// URLs the whole path is the bucket.
func splitBlobURL(dest string) (bucketURL, prefix string, err error) {
	u, err := url.Parse(dest)
	if err != nil {
		return "", "", fmt.Errorf("egi: parsing destination %q: %w", dest, err)
	}
	if u.Scheme == "file" {
		return dest, "", nil
	}
	prefix = strings.Trim(u.Path, "/")
	u.Path = ""
	return u.String(), prefix, nil
}

// Upload copies files from the local directory dir to the blob storage
// location dest, keeping their base names.
func Upload(ctx context.Context, dir string, files []string, dest string) error {
	bucketURL, prefix, err := splitBlobURL(dest)
	if err != nil {
		return err
	}
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return fmt.Errorf("egi: opening bucket %s: %w", bucketURL, err)
	}
	defer bucket.Close()
	for _, f := range files {
		key := path.Join(prefix, filepath.Base(f))
		if err := upload(ctx, bucket, filepath.Join(dir, filepath.Base(f)), key); err != nil {
			return fmt.Errorf("egi: uploading %s to %s: %w", f, dest, err)
		}
	}
	return nil
}

func upload(ctx context.Context, bucket *blob.Bucket, file, key string) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := bucket.NewWriter(ctx, key, &blob.WriterOptions{})
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
