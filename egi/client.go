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
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sirupsen/logrus"
)

// ErrNoMoreResults is returned by Fetch when the response does not
// contain a zip archive, which is how EGI signals the end of paging.
var ErrNoMoreResults = errors.New("egi: no more results")

// StatusError is returned for unsuccessful HTTP responses.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("egi: %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Client downloads granules from EGI.
type Client struct {
	HTTP *http.Client

	// MaxRetries is the number of times a failed request is retried.
	MaxRetries uint64

	// DryRun causes Download to print the request URL to Out instead of
	// downloading anything.
	DryRun bool
	Out    io.Writer

	Log logrus.FieldLogger

	newBackOff func() backoff.BackOff
}

// NewClient returns a client with default settings.
func NewClient(log logrus.FieldLogger) *Client {
	return &Client{
		HTTP:       &http.Client{Timeout: 30 * time.Minute},
		MaxRetries: 5,
		Out:        os.Stdout,
		Log:        log,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
}

func (c *Client) backOff(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff
	if c.newBackOff != nil {
		b = c.newBackOff()
	} else {
		b = backoff.NewExponentialBackOff()
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, c.MaxRetries), ctx)
}

func retryable(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// zipName returns the file name of a zip attachment, or "" if the
// response does not carry one.
func zipName(h http.Header) string {
	_, params, err := mime.ParseMediaType(h.Get("Content-Disposition"))
	if err != nil {
		return ""
	}
	name := filepath.Base(params["filename"])
	if !strings.HasSuffix(strings.ToLower(name), ".zip") {
		return ""
	}
	return name
}

// Fetch requests url and saves the zip archive in the response to dir,
// returning the path of the saved file. Transport errors and 429 or 5xx
// responses are retried with exponential backoff. ErrNoMoreResults is
// returned if the response has no zip attachment.
func (c *Client) Fetch(ctx context.Context, url, dir string) (string, error) {
	var path string
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.HTTP.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			err := &StatusError{URL: redact(url), StatusCode: resp.StatusCode}
			if retryable(resp.StatusCode) {
				return err
			}
			return backoff.Permanent(err)
		}
		name := zipName(resp.Header)
		if name == "" {
			return backoff.Permanent(ErrNoMoreResults)
		}
		path = filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("egi: creating %s: %w", path, err))
		}
		if _, err := io.Copy(f, resp.Body); err != nil {
			f.Close()
			return fmt.Errorf("egi: downloading %s: %w", name, err)
		}
		return f.Close()
	}
	err := backoff.RetryNotify(op, c.backOff(ctx), func(err error, d time.Duration) {
		c.Log.WithError(err).Warnf("retrying in %v", d)
	})
	if err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			err = perm.Err
		}
		return "", err
	}
	return path, nil
}

// redact hides the token in a request URL.
func redact(url string) string {
	i := strings.Index(url, "token=")
	if i < 0 {
		return url
	}
	j := strings.IndexByte(url[i:], '&')
	if j < 0 {
		return url[:i] + "token=REDACTED"
	}
	return url[:i] + "token=REDACTED" + url[i+j:]
}

// Download retrieves every page of results for req and extracts the
// HDF5 granules into dest, which may be a local directory or a blob
// storage URL (file://, s3:// or gs://). It returns the names of the
// extracted granules, as paths or URLs under dest.
func (c *Client) Download(ctx context.Context, req *Request, dest string) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if c.DryRun {
		_, err := fmt.Fprintln(c.Out, req.URL(1))
		return nil, err
	}

	dir := dest
	if IsBlob(dest) {
		tmp, err := os.MkdirTemp("", "atltools")
		if err != nil {
			return nil, fmt.Errorf("egi: %w", err)
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	} else if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("egi: creating %s: %w", dir, err)
	}

	var granules []string
	for page := 1; ; page++ {
		log := c.Log.WithField("page", page)
		log.WithField("url", redact(req.URL(page))).Debug("requesting")
		zipFile, err := c.Fetch(ctx, req.URL(page), dir)
		if errors.Is(err, ErrNoMoreResults) {
			break
		} else if err != nil {
			return granules, err
		}
		files, err := Unzip(zipFile, dir)
		if err != nil {
			return granules, err
		}
		if err := os.Remove(zipFile); err != nil {
			return granules, fmt.Errorf("egi: %w", err)
		}
		log.Infof("extracted %d granules from %s", len(files), filepath.Base(zipFile))
		granules = append(granules, files...)
	}
	if len(granules) == 0 {
		c.Log.Warn("no granules matched the query")
	}

	if IsBlob(dest) {
		if err := Upload(ctx, dir, granules, dest); err != nil {
			return nil, err
		}
		for i, g := range granules {
			granules[i] = strings.TrimSuffix(dest, "/") + "/" + filepath.Base(g)
		}
	}
	return granules, nil
}
