// Package media uploads task images to the external media host.
//
// The host accepts a multipart POST with the image file and an unsigned
// preset identifier, and answers with a publicly reachable URL that is stored
// on the task as imageUrl.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Uploader posts images to the configured media host.
type Uploader struct {
	URL    string
	Preset string

	http *http.Client
}

// New creates an uploader for the given host URL and preset.
func New(uploadURL, preset string) *Uploader {
	return &Uploader{
		URL:    uploadURL,
		Preset: preset,
		http:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Upload sends the file at path and returns the hosted URL.
func (u *Uploader) Upload(ctx context.Context, path string) (string, error) {
	if u.URL == "" {
		return "", fmt.Errorf("media: upload URL is not configured")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("media: open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("media: read image: %w", err)
	}
	if err := mw.WriteField("upload_preset", u.Preset); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.URL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("media: host returned %d", resp.StatusCode)
	}

	var payload struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("media: invalid host response: %w", err)
	}
	if payload.SecureURL != "" {
		return payload.SecureURL, nil
	}
	if payload.URL != "" {
		return payload.URL, nil
	}
	return "", fmt.Errorf("media: host response has no url")
}
