package blobstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"employee-admin/internal/models"
)

// Transform is the resize/crop policy applied by the provider, passed
// along with the upload rather than enforced client-side.
type Transform struct {
	Width   int
	Height  int
	Gravity string
	Crop    string
}

// ProfileTransform is the fixed policy for employee profile images.
var ProfileTransform = Transform{Width: 300, Height: 300, Gravity: "face", Crop: "fill"}

// Client uploads image buffers to the external hosting provider and
// returns the provider's opaque public id.
type Client struct {
	UploadURL string
	APIKey    string
	HTTP      *http.Client
}

func New(uploadURL, apiKey string) *Client {
	return &Client{
		UploadURL: uploadURL,
		APIKey:    apiKey,
		HTTP: &http.Client{
			Timeout: 30 * time.Second, // per-request
		},
	}
}

type uploadResponse struct {
	PublicID string `json:"public_id"`
}

// Upload POSTs the file as a multipart form. Any transport failure or
// non-2xx provider response surfaces models.ErrUploadFailed; there are
// no retries, the caller resubmits.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader, t Transform) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("profile-image", filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
	}
	fields := map[string]string{
		"width":   strconv.Itoa(t.Width),
		"height":  strconv.Itoa(t.Height),
		"gravity": t.Gravity,
		"crop":    t.Crop,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return "", fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.UploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: provider status %d", models.ErrUploadFailed, resp.StatusCode)
	}

	var out uploadResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
	}
	if out.PublicID == "" {
		return "", fmt.Errorf("%w: provider returned no public id", models.ErrUploadFailed)
	}
	return out.PublicID, nil
}
