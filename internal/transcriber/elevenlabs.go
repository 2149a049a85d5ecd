package transcriber

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// TranscriptionError reports a non-success response from the speech-to-text
// service. The body is kept verbatim for diagnosis; the run is not retried.
type TranscriptionError struct {
	StatusCode int
	Body       string
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed: status %d: %s", e.StatusCode, e.Body)
}

// Transcribe uploads the media file to the speech-to-text endpoint requesting
// SRT output and returns the response body verbatim.
func (t *implTranscriber) Transcribe(ctx context.Context, videoPath string) (string, error) {
	f, err := os.Open(videoPath)
	if err != nil {
		return "", fmt.Errorf("open video: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := createVideoFormFile(mw, filepath.Base(videoPath))
	if err != nil {
		return "", fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return "", fmt.Errorf("read video: %w", err)
	}
	if err := mw.WriteField("output_format", "srt"); err != nil {
		return "", fmt.Errorf("build upload: %w", err)
	}
	if err := mw.WriteField("model_id", t.modelID); err != nil {
		return "", fmt.Errorf("build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build upload: %w", err)
	}

	url := t.baseURL + "/v1/speech-to-text"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("xi-api-key", t.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	t.logger.Debug(ctx, "Uploading %s to %s (model %s)", videoPath, url, t.modelID)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("speech-to-text request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &TranscriptionError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return string(respBody), nil
}

// createVideoFormFile is CreateFormFile with a video/mp4 content-type hint
// instead of the default application/octet-stream.
func createVideoFormFile(mw *multipart.Writer, filename string) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	h.Set("Content-Type", "video/mp4")
	return mw.CreatePart(h)
}

// escapeQuotes mirrors mime/multipart's quoting so a filename containing
// quotes or backslashes cannot corrupt the part header.
func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
