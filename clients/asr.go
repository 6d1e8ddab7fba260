package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// --- ASR (/transcribe) ---
type WordStamp struct {
	Word        string  `json:"word"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Probability float64 `json:"probability"`
}
type TransSeg struct {
	Start float64     `json:"start"`
	End   float64     `json:"end"`
	Text  string      `json:"text"`
	Words []WordStamp `json:"words"`
}
type ASRResp struct {
	Text     string     `json:"text"`
	Segments []TransSeg `json:"segments"`
	Language string     `json:"language"`
}

// Transcript is the full text, rebuilt from segments when the service omits it.
func (r *ASRResp) Transcript() string {
	if t := strings.TrimSpace(r.Text); t != "" {
		return t
	}
	parts := make([]string, 0, len(r.Segments))
	for _, s := range r.Segments {
		if t := strings.TrimSpace(s.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// Empty reports whether the service recognized nothing at all.
func (r *ASRResp) Empty() bool {
	return r == nil || (strings.TrimSpace(r.Text) == "" && len(r.Segments) == 0)
}

// ASR is the speech-to-text service client.
type ASR struct {
	http     *HTTP
	url      string
	language string
}

func NewASR(h *HTTP, url, language string) *ASR {
	return &ASR{http: h, url: strings.TrimRight(url, "/"), language: language}
}

func (a *ASR) Transcribe(ctx context.Context, filename string, audio io.Reader) (*ASRResp, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(fw, audio); err != nil {
		return nil, err
	}
	if a.language != "" {
		if err = w.WriteField("language", a.language); err != nil {
			return nil, err
		}
	}
	if err = w.WriteField("word_timestamps", "true"); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url+"/transcribe", &b)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := a.http.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		const maxErr = 4096
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErr))
		return nil, fmt.Errorf("asr %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var out ASRResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("asr decode: %w", err)
	}
	return &out, nil
}

// Ping checks that the service answers on /health.
func (a *ASR) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := a.http.c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("asr health %s", resp.Status)
	}
	return nil
}
