package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"hearthly-api/internal/apperror"
	"hearthly-api/internal/language"
	"hearthly-api/internal/logs"

	"go.uber.org/zap"
)

const serviceTranscription = "transcription"

type Transcriber struct {
	Client *Client
	Model  string
}

type transcriptionResponse struct {
	Text *string `json:"text"`
}

// Transcribe uploads a WAV clip and returns its transcript. The language is
// checked before anything is sent.
func (t *Transcriber) Transcribe(ctx context.Context, wav []byte, lang language.Code) (string, error) {
	if _, err := language.Parse(string(lang)); err != nil {
		return "", err
	}

	body, contentType, err := t.multipartBody(wav, lang)
	if err != nil {
		return "", fmt.Errorf("build transcription form: %w", err)
	}

	ctx, cancel := t.Client.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Client.BaseURL+"/v1/audio/transcriptions", body)
	if err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	raw, err := t.Client.do(serviceTranscription, req)
	if err != nil {
		return "", err
	}

	var out transcriptionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", apperror.Malformed(serviceTranscription, "response is not json")
	}
	if out.Text == nil {
		return "", apperror.Malformed(serviceTranscription, "no text in response")
	}

	logs.FromContext(ctx).Debug("transcription complete", zap.Int("chars", len(*out.Text)))
	return *out.Text, nil
}

func (t *Transcriber) multipartBody(wav []byte, lang language.Code) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	if err := w.WriteField("model", t.Model); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("language", string(lang)); err != nil {
		return nil, "", err
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="audio.wav"`)
	h.Set("Content-Type", "audio/wav")
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(wav); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}
