package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrChatNotConfigured = errors.New("chatbot is not configured")

// ChatbotService ส่งข้อความผู้ใช้ไปหา Gemini ตรงๆ แล้วคืนคำตอบตามที่ได้มา
// ไม่เก็บประวัติ ไม่แต่งข้อความ
type ChatbotService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewChatbotService(apiKey, model string) *ChatbotService {
	return &ChatbotService{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}
type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}
type geminiPart struct {
	Text string `json:"text"`
}
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (s *ChatbotService) SendMessage(ctx context.Context, message string) (string, error) {
	if s.apiKey == "" {
		return "", ErrChatNotConfigured
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: message}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat service unavailable: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat service error: status %d", res.StatusCode)
	}

	var out geminiResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("chat service error: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("chat service returned no reply")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
