// Package assistant backs the site's AI panels with the Gemini API: the Dazu
// guide chatbot, the live Q&A panel, the Prompt Center and the Image Studio.
package assistant

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

const (
	textModel  = "gemini-2.5-flash"
	imageModel = "imagen-4.0-generate-001"
)

type Service struct {
	client *genai.Client

	mu       sync.Mutex
	sessions map[string]*genai.Chat
}

var GlobalService *Service

func InitService(ctx context.Context, apiKey string) error {
	service, err := NewService(ctx, apiKey)
	if err != nil {
		return err
	}
	GlobalService = service
	return nil
}

func NewService(ctx context.Context, apiKey string) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create Gemini client: %v", err)
	}

	return &Service{
		client:   client,
		sessions: make(map[string]*genai.Chat),
	}, nil
}

func guideConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: guideInstruction}},
		},
	}
}

// Chat sends one message on a conversational guide session. An empty or
// unknown session id starts a fresh session. A failed turn leaves the
// session in place so the next attempt reuses it.
func (s *Service) Chat(ctx context.Context, sessionID, message string) (string, string, error) {
	s.mu.Lock()
	chat, ok := s.sessions[sessionID]
	if !ok {
		sessionID = uuid.NewString()
		var err error
		chat, err = s.client.Chats.Create(ctx, textModel, guideConfig(), nil)
		if err != nil {
			s.mu.Unlock()
			return "", "", fmt.Errorf("could not create chat session: %v", err)
		}
		s.sessions[sessionID] = chat
	}
	s.mu.Unlock()

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return sessionID, "", fmt.Errorf("chat request failed: %v", err)
	}
	return sessionID, resp.Text(), nil
}

// Ask answers a single question with the guide profile, without any session
// state. This backs the live Q&A panel.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, textModel, genai.Text(question), guideConfig())
	if err != nil {
		return "", fmt.Errorf("generation request failed: %v", err)
	}
	return resp.Text(), nil
}

// GeneratePrompt expands a rough idea into a detailed, ready-to-use prompt.
func (s *Service) GeneratePrompt(ctx context.Context, idea string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: promptInstruction}},
		},
	}
	resp, err := s.client.Models.GenerateContent(ctx, textModel, genai.Text(idea), config)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %v", err)
	}
	return resp.Text(), nil
}

// GenerateImage produces one square JPEG for the Image Studio panel and
// returns the raw image bytes with their MIME type.
func (s *Service) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	resp, err := s.client.Models.GenerateImages(ctx, imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
		AspectRatio:    "1:1",
	})
	if err != nil {
		return nil, "", fmt.Errorf("image request failed: %v", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, "", fmt.Errorf("no image returned")
	}

	image := resp.GeneratedImages[0].Image
	return image.ImageBytes, image.MIMEType, nil
}
