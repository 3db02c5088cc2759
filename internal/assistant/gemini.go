package assistant

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

const systemInstruction = "You are a helpful and expert HR assistant. Provide concise, accurate, and professional advice on human resources topics. You can draft documents, answer questions about best practices, and help with HR-related queries. Format your responses clearly, using markdown for lists, bolding, and italics where appropriate."

// Gemini streams chat completions from the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string

	mu   sync.Mutex
	chat *genai.Chat
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// ensureChat creates the conversation once. Calling it again reuses the
// existing chat, so prior turns stay in context.
func (g *Gemini) ensureChat(ctx context.Context) (*genai.Chat, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.chat != nil {
		return g.chat, nil
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}
	chat, err := g.client.Chats.Create(ctx, g.model, config, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}
	g.chat = chat
	return chat, nil
}

func (g *Gemini) StreamMessage(ctx context.Context, message string, onChunk func(string)) error {
	chat, err := g.ensureChat(ctx)
	if err != nil {
		return err
	}

	for resp, err := range chat.SendMessageStream(ctx, genai.Part{Text: message}) {
		if err != nil {
			return fmt.Errorf("stream failed: %w", err)
		}
		if text := resp.Text(); text != "" {
			onChunk(text)
		}
	}
	return nil
}

// Summarize produces a short recruiter-facing summary of a resume.
func (g *Gemini) Summarize(ctx context.Context, resumeText string) (string, error) {
	prompt := fmt.Sprintf(`Summarize the following resume in two or three sentences for a recruiter. Focus on current role, seniority and standout skills. Return plain text only.

Resume:
"""
%s
"""`, resumeText)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate failed: %w", err)
	}
	return resp.Text(), nil
}
