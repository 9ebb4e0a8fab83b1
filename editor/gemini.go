package editor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash-image-preview"

// Gemini transforms images through the Gemini image model.
type Gemini struct {
	client *genai.Client
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransform, err)
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) Transform(ctx context.Context, data []byte, editType EditType, intensity int) ([]byte, error) {
	if !editType.Valid() {
		return nil, fmt.Errorf("%w: unsupported edit type %q", ErrTransform, editType)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, "image/png"),
			genai.NewPartFromText(Prompt(editType)),
		}, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, &genai.GenerateContentConfig{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransform, err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: no content in response", ErrTransform)
	}

	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}

	return nil, fmt.Errorf("%w: no image data found in response", ErrTransform)
}
