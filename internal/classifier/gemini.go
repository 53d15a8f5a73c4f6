package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"rsharma/upi-tracker/internal/logging"
)

// Suggester proposes a category for a description when no rule matched.
// Implementations must return one of the given labels; anything else is
// treated as no suggestion by the classifier.
type Suggester interface {
	Suggest(ctx context.Context, description string, categories []string) (string, error)
}

// GeminiSuggester asks the Gemini API to pick a category for descriptions
// that no keyword rule recognized. It is only wired in when AI assistance is
// enabled in the configuration.
type GeminiSuggester struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiSuggester creates a suggester backed by the given model name.
func NewGeminiSuggester(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiSuggester{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

// Suggest asks the model to assign the description to exactly one of the
// given category labels.
func (g *GeminiSuggester) Suggest(ctx context.Context, description string, categories []string) (string, error) {
	prompt := fmt.Sprintf(`Categorize the following personal expense transaction:
Description: %s

Assign it to exactly one of the following categories:
%s

Respond with only the category name.`, description, strings.Join(categories, ", "))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from gemini API")
	}

	label := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	g.logger.WithField(logging.FieldCategory, label).Debug("Gemini suggested a category")
	return label, nil
}

// Close releases the underlying API client.
func (g *GeminiSuggester) Close() error {
	return g.client.Close()
}
