// Package gemini is the AI requester: it builds prompts from article text
// and parses model responses into structured records. The model's output is
// free-form text that usually, but not always, contains the JSON it was
// asked for; parsing is best-effort extraction with an explicit failure
// path, never a silent default.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"newsiq/internal/logger"
	"newsiq/internal/metrics"
	"newsiq/internal/quiz"
	"newsiq/internal/ratelimit"
	"newsiq/internal/retry"
)

type Client struct {
	client *genai.Client
	model  string
	budget *ratelimit.AIBudget
	retry  retry.RetryConfig
}

// Analysis is the deep-dive result for one article.
type Analysis struct {
	Summary       string   `json:"summary"`
	Keywords      []string `json:"keywords"`
	TalkingPoints []string `json:"talking_points"`
}

// ErrBudgetExhausted means the daily AI request budget is spent.
var ErrBudgetExhausted = fmt.Errorf("AI request budget exhausted")

func NewClient(ctx context.Context, apiKey, model string, budget *ratelimit.AIBudget, retryCfg retry.RetryConfig) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
		budget: budget,
		retry:  retryCfg,
	}, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Analyze asks the model for an executive summary, key terms, and talking
// points over the given article text.
func (c *Client) Analyze(ctx context.Context, articleText string) (*Analysis, error) {
	prompt := fmt.Sprintf(`Analyze this news article for a Product Management interview.
Return strictly valid JSON.
Format:
{
    "keywords": ["keyword1", "keyword2", "keyword3"],
    "talking_points": ["Point 1", "Point 2", "Point 3"],
    "summary": "One sentence executive summary."
}
Article: %s`, articleText)

	response, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseAnalysis(response)
}

func parseAnalysis(response string) (*Analysis, error) {
	raw, err := ExtractObject(response)
	if err != nil {
		logger.Warn("analysis response had no JSON object", "response_len", len(response))
		return nil, err
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, err)
	}
	if analysis.Summary == "" || len(analysis.Keywords) == 0 || len(analysis.TalkingPoints) == 0 {
		return nil, fmt.Errorf("%w: analysis missing required fields", ErrBadShape)
	}
	return &analysis, nil
}

// GenerateQuiz asks the model for numQuestions multiple-choice questions
// over the study-set text. Question count policy lives with the caller; this
// requester sends exactly what it is told.
func (c *Client) GenerateQuiz(ctx context.Context, text string, numQuestions int) ([]quiz.Question, error) {
	if numQuestions < 1 {
		return nil, fmt.Errorf("question count must be at least 1, got %d", numQuestions)
	}

	prompt := fmt.Sprintf(`Create %d difficult multiple-choice questions based on this text.
Return strictly valid JSON array.

IMPORTANT: The 'correct_answer' field must match the EXACT text of the option.

Format:
[
    {
        "question": "Question?",
        "options": ["Option A", "Option B", "Option C", "Option D"],
        "correct_answer": "Option A",
        "explanation": "Why A is correct."
    }
]

Text: %s`, numQuestions, text)

	response, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseQuizQuestions(response)
}

func parseQuizQuestions(response string) ([]quiz.Question, error) {
	raw, err := ExtractArray(response)
	if err != nil {
		logger.Warn("quiz response had no JSON array", "response_len", len(response))
		return nil, err
	}

	var questions []quiz.Question
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: empty question list", ErrBadShape)
	}
	for i, q := range questions {
		// The correct answer's membership in options is the model's
		// contract obligation and deliberately not checked here.
		if q.Question == "" || len(q.Options) != 4 || q.CorrectAnswer == "" {
			return nil, fmt.Errorf("%w: question %d incomplete", ErrBadShape, i+1)
		}
	}
	return questions, nil
}

// generate runs one prompt through the model, spending budget and retrying
// transient failures.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.budget != nil && !c.budget.Allow() {
		return "", ErrBudgetExhausted
	}
	metrics.Global.IncrementGeminiRequests()

	model := c.client.GenerativeModel(c.model)

	var response string
	err := retry.WithRetry(ctx, c.retry, func() error {
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return fmt.Errorf("failed to generate content: %w", err)
		}
		if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
			return fmt.Errorf("no response from Gemini")
		}
		response = fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
		return nil
	})
	if err != nil {
		metrics.Global.IncrementGeminiFailures()
		return "", err
	}
	return response, nil
}
