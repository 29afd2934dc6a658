// Package feedback files user feedback as a labeled issue on the project's
// GitHub repository.
package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Feedback is one user submission.
type Feedback struct {
	Rating       int    // 1..5
	TopicRequest string
	Message      string
}

// Submitter posts feedback issues. One POST per submission; HTTP 201 is the
// only success outcome and there is no retry.
type Submitter struct {
	token   string
	owner   string
	repo    string
	baseURL string
	client  *http.Client
}

func NewSubmitter(token, owner, repo string) *Submitter {
	return &Submitter{
		token:   token,
		owner:   owner,
		repo:    repo,
		baseURL: "https://api.github.com",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type issuePayload struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

// Submit files the issue.
func (s *Submitter) Submit(ctx context.Context, fb Feedback) error {
	if fb.Rating < 1 || fb.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", fb.Rating)
	}

	payload := issuePayload{
		Title: fmt.Sprintf("Feedback: %s (%d/5)", fb.TopicRequest, fb.Rating),
		Body: fmt.Sprintf(`### User Feedback
**Rating:** %d/5

### Comments
%s

### Topic Request
%s
`, fb.Rating, fb.Message, fb.TopicRequest),
		Labels: []string{"feedback"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal issue: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/issues", s.baseURL, s.owner, s.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "token "+s.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit feedback: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("feedback rejected: status %d", resp.StatusCode)
	}
	return nil
}

// SetBaseURL points the submitter at a different API root. Used by tests.
func (s *Submitter) SetBaseURL(u string) { s.baseURL = u }
