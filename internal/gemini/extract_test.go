package gemini

import (
	"errors"
	"testing"
)

func TestExtractObject_PlainJSON(t *testing.T) {
	got, err := ExtractObject(`{"summary": "short"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"summary": "short"}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractObject_WrappedInProse(t *testing.T) {
	response := `Sure! Here is the analysis you asked for:

{"summary": "a", "keywords": ["b"], "talking_points": ["c"]}

Let me know if you need anything else.`
	got, err := ExtractObject(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"summary": "a", "keywords": ["b"], "talking_points": ["c"]}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractObject_StripsCodeFences(t *testing.T) {
	response := "```json\n{\"summary\": \"fenced\"}\n```"
	got, err := ExtractObject(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"summary": "fenced"}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractObject_BracesInsideStrings(t *testing.T) {
	response := `{"summary": "uses {braces} and \"quotes\" inside"}`
	got, err := ExtractObject(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != response {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractObject_SkipsInvalidCandidate(t *testing.T) {
	// The first opening brace starts an unclosed fragment; the scanner must
	// move on and find the real object after it.
	response := `broken {not json at all... then the real one: {"summary": "ok"}`
	got, err := ExtractObject(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"summary": "ok"}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractObject_NoJSON(t *testing.T) {
	if _, err := ExtractObject("I could not produce an analysis for that text."); !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestExtractArray_WrappedInProse(t *testing.T) {
	response := `Here are your questions:
[{"question": "q", "options": ["a","b","c","d"], "correct_answer": "a", "explanation": "e"}]
Good luck!`
	got, err := ExtractArray(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != '[' || got[len(got)-1] != ']' {
		t.Fatalf("expected array extraction, got %q", got)
	}
}

func TestExtractArray_NoJSON(t *testing.T) {
	if _, err := ExtractArray("no list here"); !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestParseAnalysis(t *testing.T) {
	response := `Analysis below.
{"summary": "Rates held steady.", "keywords": ["rates", "policy"], "talking_points": ["Inflation cooling", "Cuts unlikely"]}`
	a, err := parseAnalysis(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Summary != "Rates held steady." || len(a.Keywords) != 2 || len(a.TalkingPoints) != 2 {
		t.Fatalf("analysis not parsed: %+v", a)
	}
}

func TestParseAnalysis_MissingFields(t *testing.T) {
	tests := []string{
		`{"summary": "", "keywords": ["k"], "talking_points": ["t"]}`,
		`{"summary": "s", "keywords": [], "talking_points": ["t"]}`,
		`{"summary": "s", "keywords": ["k"], "talking_points": []}`,
		`{"totally": "unrelated"}`,
	}
	for _, resp := range tests {
		if _, err := parseAnalysis(resp); !errors.Is(err, ErrBadShape) {
			t.Errorf("response %q: expected ErrBadShape, got %v", resp, err)
		}
	}
}

func TestParseQuizQuestions(t *testing.T) {
	response := `[
		{"question": "Q1?", "options": ["A", "B", "C", "D"], "correct_answer": "B", "explanation": "because"},
		{"question": "Q2?", "options": ["A", "B", "C", "D"], "correct_answer": "D", "explanation": ""}
	]`
	qs, err := parseQuizQuestions(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].CorrectAnswer != "B" || len(qs[1].Options) != 4 {
		t.Fatalf("questions not parsed: %+v", qs)
	}
}

func TestParseQuizQuestions_SchemaViolations(t *testing.T) {
	tests := []string{
		`[{"question": "", "options": ["A","B","C","D"], "correct_answer": "A"}]`,
		`[{"question": "Q?", "options": ["A","B","C"], "correct_answer": "A"}]`,
		`[{"question": "Q?", "options": ["A","B","C","D"], "correct_answer": ""}]`,
		`[]`,
	}
	for _, resp := range tests {
		if _, err := parseQuizQuestions(resp); !errors.Is(err, ErrBadShape) {
			t.Errorf("response %q: expected ErrBadShape, got %v", resp, err)
		}
	}
}

func TestParseQuizQuestions_NoArray(t *testing.T) {
	if _, err := parseQuizQuestions("sorry, I cannot write a quiz"); !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}
