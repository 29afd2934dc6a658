package quiz

import "testing"

func TestQuestionCount(t *testing.T) {
	tests := []struct {
		articles, want int
	}{
		{0, 0},
		{-1, 0},
		{1, 10},
		{2, 10},
		{3, 15},
		{5, 25},
	}
	for _, tt := range tests {
		if got := QuestionCount(tt.articles); got != tt.want {
			t.Errorf("QuestionCount(%d) = %d, want %d", tt.articles, got, tt.want)
		}
	}
}

func TestNewSession_EmptyQuestions(t *testing.T) {
	if s := NewSession(nil); s != nil {
		t.Fatal("expected nil session for empty question list")
	}
	if s := NewSession([]Question{}); s != nil {
		t.Fatal("expected nil session for empty question list")
	}
}

func sampleQuestions() []Question {
	return []Question{
		{Question: "Q1?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B", Explanation: "because B"},
		{Question: "Q2?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "D"},
		{Question: "Q3?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A"},
	}
}

func TestSession_Grade(t *testing.T) {
	s := NewSession(sampleQuestions())
	s.Answer(0, "B")
	s.Answer(1, "A")
	// Q3 left unanswered.

	res := s.Grade()
	if res.Total != 3 || res.Score != 1 {
		t.Fatalf("expected score 1/3, got %d/%d", res.Score, res.Total)
	}
	if !res.Verdicts[0].Correct {
		t.Error("exact match must grade correct")
	}
	if res.Verdicts[1].Correct || !res.Verdicts[1].WasAnswered {
		t.Error("wrong answer must grade incorrect but answered")
	}
	if res.Verdicts[2].Correct || res.Verdicts[2].WasAnswered {
		t.Error("unanswered question must grade incorrect and unanswered")
	}
	if !s.Submitted() {
		t.Error("session must report submitted after grading")
	}
}

func TestSession_AnswerOutOfRangeIgnored(t *testing.T) {
	s := NewSession(sampleQuestions())
	s.Answer(-1, "A")
	s.Answer(99, "A")
	res := s.Grade()
	if res.Score != 0 {
		t.Fatalf("out-of-range answers must not score, got %d", res.Score)
	}
}

func TestSession_UnmatchableCorrectAnswer(t *testing.T) {
	// The model sometimes returns a correct_answer that is not among the
	// options. Every choice then grades wrong, never panics.
	qs := []Question{
		{Question: "Q?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "the letter A"},
	}
	for _, choice := range qs[0].Options {
		s := NewSession(qs)
		s.Answer(0, choice)
		if res := s.Grade(); res.Score != 0 {
			t.Fatalf("choice %q graded correct against unmatchable answer", choice)
		}
	}
}

func TestResult_Percent(t *testing.T) {
	if got := (Result{Score: 1, Total: 4}).Percent(); got != 25 {
		t.Errorf("Percent() = %v, want 25", got)
	}
	if got := (Result{}).Percent(); got != 0 {
		t.Errorf("empty result Percent() = %v, want 0", got)
	}
}
