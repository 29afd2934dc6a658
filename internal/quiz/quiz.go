// Package quiz holds the quiz question model, the question-count policy,
// and session grading.
package quiz

// Question is one multiple-choice question produced by the AI requester.
// CorrectAnswer is contractually the exact text of one of the four Options;
// this package does not verify that. When the contract is broken, no user
// answer can ever grade as correct for that question, and that stays the
// behavior: silently scoring it wrong beats guessing which option was meant.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuestionCount is the fixed question-count policy: a single-article study
// set gets a 10-question deep quiz, larger sets get 5 questions per article.
func QuestionCount(articleCount int) int {
	if articleCount <= 0 {
		return 0
	}
	if articleCount == 1 {
		return 10
	}
	return articleCount * 5
}

// Session is one run through a generated quiz. Questions are read-only for
// the session's lifetime; a new quiz replaces the session wholesale.
type Session struct {
	questions []Question
	answers   map[int]string
	submitted bool
}

// NewSession starts a session over the given questions. An empty question
// list yields no session: an empty quiz must never be rendered as
// in-progress.
func NewSession(questions []Question) *Session {
	if len(questions) == 0 {
		return nil
	}
	return &Session{
		questions: questions,
		answers:   make(map[int]string),
	}
}

// Questions returns the questions in order.
func (s *Session) Questions() []Question {
	return s.questions
}

// Answer records the user's choice for question idx. Out-of-range indexes
// are ignored.
func (s *Session) Answer(idx int, choice string) {
	if idx < 0 || idx >= len(s.questions) {
		return
	}
	s.answers[idx] = choice
}

// Verdict is the graded outcome of one question.
type Verdict struct {
	Question    Question
	UserAnswer  string
	Correct     bool
	WasAnswered bool
}

// Result is the graded outcome of a whole session.
type Result struct {
	Verdicts []Verdict
	Score    int
	Total    int
}

// Percent returns the score as a 0-100 percentage.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total) * 100
}

// Grade scores the session: an answer is correct only when it equals the
// question's CorrectAnswer exactly.
func (s *Session) Grade() Result {
	res := Result{Total: len(s.questions)}
	for i, q := range s.questions {
		ans, ok := s.answers[i]
		v := Verdict{
			Question:    q,
			UserAnswer:  ans,
			WasAnswered: ok,
			Correct:     ok && ans == q.CorrectAnswer,
		}
		if v.Correct {
			res.Score++
		}
		res.Verdicts = append(res.Verdicts, v)
	}
	s.submitted = true
	return res
}

// Submitted reports whether Grade has been called.
func (s *Session) Submitted() bool {
	return s.submitted
}
