package entities

// QuizPhase is the display phase of a running quiz.
type QuizPhase int

const (
	QuizInProgress QuizPhase = iota
	QuizFinished
	QuizReviewing
)

// QuizRun is the in-memory state of a quiz being answered.
// Every transition returns a new value and leaves the receiver untouched.
type QuizRun struct {
	SessionID   int64
	QuizType    QuizType
	Questions   []QuizQuestion
	Answers     []*string // nil until the question is answered
	Current     int
	Phase       QuizPhase
	ReviewIndex int
}

// NewQuizRun starts a quiz over the given questions.
func NewQuizRun(sessionID int64, quizType QuizType, questions []QuizQuestion) QuizRun {
	phase := QuizInProgress
	if len(questions) == 0 {
		phase = QuizFinished
	}
	return QuizRun{
		SessionID:   sessionID,
		QuizType:    quizType,
		Questions:   questions,
		Answers:     make([]*string, len(questions)),
		Phase:       phase,
		ReviewIndex: -1,
	}
}

// Question returns the question currently shown.
func (r QuizRun) Question() (QuizQuestion, bool) {
	if r.Current < 0 || r.Current >= len(r.Questions) {
		return QuizQuestion{}, false
	}
	return r.Questions[r.Current], true
}

// Answer records option for the current question and moves on.
// After the last question the run is finished.
func (r QuizRun) Answer(option string) (QuizRun, error) {
	if r.Phase != QuizInProgress {
		return r, ErrQuizFinished
	}
	if _, ok := r.Question(); !ok {
		return r, ErrQuestionNotFound
	}

	next := r.clone()
	opt := option
	next.Answers[r.Current] = &opt

	if r.Current+1 < len(r.Questions) {
		next.Current = r.Current + 1
	} else {
		next.Phase = QuizFinished
	}
	return next, nil
}

// Review switches to a read-only view of a single question.
func (r QuizRun) Review(idx int) (QuizRun, error) {
	if r.Phase == QuizInProgress {
		return r, ErrQuizNotFinished
	}
	if idx < 0 || idx >= len(r.Questions) {
		return r, ErrQuestionNotFound
	}

	next := r.clone()
	next.Phase = QuizReviewing
	next.ReviewIndex = idx
	next.Current = idx
	return next, nil
}

// BackToResults leaves the review view.
func (r QuizRun) BackToResults() QuizRun {
	if r.Phase != QuizReviewing {
		return r
	}
	next := r.clone()
	next.Phase = QuizFinished
	next.ReviewIndex = -1
	return next
}

// IsCorrect reports whether question idx was answered correctly.
func (r QuizRun) IsCorrect(idx int) bool {
	if idx < 0 || idx >= len(r.Answers) || r.Answers[idx] == nil {
		return false
	}
	return *r.Answers[idx] == r.Questions[idx].Correct
}

// Score counts correct answers.
func (r QuizRun) Score() int {
	score := 0
	for i := range r.Questions {
		if r.IsCorrect(i) {
			score++
		}
	}
	return score
}

// AnswerText returns the answer given to question idx, if any.
func (r QuizRun) AnswerText(idx int) (string, bool) {
	if idx < 0 || idx >= len(r.Answers) || r.Answers[idx] == nil {
		return "", false
	}
	return *r.Answers[idx], true
}

func (r QuizRun) clone() QuizRun {
	out := r
	out.Answers = append([]*string(nil), r.Answers...)
	return out
}
