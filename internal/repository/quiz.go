package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/infra/postgres"
)

var ErrSessionNotActive = errors.New("quiz session is not active")

// psql builds PostgreSQL statements with $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// QuizRepository provides access to quiz session and answer data in the database.
type QuizRepository struct {
	db postgres.Querier
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(db postgres.Querier) *QuizRepository {
	return &QuizRepository{db: db}
}

// CreateSession stores a new quiz session and sets its ID.
func (r *QuizRepository) CreateSession(ctx context.Context, session *entities.QuizSession) error {
	query := `
		INSERT INTO quiz_sessions (
			user_id, quiz_type, groups, total_questions, session_status, started_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query,
		session.UserID,
		string(session.QuizType),
		groupsOrEmpty(session.Groups),
		session.TotalQuestions,
		session.SessionStatus,
		session.StartedAt,
	).Scan(&session.ID)
	if err != nil {
		return fmt.Errorf("create quiz session: %w", err)
	}

	return nil
}

// SaveAnswer stores the answer to one question of a session.
func (r *QuizRepository) SaveAnswer(ctx context.Context, answer *entities.QuizAnswer) error {
	query := `
		INSERT INTO quiz_answers (
			session_id, question_order, prompt, user_answer, correct_answer, is_correct, answered_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id, question_order) DO NOTHING
		RETURNING id
	`

	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query,
		answer.SessionID,
		answer.QuestionOrder,
		answer.Prompt,
		answer.UserAnswer,
		answer.CorrectAnswer,
		answer.IsCorrect,
		answer.AnsweredAt,
	).Scan(&answer.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil // already answered
		}
		return fmt.Errorf("save answer: %w", err)
	}

	return nil
}

// CompleteSession stores the final score of an active session.
func (r *QuizRepository) CompleteSession(ctx context.Context, session *entities.QuizSession) error {
	query := `
		UPDATE quiz_sessions
		SET correct_answers = $1,
		    session_status = $2,
		    completed_at = $3
		WHERE id = $4 AND session_status = 'active'
	`

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query,
		session.CorrectAnswers,
		session.SessionStatus,
		session.CompletedAt,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotActive
	}

	return nil
}

// AbandonActiveSessions marks unfinished sessions of the user as abandoned.
func (r *QuizRepository) AbandonActiveSessions(ctx context.Context, userID int64) error {
	query := `
		UPDATE quiz_sessions
		SET session_status = 'abandoned'
		WHERE user_id = $1 AND session_status = 'active'
	`

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("abandon old sessions: %w", err)
	}

	return nil
}

// RecentSessions lists the latest completed sessions, optionally of one quiz type.
func (r *QuizRepository) RecentSessions(ctx context.Context, userID int64, quizType entities.QuizType, limit uint64) ([]entities.SessionSummary, error) {
	builder := psql.
		Select("id", "quiz_type", "total_questions", "correct_answers", "completed_at").
		From("quiz_sessions").
		Where(squirrel.Eq{"user_id": userID, "session_status": entities.SessionStatusCompleted}).
		OrderBy("completed_at DESC").
		Limit(limit)
	if quizType != "" {
		builder = builder.Where(squirrel.Eq{"quiz_type": string(quizType)})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent sessions query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}
	defer rows.Close()

	var out []entities.SessionSummary
	for rows.Next() {
		var (
			s        entities.SessionSummary
			quizType string
		)
		if err := rows.Scan(&s.ID, &quizType, &s.Total, &s.Correct, &s.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.QuizType = entities.QuizType(quizType)
		out = append(out, s)
	}

	return out, rows.Err()
}
