package lesson

import (
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/lesson"
	"classportal/internal/core/domain/user"
	"classportal/internal/db"
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v4"
)

const lessonColumns = `id, title, description, content, created_by, created_at`

type PgxLessonRepository struct {
	db db.Queryer
}

func NewPgxRepository(db db.Queryer) *PgxLessonRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxLessonRepository{db: db}
}

func (r *PgxLessonRepository) Create(
	ctx context.Context,
	input lesson.CreateInput,
) (l lesson.Lesson, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO lesson (title, description, content, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+lessonColumns,
		input.Title,
		input.Description,
		input.Content,
		int64(input.CreatedBy),
		input.CreatedAt,
	)
	return decodeLesson(row)
}

func (r *PgxLessonRepository) GetByID(
	ctx context.Context,
	id lesson.ID,
) (l lesson.Lesson, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+lessonColumns+` FROM lesson WHERE id = $1`,
		int64(id),
	)
	l, err = decodeLesson(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return l, lesson.ErrLessonDoesNotExist
	}
	return l, err
}

func (r *PgxLessonRepository) Search(
	ctx context.Context,
	options lesson.SearchOptions,
) ([]lesson.Lesson, error) {
	createdBy := sql.NullInt64{
		Int64: int64(options.CreatedBy.Value),
		Valid: options.CreatedBy.IsPresent,
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT `+lessonColumns+` FROM lesson
		WHERE $1::bigint IS NULL OR created_by = $1
		ORDER BY created_at DESC, id DESC`,
		createdBy,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lessons := make([]lesson.Lesson, 0)
	for rows.Next() {
		l, err := decodeLesson(rows)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

func (r *PgxLessonRepository) Update(
	ctx context.Context,
	input lesson.UpdateInput,
) (l lesson.Lesson, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE lesson SET
			title = CASE WHEN $2 THEN $3 ELSE title END,
			description = CASE WHEN $4 THEN $5 ELSE description END,
			content = CASE WHEN $6 THEN $7 ELSE content END
		WHERE id = $1
		RETURNING `+lessonColumns,
		int64(input.ID),
		input.DoTitleUpdate,
		input.Title,
		input.DoDescriptionUpdate,
		input.Description,
		input.DoContentUpdate,
		input.Content,
	)
	l, err = decodeLesson(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return l, lesson.ErrLessonDoesNotExist
	}
	return l, err
}

func (r *PgxLessonRepository) Delete(ctx context.Context, id lesson.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM lesson WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return lesson.ErrLessonDoesNotExist
	}
	return nil
}

func decodeLesson(row pgx.Row) (l lesson.Lesson, err error) {
	var (
		id        int64
		createdBy int64
	)
	err = row.Scan(&id, &l.Title, &l.Description, &l.Content, &createdBy, &l.CreatedAt)
	if err != nil {
		return l, err
	}
	l.ID = lesson.ID(id)
	l.CreatedBy = user.ID(createdBy)
	return l, nil
}
