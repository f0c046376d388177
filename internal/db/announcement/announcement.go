package announcement

import (
	"classportal/internal/core/domain/announcement"
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/user"
	"classportal/internal/db"
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v4"
)

const announcementColumns = `id, title, content, created_by, created_at`

type PgxAnnouncementRepository struct {
	db db.Queryer
}

func NewPgxRepository(db db.Queryer) *PgxAnnouncementRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxAnnouncementRepository{db: db}
}

func (r *PgxAnnouncementRepository) Create(
	ctx context.Context,
	input announcement.CreateInput,
) (a announcement.Announcement, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO announcement (title, content, created_by, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING `+announcementColumns,
		input.Title,
		input.Content,
		int64(input.CreatedBy),
		input.CreatedAt,
	)
	return decodeAnnouncement(row)
}

func (r *PgxAnnouncementRepository) GetByID(
	ctx context.Context,
	id announcement.ID,
) (a announcement.Announcement, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+announcementColumns+` FROM announcement WHERE id = $1`,
		int64(id),
	)
	a, err = decodeAnnouncement(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, announcement.ErrAnnouncementDoesNotExist
	}
	return a, err
}

func (r *PgxAnnouncementRepository) Search(
	ctx context.Context,
	options announcement.SearchOptions,
) ([]announcement.Announcement, error) {
	createdBy := sql.NullInt64{
		Int64: int64(options.CreatedBy.Value),
		Valid: options.CreatedBy.IsPresent,
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT `+announcementColumns+` FROM announcement
		WHERE $1::bigint IS NULL OR created_by = $1
		ORDER BY created_at DESC, id DESC`,
		createdBy,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := make([]announcement.Announcement, 0)
	for rows.Next() {
		a, err := decodeAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

func (r *PgxAnnouncementRepository) Update(
	ctx context.Context,
	input announcement.UpdateInput,
) (a announcement.Announcement, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE announcement SET
			title = CASE WHEN $2 THEN $3 ELSE title END,
			content = CASE WHEN $4 THEN $5 ELSE content END
		WHERE id = $1
		RETURNING `+announcementColumns,
		int64(input.ID),
		input.DoTitleUpdate,
		input.Title,
		input.DoContentUpdate,
		input.Content,
	)
	a, err = decodeAnnouncement(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, announcement.ErrAnnouncementDoesNotExist
	}
	return a, err
}

func (r *PgxAnnouncementRepository) Delete(ctx context.Context, id announcement.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM announcement WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementDoesNotExist
	}
	return nil
}

func decodeAnnouncement(row pgx.Row) (a announcement.Announcement, err error) {
	var (
		id        int64
		createdBy int64
	)
	err = row.Scan(&id, &a.Title, &a.Content, &createdBy, &a.CreatedAt)
	if err != nil {
		return a, err
	}
	a.ID = announcement.ID(id)
	a.CreatedBy = user.ID(createdBy)
	return a, nil
}
