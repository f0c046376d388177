package user

import (
	c "classportal/internal/core/domain/common"
	"classportal/internal/core/domain/user"
	"classportal/internal/db"
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, name, email, password_hash, role, phone_number, gender, grade,
school, subject, preferences, otp_code, otp_expires, otp_verified, created_at`

type PgxUserRepository struct {
	db db.Queryer
}

func NewPgxRepository(db db.Queryer) *PgxUserRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(
	ctx context.Context,
	input user.CreateUserInput,
) (u user.User, err error) {
	preferences, err := encodePreferences(input.Preferences)
	if err != nil {
		return u, err
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (name, email, password_hash, role, phone_number, gender, grade,
			school, subject, preferences, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+userColumns,
		input.Name,
		string(input.Email),
		string(input.PasswordHash),
		input.Role.String(),
		encodeOptionalString(input.PhoneNumber),
		encodeOptionalString(input.Gender),
		encodeOptionalString(input.Grade),
		encodeOptionalString(input.School),
		encodeOptionalString(input.Subject),
		preferences,
		input.CreatedAt,
	)
	u, err = decodeUser(row)
	if isEmailUniqueViolation(err) {
		return u, user.ErrEmailAlreadyExists
	}
	return u, err
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE id = $1`,
		int64(id),
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) GetByEmail(
	ctx context.Context,
	email c.Email,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE email = $1`,
		string(email),
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) Update(
	ctx context.Context,
	input user.UpdateUserInput,
) (u user.User, err error) {
	preferences, err := encodePreferences(input.Preferences)
	if err != nil {
		return u, err
	}
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET
			name = CASE WHEN $2 THEN $3 ELSE name END,
			email = CASE WHEN $4 THEN $5 ELSE email END,
			phone_number = CASE WHEN $6 THEN $7 ELSE phone_number END,
			gender = CASE WHEN $8 THEN $9 ELSE gender END,
			grade = CASE WHEN $10 THEN $11 ELSE grade END,
			school = CASE WHEN $12 THEN $13 ELSE school END,
			subject = CASE WHEN $14 THEN $15 ELSE subject END,
			preferences = CASE WHEN $16 THEN $17 ELSE preferences END
		WHERE id = $1
		RETURNING `+userColumns,
		int64(input.ID),
		input.DoNameUpdate,
		input.Name,
		input.DoEmailUpdate,
		string(input.Email),
		input.DoPhoneNumberUpdate,
		encodeOptionalString(input.PhoneNumber),
		input.DoGenderUpdate,
		encodeOptionalString(input.Gender),
		input.DoGradeUpdate,
		encodeOptionalString(input.Grade),
		input.DoSchoolUpdate,
		encodeOptionalString(input.School),
		input.DoSubjectUpdate,
		encodeOptionalString(input.Subject),
		input.DoPreferencesUpdate,
		preferences,
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if isEmailUniqueViolation(err) {
		return u, user.ErrEmailAlreadyExists
	}
	return u, err
}

func (r *PgxUserRepository) SetOTP(ctx context.Context, input user.SetOTPInput) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		SET otp_code = $2, otp_expires = $3, otp_verified = FALSE
		WHERE id = $1`,
		int64(input.UserID),
		string(input.Code),
		input.Expires,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) MarkOTPVerified(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET otp_verified = TRUE WHERE id = $1`,
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) SetPassword(
	ctx context.Context,
	id user.ID,
	password user.PasswordHash,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_hash = $2 WHERE id = $1`,
		int64(id),
		string(password),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) ClearOTP(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		SET otp_code = NULL, otp_expires = NULL, otp_verified = FALSE
		WHERE id = $1`,
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func isEmailUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE &&
		pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME
}

func encodeOptionalString(v c.Optional[string]) sql.NullString {
	return sql.NullString{String: v.Value, Valid: v.IsPresent}
}

func encodePreferences(p user.Preferences) (pgtype.JSONB, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return pgtype.JSONB{}, err
	}
	return pgtype.JSONB{Bytes: raw, Status: pgtype.Present}, nil
}

func decodeUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		email        string
		passwordHash string
		role         string
		phoneNumber  sql.NullString
		gender       sql.NullString
		grade        sql.NullString
		school       sql.NullString
		subject      sql.NullString
		preferences  pgtype.JSONB
		otpCode      sql.NullString
		otpExpires   sql.NullTime
	)
	err = row.Scan(
		&id,
		&u.Name,
		&email,
		&passwordHash,
		&role,
		&phoneNumber,
		&gender,
		&grade,
		&school,
		&subject,
		&preferences,
		&otpCode,
		&otpExpires,
		&u.OTP.Verified,
		&u.CreatedAt,
	)
	if err != nil {
		return u, err
	}
	u.ID = user.ID(id)
	u.Email = c.Email(email)
	u.PasswordHash = user.PasswordHash(passwordHash)
	u.Role, err = user.ParseRole(role)
	if err != nil {
		return u, err
	}
	u.PhoneNumber = c.NewOptional(phoneNumber.String, phoneNumber.Valid)
	u.Gender = c.NewOptional(gender.String, gender.Valid)
	u.Grade = c.NewOptional(grade.String, grade.Valid)
	u.School = c.NewOptional(school.String, school.Valid)
	u.Subject = c.NewOptional(subject.String, subject.Valid)
	if err := json.Unmarshal(preferences.Bytes, &u.Preferences); err != nil {
		return u, err
	}
	u.OTP.Code = c.NewOptional(user.OTPCode(otpCode.String), otpCode.Valid)
	u.OTP.Expires = c.NewOptional(otpExpires.Time, otpExpires.Valid)
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}
