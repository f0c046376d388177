package user

import (
	c "classportal/internal/core/domain/common"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateToken() SessionToken {
	return SessionToken(g.Token)
}

type FakeOTPGenerator struct {
	Code OTPCode
}

func NewFakeOTPGenerator(code string) *FakeOTPGenerator {
	return &FakeOTPGenerator{Code: OTPCode(code)}
}

func (g *FakeOTPGenerator) GenerateOTP() OTPCode {
	return g.Code
}

type FakeOTPSender struct {
	Sent       []OTPCode
	SentTo     []User
	Delivered  bool
	Diagnostic string
	lock       sync.Mutex
}

func NewFakeOTPSender() *FakeOTPSender {
	return &FakeOTPSender{Delivered: true}
}

func (s *FakeOTPSender) SendOTP(ctx context.Context, user User, code OTPCode) Delivery {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, code)
	s.SentTo = append(s.SentTo, user)
	return Delivery{Delivered: s.Delivered, Diagnostic: s.Diagnostic}
}

func (s *FakeOTPSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	u = User{
		ID:           maxID + 1,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
		PhoneNumber:  input.PhoneNumber,
		Gender:       input.Gender,
		Grade:        input.Grade,
		School:       input.School,
		Subject:      input.Subject,
		Preferences:  input.Preferences,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not update user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID != input.ID {
			continue
		}
		if input.DoEmailUpdate && u.Email != input.Email {
			for _, other := range r.Users {
				if other.ID != u.ID && other.Email == input.Email {
					return u, ErrEmailAlreadyExists
				}
			}
			r.Users[ix].Email = input.Email
		}
		if input.DoNameUpdate {
			r.Users[ix].Name = input.Name
		}
		if input.DoPhoneNumberUpdate {
			r.Users[ix].PhoneNumber = input.PhoneNumber
		}
		if input.DoGenderUpdate {
			r.Users[ix].Gender = input.Gender
		}
		if input.DoGradeUpdate {
			r.Users[ix].Grade = input.Grade
		}
		if input.DoSchoolUpdate {
			r.Users[ix].School = input.School
		}
		if input.DoSubjectUpdate {
			r.Users[ix].Subject = input.Subject
		}
		if input.DoPreferencesUpdate {
			r.Users[ix].Preferences = input.Preferences
		}
		return r.Users[ix], nil
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetOTP(ctx context.Context, input SetOTPInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not set otp for user %d", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.UserID {
			r.Users[ix].OTP = OTP{
				Code:    c.NewOptional(input.Code, true),
				Expires: c.NewOptional(input.Expires, true),
			}
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) MarkOTPVerified(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].OTP.Verified = true
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) ClearOTP(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].OTP = OTP{}
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakeSessionRepository struct {
	UserIdByToken  map[SessionToken]ID
	UserRepository UserRepository
	ReturnError    bool
	lock           sync.Mutex
}

func NewFakeSessionRepository(userRepository UserRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		UserIdByToken:  make(map[SessionToken]ID),
		UserRepository: userRepository,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create session %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UserIdByToken[input.Token] = input.UserID
	return nil
}

func (r *FakeSessionRepository) GetUserByToken(ctx context.Context, token SessionToken) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userId, ok := r.UserIdByToken[token]
	if !ok {
		return u, ErrUserDoesNotExist
	}
	return r.UserRepository.GetByID(ctx, userId)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (ID, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userID, ok := r.UserIdByToken[token]
	if !ok {
		return ID(0), ErrSessionDoesNotExist
	}
	delete(r.UserIdByToken, token)
	return userID, nil
}
