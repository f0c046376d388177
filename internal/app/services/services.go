package services

import (
	"classportal/internal/app/deps"
	drl "classportal/internal/core/domain/rate_limiter"
	"classportal/internal/core/services"
	"classportal/internal/core/services/auth"
	createannouncement "classportal/internal/core/services/create_announcement"
	createlesson "classportal/internal/core/services/create_lesson"
	deleteannouncement "classportal/internal/core/services/delete_announcement"
	deletelesson "classportal/internal/core/services/delete_lesson"
	getannouncement "classportal/internal/core/services/get_announcement"
	getlesson "classportal/internal/core/services/get_lesson"
	getuserbysessiontoken "classportal/internal/core/services/get_user_by_session_token"
	listannouncements "classportal/internal/core/services/list_announcements"
	listlessons "classportal/internal/core/services/list_lessons"
	loginwithemail "classportal/internal/core/services/log_in_with_email"
	logout "classportal/internal/core/services/log_out"
	ratelimiting "classportal/internal/core/services/rate_limiting"
	requestpasswordreset "classportal/internal/core/services/request_password_reset"
	resetpassword "classportal/internal/core/services/reset_password"
	signup "classportal/internal/core/services/sign_up"
	updateannouncement "classportal/internal/core/services/update_announcement"
	updatelesson "classportal/internal/core/services/update_lesson"
	updatepreferences "classportal/internal/core/services/update_preferences"
	updateuser "classportal/internal/core/services/update_user"
	verifyotp "classportal/internal/core/services/verify_otp"
)

type Services struct {
	SignUp                services.Service[signup.Input, signup.Result]
	LogInWithEmail        services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                services.Service[logout.Input, logout.Result]
	RequestPasswordReset  services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	VerifyOTP             services.Service[verifyotp.Input, verifyotp.Result]
	ResetPassword         services.Service[resetpassword.Input, resetpassword.Result]
	GetUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	UpdateUser            services.Service[updateuser.Input, updateuser.Result]
	UpdatePreferences     services.Service[updatepreferences.Input, updatepreferences.Result]

	CreateLesson services.Service[createlesson.Input, createlesson.Result]
	GetLesson    services.Service[getlesson.Input, getlesson.Result]
	ListLessons  services.Service[listlessons.Input, listlessons.Result]
	UpdateLesson services.Service[updatelesson.Input, updatelesson.Result]
	DeleteLesson services.Service[deletelesson.Input, deletelesson.Result]

	CreateAnnouncement services.Service[createannouncement.Input, createannouncement.Result]
	GetAnnouncement    services.Service[getannouncement.Input, getannouncement.Result]
	ListAnnouncements  services.Service[listannouncements.Input, listannouncements.Result]
	UpdateAnnouncement services.Service[updateannouncement.Input, updateannouncement.Result]
	DeleteAnnouncement services.Service[deleteannouncement.Input, deleteannouncement.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.RequestPasswordReset = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		requestpasswordreset.New(
			deps.Logger,
			deps.UserRepository,
			deps.OTPGenerator,
			deps.OTPSender,
			deps.Now,
		),
	)
	s.VerifyOTP = verifyotp.New(
		deps.Logger,
		deps.UserRepository,
		deps.Now,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.UpdateUser = auth.WithAuthentication(
		deps.SessionRepository,
		updateuser.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.UpdatePreferences = auth.WithAuthentication(
		deps.SessionRepository,
		updatepreferences.New(
			deps.Logger,
			deps.UserRepository,
		),
	)

	s.CreateLesson = auth.WithAuthentication(
		deps.SessionRepository,
		createlesson.New(
			deps.Logger,
			deps.LessonRepository,
			deps.Now,
		),
	)
	s.GetLesson = auth.WithAuthentication(
		deps.SessionRepository,
		getlesson.New(
			deps.Logger,
			deps.LessonRepository,
		),
	)
	s.ListLessons = auth.WithAuthentication(
		deps.SessionRepository,
		listlessons.New(
			deps.Logger,
			deps.LessonRepository,
		),
	)
	s.UpdateLesson = auth.WithAuthentication(
		deps.SessionRepository,
		updatelesson.New(
			deps.Logger,
			deps.LessonRepository,
		),
	)
	s.DeleteLesson = auth.WithAuthentication(
		deps.SessionRepository,
		deletelesson.New(
			deps.Logger,
			deps.LessonRepository,
		),
	)

	s.CreateAnnouncement = auth.WithAuthentication(
		deps.SessionRepository,
		createannouncement.New(
			deps.Logger,
			deps.AnnouncementRepository,
			deps.AnnouncementEventPublisher,
			deps.Now,
		),
	)
	s.GetAnnouncement = auth.WithAuthentication(
		deps.SessionRepository,
		getannouncement.New(
			deps.Logger,
			deps.AnnouncementRepository,
		),
	)
	s.ListAnnouncements = auth.WithAuthentication(
		deps.SessionRepository,
		listannouncements.New(
			deps.Logger,
			deps.AnnouncementRepository,
		),
	)
	s.UpdateAnnouncement = auth.WithAuthentication(
		deps.SessionRepository,
		updateannouncement.New(
			deps.Logger,
			deps.AnnouncementRepository,
		),
	)
	s.DeleteAnnouncement = auth.WithAuthentication(
		deps.SessionRepository,
		deleteannouncement.New(
			deps.Logger,
			deps.AnnouncementRepository,
		),
	)

	return s
}
