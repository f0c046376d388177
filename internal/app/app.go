package app

import (
	"classportal/internal/app/deps"
	"classportal/internal/app/services"
	createannouncement "classportal/internal/http/handlers/announcements/create_announcement"
	deleteannouncement "classportal/internal/http/handlers/announcements/delete_announcement"
	announcementevents "classportal/internal/http/handlers/announcements/events"
	getannouncement "classportal/internal/http/handlers/announcements/get_announcement"
	listannouncements "classportal/internal/http/handlers/announcements/list_announcements"
	updateannouncement "classportal/internal/http/handlers/announcements/update_announcement"
	"classportal/internal/http/handlers/auth"
	loginwithemail "classportal/internal/http/handlers/auth/log_in_with_email"
	logout "classportal/internal/http/handlers/auth/log_out"
	requestpasswordreset "classportal/internal/http/handlers/auth/request_password_reset"
	resetpassword "classportal/internal/http/handlers/auth/reset_password"
	signup "classportal/internal/http/handlers/auth/sign_up"
	verifyotp "classportal/internal/http/handlers/auth/verify_otp"
	createlesson "classportal/internal/http/handlers/lessons/create_lesson"
	deletelesson "classportal/internal/http/handlers/lessons/delete_lesson"
	getlesson "classportal/internal/http/handlers/lessons/get_lesson"
	listlessons "classportal/internal/http/handlers/lessons/list_lessons"
	updatelesson "classportal/internal/http/handlers/lessons/update_lesson"
	me "classportal/internal/http/handlers/user/me"
	updatepreferences "classportal/internal/http/handlers/user/update_preferences"
	updateuser "classportal/internal/http/handlers/user/update_user"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signup.New(s.SignUp))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/request",
		requestpasswordreset.New(s.RequestPasswordReset, isTestMode),
	)
	authRouter.Method(http.MethodPost, "/password_reset/verification", verifyotp.New(s.VerifyOTP))
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	profileRouter := chi.NewRouter()
	profileRouter.Use(auth.SetAuthTokenToContext)
	profileRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
	profileRouter.Method(http.MethodPatch, "/me", updateuser.New(s.UpdateUser))
	profileRouter.Method(http.MethodPatch, "/preferences", updatepreferences.New(s.UpdatePreferences))

	lessonsRouter := chi.NewRouter()
	lessonsRouter.Use(auth.SetAuthTokenToContext)
	lessonsRouter.Method(http.MethodPost, "/", createlesson.New(s.CreateLesson))
	lessonsRouter.Method(http.MethodGet, "/", listlessons.New(s.ListLessons))
	lessonsRouter.Method(http.MethodGet, "/{lessonID:[0-9]+}", getlesson.New(s.GetLesson))
	lessonsRouter.Method(http.MethodPatch, "/{lessonID:[0-9]+}", updatelesson.New(s.UpdateLesson))
	lessonsRouter.Method(http.MethodDelete, "/{lessonID:[0-9]+}", deletelesson.New(s.DeleteLesson))

	announcementsRouter := chi.NewRouter()
	announcementsRouter.Use(auth.SetAuthTokenToContext)
	announcementsRouter.Method(http.MethodPost, "/", createannouncement.New(s.CreateAnnouncement))
	announcementsRouter.Method(http.MethodGet, "/", listannouncements.New(s.ListAnnouncements))
	announcementsRouter.Method(
		http.MethodGet,
		"/events",
		announcementevents.New(deps.Logger, deps.SseServer, s.GetUserBySessionToken),
	)
	announcementsRouter.Method(http.MethodGet, "/{announcementID:[0-9]+}", getannouncement.New(s.GetAnnouncement))
	announcementsRouter.Method(
		http.MethodPatch,
		"/{announcementID:[0-9]+}",
		updateannouncement.New(s.UpdateAnnouncement),
	)
	announcementsRouter.Method(
		http.MethodDelete,
		"/{announcementID:[0-9]+}",
		deleteannouncement.New(s.DeleteAnnouncement),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)
	router.Mount("/lessons", lessonsRouter)
	router.Mount("/announcements", announcementsRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
