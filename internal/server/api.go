package server

import (
	"github.com/Santy1924/Online-Course-Platform/internal/db"
	"github.com/Santy1924/Online-Course-Platform/internal/db/repo"
	"github.com/Santy1924/Online-Course-Platform/internal/metrics"
	"github.com/Santy1924/Online-Course-Platform/internal/service"
)

type APIServer struct {
	db          *db.Client
	userRepo    repo.UserRepositoryInterface
	sessionRepo repo.SessionRepositoryInterface
	courseSvc   service.CourseServiceInterface
	lessonSvc   service.LessonServiceInterface
	business    *metrics.BusinessMetrics
}

func NewAPIServer(db *db.Client, business *metrics.BusinessMetrics) *APIServer {
	courseRepo := repo.NewCourseRepository(db.DB())
	lessonRepo := repo.NewLessonRepository(db.DB())

	return &APIServer{
		db:          db,
		userRepo:    repo.NewUserRepository(db.DB()),
		sessionRepo: repo.NewSessionRepository(db.DB()),
		courseSvc:   service.NewCourseService(db, courseRepo, lessonRepo),
		lessonSvc:   service.NewLessonService(db, lessonRepo, courseRepo),
		business:    business,
	}
}

func (s *APIServer) UserRepo() repo.UserRepositoryInterface {
	return s.userRepo
}

func (s *APIServer) SessionRepo() repo.SessionRepositoryInterface {
	return s.sessionRepo
}

func (s *APIServer) CourseService() service.CourseServiceInterface {
	return s.courseSvc
}

func (s *APIServer) LessonService() service.LessonServiceInterface {
	return s.lessonSvc
}
