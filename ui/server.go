package ui

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mathwiz/app"
	"mathwiz/internal/config"
	appErrors "mathwiz/internal/errors"
	"mathwiz/ports"
)

// Server is the HTTP surface of the tutor backend.
type Server struct {
	router    *gin.Engine
	cfg       *config.Config
	auth      *app.AuthService
	solver    *app.SolverService
	practice  *app.PracticeService
	quiz      *app.QuizService
	puzzle    *app.PuzzleService
	users     ports.UserRepository
	bookmarks ports.BookmarkRepository
}

// Deps bundles everything the server needs.
type Deps struct {
	Config    *config.Config
	Auth      *app.AuthService
	Solver    *app.SolverService
	Practice  *app.PracticeService
	Quiz      *app.QuizService
	Puzzle    *app.PuzzleService
	Users     ports.UserRepository
	Bookmarks ports.BookmarkRepository
}

// NewServer creates a new web server instance
func NewServer(deps Deps) *Server {
	gin.SetMode(deps.Config.Server.GinMode)
	s := &Server{
		router:    gin.Default(),
		cfg:       deps.Config,
		auth:      deps.Auth,
		solver:    deps.Solver,
		practice:  deps.Practice,
		quiz:      deps.Quiz,
		puzzle:    deps.Puzzle,
		users:     deps.Users,
		bookmarks: deps.Bookmarks,
	}
	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleRoot)
	s.router.GET("/health", s.handleHealth)

	s.router.POST("/api/register", s.handleRegister)
	s.router.POST("/api/login", s.handleLogin)

	authed := s.router.Group("/", s.RequireAuth())
	{
		authed.GET("/api/users/me", s.handleCurrentUser)
		authed.GET("/user/data", s.handleUserData)

		authed.POST("/solve-text", s.handleSolveText)
		authed.POST("/explain-step", s.handleExplainStep)
		authed.POST("/generate-practice-problem", s.handlePractice)
		authed.POST("/diagnose-solution", s.handleDiagnose)
		authed.POST("/api/chat", s.handleChat)

		authed.GET("/api/daily-puzzle", s.handleDailyPuzzle)
		authed.POST("/api/submit-puzzle", s.handleSubmitPuzzle)

		authed.POST("/api/bookmarks", s.handleCreateBookmark)
		authed.GET("/api/bookmarks", s.handleListBookmarks)
		authed.DELETE("/api/bookmarks/:id", s.handleDeleteBookmark)

		authed.GET("/admin/users", s.handleAdminUsers)
		authed.GET("/admin/users/export", s.handleAdminExport)
		authed.GET("/admin/xp-stats", s.handleAdminXPStats)
	}

	// Solution generation without XP tracking stays open.
	s.router.POST("/generate-solution", s.handleGenerateSolution)

	cs := s.router.Group("/cs")
	{
		cs.POST("/questions", s.handleCSQuestion)
		cs.POST("/submit", s.handleCSSubmit)
		cs.POST("/learning-aids", s.handleLearningAids)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Math Wiz backend is running"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusForError maps application error codes to HTTP statuses.
func statusForError(err error) int {
	switch {
	case appErrors.HasCode(err, appErrors.CodeInvalidInput),
		appErrors.HasCode(err, appErrors.CodeValidationError),
		appErrors.HasCode(err, appErrors.CodeAIBlocked):
		return http.StatusBadRequest
	case appErrors.HasCode(err, appErrors.CodeUnauthorized),
		appErrors.HasCode(err, appErrors.CodeAIAuthFailed):
		return http.StatusUnauthorized
	case appErrors.HasCode(err, appErrors.CodeNotFound):
		return http.StatusNotFound
	case appErrors.HasCode(err, appErrors.CodeAINotConfigured):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"detail": err.Error()})
}
