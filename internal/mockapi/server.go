// Package mockapi is a self-contained stand-in for the Carebook backend: a
// gin server implementing the whole REST surface the client consumes, backed
// by an in-memory store. It exists for local development and integration
// tests; nothing it stores survives a restart.
package mockapi

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/carebook/carebook/internal/logging"
)

// Server owns the router, the store and the signing secret.
type Server struct {
	store  *Store
	secret []byte
	rooms  *roomRegistry
	log    logging.Logger
	engine *gin.Engine
}

func NewServer(store *Store, secret []byte, log logging.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{store: store, secret: secret, rooms: newRoomRegistry(), log: log}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: false,
	}))
	s.routes(router)
	s.engine = router
	return s
}

func (s *Server) routes(router *gin.Engine) {
	public := router.Group("/api")
	{
		public.POST("/auth/jwt/create/", s.createTokenPair)
		public.POST("/auth/users/", s.registerUser)
		public.POST("/auth/users/reset_password/", s.resetPassword)
	}

	authorized := router.Group("/api")
	authorized.Use(s.jwtAuthMiddleware())
	{
		authorized.GET("/auth/users/me/", s.currentUser)

		authorized.GET("/doctors/", s.listDoctors)
		authorized.GET("/doctors/:id/", s.getDoctor)
		authorized.GET("/doctors/:id/availability/", s.doctorAvailability)
		authorized.GET("/doctors/:id/slots/", s.doctorSlots)

		authorized.GET("/appointments/", s.listAppointments)
		authorized.POST("/appointments/", s.createAppointment)
		authorized.PATCH("/appointments/:id/", s.patchAppointment)
		authorized.POST("/appointments/:id/mark_paid/", s.markPaid)

		authorized.POST("/video-call/daily-room/:id/", s.createRoom)
		authorized.GET("/video-call/daily-token/:id/", s.roomToken)
		authorized.POST("/video-call/start-call/:id/", s.startCall)
		authorized.POST("/video-call/end-call/:id/", s.endCall)
	}
}

// Handler exposes the engine for httptest and for cmd/mockapi.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the given address, blocking.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// jwtAuthMiddleware enforces the "JWT <token>" authorization scheme and
// stashes the authenticated user in the gin context.
func (s *Server) jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Authentication credentials were not provided.",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "JWT" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid authorization header.",
			})
			return
		}

		userID, err := s.verifyToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Given token not valid for any token type",
			})
			return
		}

		user, err := s.store.UserByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "User not found",
			})
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

func currentUserFrom(c *gin.Context) *User {
	return c.MustGet("user").(*User)
}
