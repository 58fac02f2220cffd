package mockapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// createTokenPair is the djoser-style login: a username/password pair buys an
// access/refresh token pair.
func (s *Server) createTokenPair(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "username and password are required"})
		return
	}

	user, err := s.store.Authenticate(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"detail": "No active account found with the given credentials",
		})
		return
	}

	access, err := s.issueToken(user, accessTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "token signing failed"})
		return
	}
	refresh, err := s.issueToken(user, refreshTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "token signing failed"})
		return
	}

	s.log.Info(c.Request.Context(), "issued token pair", "username", user.Username)
	c.JSON(http.StatusOK, gin.H{"access": access, "refresh": refresh})
}

type registerInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	UserType  int    `json:"user_type"`
}

// registerUser creates an account. Validation failures come back as the
// field→[messages] map the registration form renders inline.
func (s *Server) registerUser(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	fields := map[string][]string{}
	if input.Username == "" {
		fields["username"] = []string{"This field may not be blank."}
	}
	if input.Email == "" {
		fields["email"] = []string{"This field may not be blank."}
	}
	if len(input.Password) < 8 {
		fields["password"] = []string{"This password is too short. It must contain at least 8 characters."}
	}
	if input.Password2 != "" && input.Password != input.Password2 {
		fields["password2"] = []string{"The two password fields didn't match."}
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, fields)
		return
	}

	userType := input.UserType
	if userType == 0 {
		userType = RolePatient
	}

	user, err := s.store.CreateUser(input.Username, input.Email, input.FirstName,
		input.LastName, input.Phone, input.Password, userType)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"username": []string{"A user with that username already exists."},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	s.log.Info(c.Request.Context(), "user registered", "username", user.Username)
	c.JSON(http.StatusCreated, profileJSON(user))
}

// currentUser answers the profile probe issued right after login.
func (s *Server) currentUser(c *gin.Context) {
	c.JSON(http.StatusOK, profileJSON(currentUserFrom(c)))
}

// resetPassword pretends to send the reset email. Like the real backend, it
// answers 204 whether or not the address exists.
func (s *Server) resetPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"email": []string{"This field may not be blank."}})
		return
	}

	s.log.Info(c.Request.Context(), "password reset requested", "email", input.Email)
	c.Status(http.StatusNoContent)
}

func profileJSON(u *User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"user_type":  u.UserType,
		"phone":      u.Phone,
	}
}
