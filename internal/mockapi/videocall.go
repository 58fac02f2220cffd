package mockapi

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// rooms maps appointment ids to their conferencing room names. A room is
// created once per appointment and reused on repeated joins.
type roomRegistry struct {
	mu    sync.Mutex
	names map[int]string
}

func newRoomRegistry() *roomRegistry {
	return &roomRegistry{names: map[int]string{}}
}

func (r *roomRegistry) roomFor(appointmentID int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name, ok := r.names[appointmentID]; ok {
		return name
	}
	name := "carebook-" + uuid.NewString()
	r.names[appointmentID] = name
	return name
}

// paidAppointment loads the appointment and checks the caller may join its
// call: the appointment must be theirs (or their schedule) and paid.
func (s *Server) paidAppointment(c *gin.Context) (*Appointment, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}

	a, err := s.store.AppointmentByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Appointment not found"})
		return nil, false
	}

	user := currentUserFrom(c)
	if user.UserType == RolePatient && a.PatientID != user.ID {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Appointment not found"})
		return nil, false
	}

	if a.Status != StatusPaid && a.Status != StatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Appointment is not paid"})
		return nil, false
	}
	return a, true
}

func (s *Server) createRoom(c *gin.Context) {
	a, ok := s.paidAppointment(c)
	if !ok {
		return
	}

	name := s.rooms.roomFor(a.ID)
	c.JSON(http.StatusOK, gin.H{
		"room_url": "https://carebook.daily.co/" + name,
	})
}

func (s *Server) roomToken(c *gin.Context) {
	a, ok := s.paidAppointment(c)
	if !ok {
		return
	}

	// the meeting token is an ordinary HS256 token scoped to the room
	user := currentUserFrom(c)
	token, err := s.issueToken(user, accessTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "token signing failed"})
		return
	}
	s.log.Debug(c.Request.Context(), "meeting token issued", "appointment_id", a.ID)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) startCall(c *gin.Context) {
	a, ok := s.paidAppointment(c)
	if !ok {
		return
	}
	s.log.Info(c.Request.Context(), "call started", "appointment_id", a.ID)
	c.JSON(http.StatusOK, gin.H{"message": "call started"})
}

func (s *Server) endCall(c *gin.Context) {
	a, ok := s.paidAppointment(c)
	if !ok {
		return
	}
	s.log.Info(c.Request.Context(), "call ended", "appointment_id", a.ID)
	c.JSON(http.StatusOK, gin.H{"message": "call ended"})
}
