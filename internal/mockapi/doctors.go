package mockapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) doctorJSON(d *Doctor) gin.H {
	var user gin.H
	if u, err := s.store.UserByID(d.UserID); err == nil {
		user = gin.H{
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"email":      u.Email,
			"phone":      u.Phone,
		}
	}

	return gin.H{
		"id":                   d.ID,
		"user_details":         user,
		"specialization":       d.Specialization,
		"experience":           d.Experience,
		"consultation_fee":     d.ConsultationFee,
		"bio":                  d.Bio,
		"available_days":       d.AvailableDays,
		"available_time_start": d.AvailableTimeStart,
		"available_time_end":   d.AvailableTimeEnd,
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return 0, false
	}
	return id, true
}

func (s *Server) listDoctors(c *gin.Context) {
	doctors := s.store.Doctors()
	out := make([]gin.H, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, s.doctorJSON(d))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getDoctor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	d, err := s.store.DoctorByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Doctor not found"})
		return
	}
	c.JSON(http.StatusOK, s.doctorJSON(d))
}

func (s *Server) doctorAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	d, err := s.store.DoctorByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Doctor not found"})
		return
	}

	if !d.Available {
		c.JSON(http.StatusOK, gin.H{
			"available": false,
			"message":   "This doctor is not taking appointments right now.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true})
}

func (s *Server) doctorSlots(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	slots, err := s.store.Slots(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Doctor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
