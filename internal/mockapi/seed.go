package mockapi

// SeedDemo fills a store with the demo data set used by cmd/mockapi and the
// integration tests: two practitioners and a sample patient account
// (patient / patient123).
func SeedDemo(s *Store) error {
	drSmith, err := s.CreateUser("drsmith", "jane.smith@carebook.example", "Jane", "Smith", "555-0101", "doctor123", RoleDoctor)
	if err != nil {
		return err
	}
	s.AddDoctor(&Doctor{
		UserID:             drSmith.ID,
		Specialization:     "Cardiology",
		Experience:         12,
		ConsultationFee:    "150.00",
		Bio:                "Consultant cardiologist focused on preventive care.",
		AvailableDays:      "Mon-Fri",
		AvailableTimeStart: "09:00",
		AvailableTimeEnd:   "17:00",
		Available:          true,
	})

	drLee, err := s.CreateUser("drlee", "omar.lee@carebook.example", "Omar", "Lee", "555-0102", "doctor123", RoleDoctor)
	if err != nil {
		return err
	}
	s.AddDoctor(&Doctor{
		UserID:             drLee.ID,
		Specialization:     "Dermatology",
		Experience:         7,
		ConsultationFee:    "120.00",
		AvailableDays:      "Mon-Wed",
		AvailableTimeStart: "10:00",
		AvailableTimeEnd:   "14:00",
		Available:          false,
	})

	_, err = s.CreateUser("patient", "pat@carebook.example", "Pat", "Jones", "", "patient123", RolePatient)
	return err
}
