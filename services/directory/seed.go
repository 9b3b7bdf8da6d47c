package directory

import (
	"time"

	"carelink/models"
)

// DefaultCatalog is the built-in provider seed used when the providers
// collection is empty. NextAvailable offsets are computed at call time so the
// invariant (unavailable providers have a future next-available timestamp)
// holds at seeding.
func DefaultCatalog() []models.Provider {
	now := time.Now()
	return []models.Provider{
		{
			ID:            "prov-sharma",
			Name:          "Dr. Sharma",
			Specialty:     "Cardiologist",
			Qualification: "MD, DM Cardiology",
			ExperienceYrs: 15,
			Rating:        4.8,
			Reviews:       234,
			Languages:     []string{"English", "Hindi"},
			Fee:           800,
			Currency:      "INR",
			Available:     true,
			NextAvailable: now,
			OfferedTimes:  []string{"09:00", "11:00", "14:00"},
		},
		{
			ID:            "prov-patel",
			Name:          "Dr. Patel",
			Specialty:     "Pediatrician",
			Qualification: "MBBS, MD Pediatrics",
			ExperienceYrs: 12,
			Rating:        4.9,
			Reviews:       189,
			Languages:     []string{"English", "Gujarati", "Hindi"},
			Fee:           600,
			Currency:      "INR",
			Available:     false,
			NextAvailable: now.Add(20 * time.Minute),
			OfferedTimes:  []string{"10:00", "13:00", "15:00"},
		},
		{
			ID:            "prov-singh",
			Name:          "Dr. Singh",
			Specialty:     "Dermatologist",
			Qualification: "MBBS, MD Dermatology",
			ExperienceYrs: 8,
			Rating:        4.7,
			Reviews:       156,
			Languages:     []string{"English", "Punjabi", "Hindi"},
			Fee:           700,
			Currency:      "INR",
			Available:     false,
			NextAvailable: now.Add(11 * time.Hour),
			OfferedTimes:  []string{"09:30", "12:00", "16:00"},
		},
		{
			ID:            "prov-gupta",
			Name:          "Dr. Gupta",
			Specialty:     "General Physician",
			Qualification: "MBBS, MD Internal Medicine",
			ExperienceYrs: 10,
			Rating:        4.6,
			Reviews:       201,
			Languages:     []string{"English", "Hindi", "Bengali"},
			Fee:           500,
			Currency:      "INR",
			Available:     true,
			NextAvailable: now,
			OfferedTimes:  []string{"08:30", "10:30", "13:30"},
		},
	}
}
