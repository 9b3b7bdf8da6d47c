package models

import (
	"time"
)

// Provider is a healthcare professional entry in the directory.
type Provider struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`                           // Display name, e.g. "Dr. Sharma".
	Specialty     string    `bson:"specialty" json:"specialty"`                 // e.g. "Cardiologist".
	Qualification string    `bson:"qualification" json:"qualification"`         // e.g. "MD, DM Cardiology".
	ExperienceYrs int       `bson:"experienceYears" json:"experienceYears"`     // Years of practice.
	Rating        float64   `bson:"rating" json:"rating"`                       // Expected value between 0 and 5.
	Reviews       int       `bson:"reviews" json:"reviews"`                     // Number of patient reviews.
	Languages     []string  `bson:"languages" json:"languages"`                 // e.g. ["English", "Hindi"].
	Fee           float64   `bson:"fee" json:"fee"`                             // Consultation fee per visit.
	Currency      string    `bson:"currency" json:"currency"`                   // e.g. "INR".
	Available     bool      `bson:"available" json:"available"`                 // True when the provider can consult right now.
	NextAvailable time.Time `bson:"nextAvailable" json:"nextAvailable"`         // Ignored while Available is true.
	OfferedTimes  []string  `bson:"offeredTimes" json:"offeredTimes"`           // Fixed daily slot times, "HH:MM", declared order.
	ProfileImage  string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
}
