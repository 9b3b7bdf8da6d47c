package middleware

import (
	"context"
	"net/http"
	"strings"

	patientRepo "carelink/database/repository/patient"
	"carelink/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthPatientMiddleware authenticates a patient bearer token. The token's
// SHA-256 hash must match the hash stored on the patient record, so revoking
// the stored hash signs the patient out everywhere.
func JWTAuthPatientMiddleware(repo patientRepo.PatientRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		patientID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || patientID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		p, err := repo.GetByID(context.Background(), patientID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if p.TokenHash == "" || p.TokenHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
			return
		}

		c.Set("patientID", patientID)
		c.Next()
	}
}
