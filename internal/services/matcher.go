package services

import (
	"fmt"
	"strings"

	"equihire/screening-engine/internal/models"
)

type EligibilityResult struct {
	Status  models.ScreeningStatus
	Reason  string
	Missing []string
}

// CheckEligibility rejects a candidate missing any required skill.
// Skills are compared case-insensitively.
func CheckEligibility(candidateSkills, requiredSkills []string) EligibilityResult {
	if len(requiredSkills) == 0 {
		return EligibilityResult{Status: models.StatusScreening, Reason: "No requirements set"}
	}

	have := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		have[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	var missing []string
	for _, skill := range requiredSkills {
		if !have[strings.ToLower(strings.TrimSpace(skill))] {
			missing = append(missing, skill)
		}
	}

	if len(missing) > 0 {
		return EligibilityResult{
			Status:  models.StatusAutoRejected,
			Reason:  fmt.Sprintf("Missing: %v", missing),
			Missing: missing,
		}
	}

	return EligibilityResult{Status: models.StatusScreening, Reason: "Skills Match"}
}
