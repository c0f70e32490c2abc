package domain

import (
	"fmt"
	"strings"
	"time"
)

type ProfileID string

type Profile struct {
	ID              ProfileID
	Email           string
	TargetRole      string
	TargetEcosystem string
	VoiceTone       string
	Skills          SkillMatrix
	UpdatedAt       time.Time
}

func (p Profile) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return &ValidationError{Field: "id", Reason: "is required"}
	}
	if strings.TrimSpace(p.TargetRole) == "" {
		return &ValidationError{Field: "target_role", Reason: "is required"}
	}
	if strings.TrimSpace(p.TargetEcosystem) == "" {
		return &ValidationError{Field: "target_ecosystem", Reason: "is required"}
	}

	return p.Skills.Validate()
}

const (
	MinSkillLevel = 0
	MaxSkillLevel = 5
)

// SkillMatrix holds self-rated levels for the core interview categories.
type SkillMatrix struct {
	DSA          int
	OOPS         int
	DBMS         int
	OS           int
	SystemDesign int
}

var SkillCategories = []string{"DSA", "OOPS", "DBMS", "OS", "System Design"}

// Values returns the levels in SkillCategories order.
func (m SkillMatrix) Values() []int {
	return []int{m.DSA, m.OOPS, m.DBMS, m.OS, m.SystemDesign}
}

func (m SkillMatrix) Validate() error {
	for i, value := range m.Values() {
		if value < MinSkillLevel || value > MaxSkillLevel {
			return &ValidationError{
				Field:  SkillCategories[i],
				Reason: fmt.Sprintf("level %d outside %d-%d", value, MinSkillLevel, MaxSkillLevel),
			}
		}
	}

	return nil
}

func SkillMatrixFromValues(values []int) (SkillMatrix, error) {
	if len(values) != len(SkillCategories) {
		return SkillMatrix{}, fmt.Errorf("expected %d skill values, got %d", len(SkillCategories), len(values))
	}

	return SkillMatrix{
		DSA:          values[0],
		OOPS:         values[1],
		DBMS:         values[2],
		OS:           values[3],
		SystemDesign: values[4],
	}, nil
}

// CoreReadiness is the matrix total as a percentage of the maximum possible total.
func (m SkillMatrix) CoreReadiness() float64 {
	total := 0
	for _, value := range m.Values() {
		total += value
	}

	return float64(total) / float64(len(SkillCategories)*MaxSkillLevel) * 100
}
