package models

import "fmt"

// Query is the persona and job-to-be-done pair that relevance is scored
// against.
type Query struct {
	Persona string `json:"persona"`
	Job     string `json:"job"`
}

// Validate ensures the query carries at least one usable field.
func (q *Query) Validate() error {
	if q.Persona == "" && q.Job == "" {
		return fmt.Errorf("query needs a persona or a job description")
	}
	return nil
}

// Text returns the combined textual representation used for both semantic
// embedding and TF-IDF scoring.
func (q Query) Text() string {
	return fmt.Sprintf("Persona: %s. Task: %s", q.Persona, q.Job)
}
