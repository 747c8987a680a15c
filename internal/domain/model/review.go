package model

import "time"

// Review is a customer's review of a meal.
type Review struct {
	ID        string    `json:"_id"`
	MealID    string    `json:"mealId"`
	MealName  string    `json:"mealName,omitempty"`
	UserEmail string    `json:"userEmail"`
	UserName  string    `json:"userName,omitempty"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// ReviewInput carries the reviewer-supplied fields.
type ReviewInput struct {
	MealID  string  `json:"mealId"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// Validate reports the first problem with the input, or nil.
func (in ReviewInput) Validate() error {
	switch {
	case in.MealID == "":
		return ValidationError{Field: "mealId", Reason: "meal id is required"}
	case in.Rating < 1 || in.Rating > 5:
		return ValidationError{Field: "rating", Reason: "rating must be between 1 and 5"}
	default:
		return nil
	}
}
