package model

import "time"

// Favorite marks a meal saved by a customer.
type Favorite struct {
	ID        string    `json:"_id"`
	MealID    string    `json:"mealId"`
	MealName  string    `json:"mealName,omitempty"`
	MealImage string    `json:"mealImage,omitempty"`
	Price     float64   `json:"price,omitempty"`
	UserEmail string    `json:"userEmail"`
	SavedAt   time.Time `json:"savedAt,omitempty"`
}
