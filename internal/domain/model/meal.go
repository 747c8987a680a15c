package model

import "time"

// Meal is a chef's meal listing as served by the marketplace backend.
type Meal struct {
	ID           string    `json:"_id"`
	Name         string    `json:"foodName"`
	ImageURL     string    `json:"foodImage"`
	Description  string    `json:"description,omitempty"`
	Ingredients  []string  `json:"ingredients,omitempty"`
	ChefName     string    `json:"chefName"`
	ChefID       string    `json:"chefId"`
	ChefEmail    string    `json:"chefEmail,omitempty"`
	DeliveryArea string    `json:"deliveryArea"`
	Price        float64   `json:"price"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// MealInput carries the fields a chef supplies when creating or
// updating a listing. Chef identity fields are stamped server-side.
type MealInput struct {
	Name         string   `json:"foodName"`
	ImageURL     string   `json:"foodImage"`
	Description  string   `json:"description,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	DeliveryArea string   `json:"deliveryArea"`
	Price        float64  `json:"price"`
}

// Validate reports the first problem with the input, or nil.
func (in MealInput) Validate() error {
	switch {
	case in.Name == "":
		return ValidationError{Field: "foodName", Reason: "name is required"}
	case in.DeliveryArea == "":
		return ValidationError{Field: "deliveryArea", Reason: "delivery area is required"}
	case in.Price <= 0:
		return ValidationError{Field: "price", Reason: "price must be positive"}
	default:
		return nil
	}
}

// ValidationError describes a single invalid input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string { return e.Field + ": " + e.Reason }
