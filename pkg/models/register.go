package models

// RegisterRequestBody represents the JSON body for user registration
// swagger:model RegisterRequestBody
type RegisterRequestBody struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}
