package models

// LoginRequestBody represents the JSON body for user login
// swagger:model LoginRequestBody
type LoginRequestBody struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}
