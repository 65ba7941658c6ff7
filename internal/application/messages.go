package application

// Display strings the workflows hand to whatever surface renders them. The
// wording matches the original client.
const (
	RegisterConfirmation = "Registration successful! Please login with your email."
	NoScoreFallback      = "Score not found. Please calculate your score first."
	CalculateFallback    = "Failed to calculate score"
	MissingUserMessage   = "User ID not found. Please login again."
)
