package models

// APIError represents a domain failure. Handlers never pick a status code
// themselves: the error middleware maps Code to one.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// Request validation
	ErrInvalidEntries = "invalidEntries"
	ErrInvalidFields  = "invalidFields"

	// Accounts
	ErrEmailExists    = "emailExists"
	ErrIncorrectLogin = "incorrectLogin"
	ErrNotAdmin       = "notAdmin"

	// Session tokens
	ErrMissingToken   = "noToken"
	ErrMalformedToken = "jwtMalformed"

	// Recipes
	ErrRecipeNotFound = "recipeNotFound"
	ErrUnauthorized   = "invalidIdOrRole"
	ErrInvalidImage   = "invalidImage"
	ErrImageNotFound  = "imageNotFound"
)

// Error implements the error interface
func (e APIError) Error() string {
	return e.Code + ": " + e.Message
}

// Is matches any APIError carrying the same code, so errors.Is works
// against the canonical values below
func (e APIError) Is(target error) bool {
	t, ok := target.(APIError)
	return ok && t.Code == e.Code
}

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// Canonical failures with the messages clients rely on
var (
	InvalidEntries = NewAPIError(ErrInvalidEntries, "Invalid entries. Try again.")
	InvalidFields  = NewAPIError(ErrInvalidFields, "All fields must be filled")
	EmailExists    = NewAPIError(ErrEmailExists, "Email already registered")
	IncorrectLogin = NewAPIError(ErrIncorrectLogin, "Incorrect username or password")
	NotAdmin       = NewAPIError(ErrNotAdmin, "Only admins can register new admins")
	MissingToken   = NewAPIError(ErrMissingToken, "missing auth token")
	MalformedToken = NewAPIError(ErrMalformedToken, "jwt malformed")
	RecipeNotFound = NewAPIError(ErrRecipeNotFound, "recipe not found")
	Unauthorized   = NewAPIError(ErrUnauthorized, "invalid id or role to update the recipe")
	InvalidImage   = NewAPIError(ErrInvalidImage, "only image/jpeg uploads are accepted")
	ImageNotFound  = NewAPIError(ErrImageNotFound, "image not found")
)
