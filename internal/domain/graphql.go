package domain

// GraphQLError is one entry of a GraphQL errors list: a fixed human-readable
// message plus the path of the field the operation resolves to.
type GraphQLError struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

// GraphQLResponse is the body of a GraphQL-over-HTTP reply. Exactly one of
// Data and Errors is set; a failed operation never carries partial data.
type GraphQLResponse struct {
	Data   map[string]any `json:"data,omitempty"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// UserPayload is the public projection of an account (no password).
type UserPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthPayload is the success payload of the login and register mutations.
type AuthPayload struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}
