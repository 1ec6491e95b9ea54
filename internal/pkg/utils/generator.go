package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateLocalID mints a collection item identity token. Tokens are stable
// for the lifetime of an edit session and independent of backend ids.
func GenerateLocalID() string {
	return uuid.NewString()
}
