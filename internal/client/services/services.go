package services

// TokenSource yields the bearer token for authenticated calls. The session
// manager implements it; an empty token means nobody is signed in.
type TokenSource interface {
	Token() string
}
