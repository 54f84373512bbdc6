package domain

// User is an account referenced by articles and comments through its
// username. Users are seeded outside this API.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
