package user

// User is a registered account referenced by articles and comments as their
// author. The username is the primary identifier.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
