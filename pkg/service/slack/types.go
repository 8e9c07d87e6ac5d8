package slack

// User represents a Slack user
type User struct {
	ID       string
	Name     string
	RealName string
}

// DisplayName returns the best human-readable name for the user
func (u *User) DisplayName() string {
	if u.RealName != "" {
		return u.RealName
	}
	return u.Name
}
