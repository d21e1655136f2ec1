package domain

// Preferences are the user's onboarding interests.
type Preferences struct {
	Categories []string `json:"categories"`
	Keywords   []string `json:"keywords"`
}
