package config

// NewGeminiForTest creates a Gemini config for testing purposes
func NewGeminiForTest(projectID, location string) *Gemini {
	return &Gemini{
		projectID: projectID,
		location:  location,
	}
}

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(botToken, signingSecret string) *Slack {
	return &Slack{
		botToken:      botToken,
		signingSecret: signingSecret,
	}
}

// NewMetaForTest creates a Meta config for testing purposes
func NewMetaForTest(whatsAppToken, phoneNumberID, pageToken, verifyToken string) *Meta {
	return &Meta{
		whatsAppToken: whatsAppToken,
		phoneNumberID: phoneNumberID,
		pageToken:     pageToken,
		verifyToken:   verifyToken,
	}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, dataDir string) *Repository {
	return &Repository{
		backend: backend,
		dataDir: dataDir,
	}
}
