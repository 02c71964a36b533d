package usecase

// Export for testing
var MaskWebhookURL = maskWebhookURL

// NewConfigServiceWithHome creates a config service rooted at homeDir
func NewConfigServiceWithHome(homeDir string) *configService {
	return &configService{homeDir: homeDir}
}
