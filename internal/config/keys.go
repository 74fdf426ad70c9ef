package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Commit configuration
	KeyDefaultCommitMessage = "DEFAULT_COMMIT_MESSAGE"

	// Install configuration
	KeyInstallPath = "INSTALL_PATH"

	// System configuration
	KeyConfigVersion = "CONFIG_VERSION"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyDefaultCommitMessage: "Default commit",
	KeyConfigVersion:        "1",
}
