package cli

var (
	ParseGitHubOwnerForTest = parseGitHubOwner
	EnvFilePathForTest      = envFilePath
	LoadEnvFileForTest      = loadEnvFile
)
