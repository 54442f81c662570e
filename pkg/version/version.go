package version

var (
	// These values are injected during build - DO NOT MODIFY
	Version   = "VERSION_PLACEHOLDER"
	CommitSHA = "COMMIT_PLACEHOLDER"
)

const appName = "AnkiHelper"

func GetVersionInfo() string {
	return appName + " " + Version
}

func GetDetailedVersionInfo() string {
	return appName + "\n" +
		"Version:  " + Version + "\n" +
		"Commit:   " + CommitSHA + "\n"
}
