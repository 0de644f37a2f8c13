package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// SQLExtension is the file extension picked up when formatting directories
	SQLExtension = ".sql"

	// PersonalConfigDir is the directory under os.UserConfigDir holding personal settings
	PersonalConfigDir = "sqlfmt"

	// PersonalConfigFile is the personal settings file name inside PersonalConfigDir
	PersonalConfigFile = "config.yaml"
)

// ProjectConfigFiles lists the project settings file names in lookup order.
var ProjectConfigFiles = []string{
	".sqlformatter.yaml",
	".sqlformatter.yml",
	".sqlformatter.json",
}
