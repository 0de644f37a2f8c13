// Package config reads and writes style settings files.
//
// Two kinds of files are recognised. A project file lives in the project
// directory under one of the names in consts.ProjectConfigFiles, and a
// personal file lives under the user's config directory. A Loader resolves
// the effective style from them in that order, falling back to
// style.Default.
package config
