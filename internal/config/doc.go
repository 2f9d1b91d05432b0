// Package config loads the optional YAML configuration of balde-template-gen.
//
// The file can override the generator naming conventions, set the log level
// and list build jobs for the batch command. Job paths are resolved against
// the directory holding the file.
package config
