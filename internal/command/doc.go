// Package command implements the balde-template-gen command line.
//
// The root command keeps the classic two-argument form used by build
// systems:
//
//	balde-template-gen template.html template.c
//	balde-template-gen template.html template.h
//
// Subcommands:
//   - batch: build every job listed in the config file
//   - inspect: print the parsed blocks and the resulting format string
package command
