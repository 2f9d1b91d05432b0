// Package build drives one template build from paths on disk to a written
// artifact, and runs many of them concurrently.
//
// The output path decides the artifact: ".c" produces the implementation,
// ".h" the declaration. The identifier comes from the output path, so
// "views/index.c" and "views/index.h" agree on balde_template_index.
package build
