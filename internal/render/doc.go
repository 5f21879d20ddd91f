// Package render presents analysis results in the terminal and supplies the
// color mapping a graphical renderer needs.
//
// Node colors follow one of several modes. Sequential modes map a node
// counter onto a color ramp whose domain is the extent of that counter over
// all nodes; the ramp is cached per mode and rebuilt only when the extent
// changes.
package render
