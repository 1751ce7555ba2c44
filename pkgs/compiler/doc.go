// Package compiler translates command-line argument strings into TCL programs
// that build, save, and execute node scripts in the host application.
//
// Basic usage syntax is:
//
//	-<class> [knob1 value1] ... [knobN valueN] [-<command> [arg]...]
//
// <class> is the name of a node class (grade, read, write, merge, and so on).
// Class names may be miscased or partial as long as they resolve to exactly
// one catalog entry. Knobs are always given in name/value pairs.
//
// # Knobs
//
// Knob values with multiple components are passed in curly braces:
//
//	-grade blackpoint {.015 .016 .109 .1}
//
// Multi-dimensional values use nested brace sets, as in a camera matrix:
//
//	-camera useMatrix true matrix {{.1 .2 .3 .4} {.5 .6 .7 .8} {1 1 2 2} {3 3 4 4}}
//
// # Connections
//
// The host builds node networks with a stack: the most recently created node
// sits at the top (index 0) and new nodes fill their inputs from the stack in
// order. To feed a Merge the last two created nodes:
//
//	-merge operation plus inputs 2
//
// # Commands
//
// Four keyword commands manipulate the stack and the script:
//
//   - set <name> stores the current stack top under a variable name:
//     -grade blackpoint .015 -set mygrade
//   - push <name> recalls a stored node to the stack top; push 0 leaves the
//     next node's corresponding input deliberately disconnected:
//     -push renderCam -push renderScene -push 0 -scanlinerender inputs 3
//   - execute [first-last] runs an executable node. All execute commands are
//     registered in encounter order and appended after the full script is
//     built, so later nodes exist before any side effects fire. Without an
//     explicit range the node's own first/last knob values are used:
//     -write /path/out.%04d.exr -execute 1-10
//   - save <path> [force] writes the script as it exists at that point in the
//     command sequence. An existing target is skipped with a warning unless
//     the literal force argument is given.
package compiler
