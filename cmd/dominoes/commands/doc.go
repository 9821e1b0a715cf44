// Package commands implements the dominoes command line: the root command
// opens the window, and "config" prints the resolved configuration.
package commands
