// Package main is the entry point of the registrar CLI.
//
// registrar loads a YAML roster of learners, courses and enrollments into
// memory and prints the gradebook aggregates:
//
//	registrar report roster.yaml
//	registrar report roster.yaml --format json --timezone Asia/Almaty
//
// Configuration comes from the environment (APP_ENV, APP_TIMEZONE,
// LOG_LEVEL, LOG_FORMAT) and can be overridden by flags.
package main

import "github.com/alem-hub/gradebook/internal/interface/cli"

func main() {
	cli.Execute()
}
