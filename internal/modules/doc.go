// Package modules contains self-contained application features.
//
// Each subdirectory is a module implementing the `module.Module` interface.
// Modules are listed in `internal/app/modules.go` and booted by the server
// under a route group named after the module.
package modules
