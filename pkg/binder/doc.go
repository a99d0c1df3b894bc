// Package binder injects generated markup into the marker containers of a
// render surface.
//
// Binding runs in two passes. Discovery walks the surface once and tags every
// marker container with a ContainerKind. Each kind is then handed to the
// Section registered for it, which renders its records through the template
// engine, sanitises the fragment and replaces the container content. A
// section that has no container or no data is skipped and recorded in the
// Report; it never prevents the other sections from binding.
package binder
