// Package portfolio exposes the public contracts shared by the loader, dataset
// and binder stages: resource names, sources, raw documents, the typed
// portfolio records and the immutable Dataset assembled once per load.
// Loader implementations live under internal/portfolio to keep the transport
// details out of the public API.
package portfolio
