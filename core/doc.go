// Package core contains the business logic for the Marginalia API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Download, Highlight, Thought, etc.)
// - search: Article search across external sources and the local library
// - articles: Download persistence and article import
// - annotations: Highlight, thought, annotation and bookmark management
// - render: Anchoring annotations onto article content for display
// - export: Markdown export of downloads with their annotations
// - session: Reading session state and annotation jump navigation
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (storage, cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "marginalia-api/core/search"
//	    "marginalia-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	searchService := search.NewSearchService(deps, myStorage)
//
//	// Search for articles
//	suggestions, err := searchService.SearchArticles(ctx, "sleep research")
//
package core
