// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ConfigStore: Application configuration
//   - TextRestorer: Local rule-based restoration (always available)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ModelService: External restoration model. Without it, every request
//     is served by the heuristic engine.
//   - PromptStore: Customisable prompts for chat-style model providers.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
