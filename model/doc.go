// Package model defines the provider-agnostic abstraction over language
// models used to resolve free text into ledger tool calls.
//
//   - Request / Response carry normalized core.Content plus tool definitions
//   - Providers (model/openai, model/anthropic) implement Model
//   - ScriptedModel replays canned responses for tests and offline runs
package model
