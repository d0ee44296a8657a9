// Package openai provides an ai.Embedder implementation backed by
// OpenAI-compatible embedding APIs via langchaingo.
package openai
