// Package anthropic implements sentiment.Model on the Anthropic messages API
// using github.com/anthropics/anthropic-sdk-go.
package anthropic
