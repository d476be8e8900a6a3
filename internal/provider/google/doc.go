// Package google provides the Gemini API backend implementing [switchboard.ChatProvider].
package google
