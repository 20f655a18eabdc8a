// Package prompts holds the prompt templates sent to the language model.
package prompts

import "embed"

//go:embed *.txt
var FS embed.FS
