package client

import "embed"

// embeddedPrompts holds the built-in prompt templates so packaged executables
// can load them without needing access to the source tree.
//
//go:embed prompts/*.txt
var embeddedPrompts embed.FS

// ForensicPrompt returns the fixed 30-agent pipeline instruction payload,
// including the JSON structure example the model is told to mirror.
func ForensicPrompt() string {
	data, err := embeddedPrompts.ReadFile("prompts/forensic_pipeline.txt")
	if err != nil {
		// The prompt is compiled into the binary; a read failure here is a
		// packaging bug, not a runtime condition.
		panic("missing embedded forensic prompt: " + err.Error())
	}
	return string(data)
}
