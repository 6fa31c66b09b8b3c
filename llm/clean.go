package llm

import "strings"

// Clean normalizes generated text: trims whitespace, collapses duplicate
// blank lines, and drops a trailing incomplete sentence (text not ending in
// '.', '!' or '?' loses its final fragment).
func Clean(text string) string {
	if text == "" {
		return "I'm sorry, I couldn't generate a response at this time. Please try again."
	}

	response := strings.TrimSpace(text)
	response = strings.ReplaceAll(response, "\n\n", "\n")
	response = strings.TrimSpace(response)

	if response != "" && !strings.ContainsRune(".!?", rune(response[len(response)-1])) {
		sentences := strings.Split(response, ".")
		if len(sentences) > 1 {
			response = strings.Join(sentences[:len(sentences)-1], ".") + "."
		}
	}

	return response
}
