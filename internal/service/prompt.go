package service

import "strings"

// DefaultMaxDocumentChars bounds how much of the document goes into a prompt.
const DefaultMaxDocumentChars = 12000

// BuildPrompt embeds up to limit characters of documentText ahead of the
// question. Without a document the prompt is the question alone. A limit of
// zero or less disables truncation.
func BuildPrompt(documentText, question string, limit int) string {
	if documentText == "" {
		return question
	}

	var sb strings.Builder
	sb.WriteString("\nYou are a helpful assistant.\n\n")
	sb.WriteString("Here is a document provided by the user:\n")
	sb.WriteString(truncateChars(documentText, limit))
	sb.WriteString("\n\nQuestion:\n")
	sb.WriteString(question)
	sb.WriteString("\n\nAnswer the question. Use the provided document if it contains relevant information.\n")
	sb.WriteString("If the answer is not found in the document, use your general knowledge to answer helpfully.\n")
	return sb.String()
}

// truncateChars returns the first limit code points of s.
func truncateChars(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
