package llm

// SummarySystemPrompt is the fixed system instruction for the summarizer.
const SummarySystemPrompt = "You are a helpful assistant that summarizes text. Provide concise and clear summaries."

// BuildSummaryPrompt renders the fixed user instruction template.
func BuildSummaryPrompt(text string) string {
	return "Please summarize the following text:\n\n" + text
}
