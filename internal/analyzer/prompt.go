package analyzer

// AnalysisType names one analysis intent from the fixed set.
type AnalysisType string

const (
	AnalysisSummarize         AnalysisType = "summarize"
	AnalysisExtractKeyInfo    AnalysisType = "extract_key_info"
	AnalysisSentiment         AnalysisType = "analyze_sentiment"
	AnalysisFindContacts      AnalysisType = "find_contacts"
	AnalysisExtractTopics     AnalysisType = "extract_topics"
	AnalysisGenerateQuestions AnalysisType = "generate_questions"
	AnalysisCritique          AnalysisType = "critique"
	AnalysisKeywords          AnalysisType = "keywords"
)

// analysisPrompts is the immutable instruction table, one entry per intent.
var analysisPrompts = map[AnalysisType]string{
	AnalysisSummarize:         "Summarize the following content in 2-3 sentences, focusing on the main points:",
	AnalysisExtractKeyInfo:    "Extract the most important information, key facts, and main topics from this content:",
	AnalysisSentiment:         "Analyze the sentiment and tone of this content. Is it positive, negative, or neutral? Explain:",
	AnalysisFindContacts:      "Find any contact information, company names, or important details from this content:",
	AnalysisExtractTopics:     "What are the main topics and themes discussed in this content? List them:",
	AnalysisGenerateQuestions: "Generate 3-5 relevant questions that this content answers:",
	AnalysisCritique:          "Provide a brief critique or analysis of this content - what's good, what could be improved:",
	AnalysisKeywords:          "Extract the main keywords and important terms from this content:",
}

// AnalysisTypes returns the valid analysis intents in a stable order.
func AnalysisTypes() []AnalysisType {
	return []AnalysisType{
		AnalysisSummarize,
		AnalysisExtractKeyInfo,
		AnalysisSentiment,
		AnalysisFindContacts,
		AnalysisExtractTopics,
		AnalysisGenerateQuestions,
		AnalysisCritique,
		AnalysisKeywords,
	}
}

// promptFor returns the instruction for an intent. Unknown intents fall back
// to summarization rather than failing.
func promptFor(typ AnalysisType) string {
	if prompt, ok := analysisPrompts[typ]; ok {
		return prompt
	}
	return analysisPrompts[AnalysisSummarize]
}

// parseTemplate instructs the model to extract exactly what the caller
// described, with nothing extra, for free-form natural-language parsing.
const parseTemplate = `You are tasked with extracting specific information from the following text content: %s. ` +
	`Please follow these instructions carefully:

1. **Extract Information:** Only extract the information that directly matches the provided description: %s. ` +
	`2. **No Extra Content:** Do not include any additional text, comments, or explanations in your response. ` +
	`3. **Empty Response:** If no information matches the description, return an empty string ('').` +
	`4. **Direct Data Only:** Your output should contain only the data that is explicitly requested, with no other text.` +
	`5. **Format:** If multiple items are found, separate them with newlines or commas as appropriate.`
