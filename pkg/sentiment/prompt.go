package sentiment

// SystemInstruction seeds every model session. It fixes the task, the
// labeled output format and five worked examples.
const SystemInstruction = `## Sentiment Analysis Instructions

**Task:** Analyze the sentiment expressed in the given text and classify it as positive, negative, or neutral. Provide a clear and concise explanation for your classification. Crucially, provide a sentiment score as a *number* between -1.0 and +1.0.

**Input:** [The text to be analyzed]

**Output Format:** Sentiment: [Sentiment Category] - Reason: [Explanation] - Score: [Sentiment Score]

**Sentiment Categories:**

*   **Positive:** Expresses favorable opinions, emotions, or attitudes. Examples include praise, appreciation, excitement, joy, and approval.
*   **Negative:** Expresses unfavorable opinions, emotions, or attitudes. Examples include criticism, disappointment, anger, sadness, and disapproval.
*   **Neutral:** Expresses neither positive nor negative sentiment. Examples include factual statements, objective descriptions, and information without emotional tone. Ambiguous or mixed sentiment should lean towards neutral unless one sentiment clearly outweighs the other.

**Reasoning Guidelines:**

*   The reason should clearly justify the chosen sentiment category.
*   Refer to specific words, phrases, or sentence structures in the input text that support your analysis.
*   Explain *why* those elements indicate the identified sentiment.
*   Avoid vague or generic explanations like "the text sounds positive." Be specific.
*   For neutral sentiment, explain why the text lacks clear positive or negative indicators.

**Example 1:**

**Input:** "The movie was absolutely fantastic! The acting was superb, and the plot was captivating from beginning to end. I highly recommend it."

**Output:** Sentiment: Positive - Reason: The text contains strong positive words like "fantastic," "superb," and "captivating." The phrase "highly recommend" explicitly expresses approval. These elements clearly indicate a positive sentiment towards the movie. - Score: 0.9

**Example 2:**

**Input:** "I was extremely disappointed with the service. The staff was rude and unhelpful, and my order was completely wrong. I will never go back."

**Output:** Sentiment: Negative - Reason: Words like "disappointed," "rude," and "unhelpful" express negative feelings. The statement "my order was completely wrong" indicates a negative experience. The phrase "I will never go back" reinforces the negative sentiment. - Score: -0.8

**Example 3:**

**Input:** "The meeting is scheduled for 3 PM tomorrow in conference room B."

**Output:** Sentiment: Neutral - Reason: The text provides factual information about a meeting. It does not contain any words or phrases that express positive or negative emotions or opinions. - Score: 0.0

**Example 4 (Ambiguous):** "The movie was long, but it had some interesting moments."

**Output:** Sentiment: Neutral - Reason: While "long" could be seen as slightly negative, it's balanced by "interesting moments," creating a mixed sentiment. Without more context, the overall sentiment leans towards neutral as neither positive nor negative clearly outweighs the other. - Score: 0.1

**Example 5 (Mixed but leaning):** "The movie started slow and I almost left, but the ending was surprisingly good. I'm glad I stayed."

**Output:** Sentiment: Positive - Reason: Although the initial part of the movie was perceived negatively ("started slow," "almost left"), the overall sentiment is positive due to the "surprisingly good" ending and the expression of gladness ("I'm glad I stayed"). The positive sentiment at the end outweighs the initial negativity. - Score: 0.6

**Important Considerations:**

*   **Context:** Sentiment can be context-dependent. Use the provided context when present.
*   **Sarcasm/Irony:** Recognize sarcasm and irony, which can invert the apparent sentiment.
*   **Negation:** Handle negation words (e.g., "not," "no," "never") correctly.
*   **Intensity:** Consider the intensity of sentiment (e.g., "good" vs. "amazing").
*   **Subjectivity:** Distinguish between subjective opinions and objective facts.

*IMPORTANT: The final line of your output *must* be in the format 'Score: [Sentiment Score]' where [Sentiment Score] is a *number* between -1.0 and 1.0. *No additional text should follow the score.* Do not add any parenthesis or quotes. Just the output.`

// JSONInstruction is appended to SystemInstruction when sessions are paired
// with JSONGrammar.
const JSONInstruction = `

**Structured output:** Instead of the labeled line, reply with a single JSON object and nothing else:
{"sentiment": "<Positive|Negative|Neutral>", "reason": "<explanation>", "score": <number between -1.0 and 1.0>}`

// Acknowledgement is the seeded model turn that follows the instruction.
const Acknowledgement = "Understood. I will analyze sentiment according to your provided guidelines, strictly adhering to the specified output format, including providing a numerical sentiment score between -1.0 and 1.0 with no trailing text."

// Role identifies the author of a seeded turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message of the seeded conversation history.
type Turn struct {
	Role Role
	Text string
}

// Seed returns the two-turn history every session installs once at
// construction: the instruction as a user turn and the acknowledgement as a
// model turn. The returned slice is a fresh copy.
func Seed() []Turn {
	return SeedWith(SystemInstruction)
}

// SeedWith is like Seed with a custom instruction.
func SeedWith(instruction string) []Turn {
	return []Turn{
		{Role: RoleUser, Text: instruction},
		{Role: RoleModel, Text: Acknowledgement},
	}
}

// BuildPrompt renders the per-call instruction sent to the model.
func BuildPrompt(req Request) string {
	instruction := "Analyze the following text for sentiment"
	if req.Sarcasm {
		instruction += ", paying close attention to potential sarcasm"
	}
	return "Context: " + req.Context + "\n" + instruction + ":\n" + req.Text
}
