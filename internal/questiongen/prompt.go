package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert English teacher creating grammar practice questions for intermediate learners. Every question must target exactly one of the provided grammar rules, use natural everyday English, and come with a short explanation a learner can act on. Respond with JSON only.`

// buildPrompt renders the user message for a generation request.
func buildPrompt(in GenerateInput, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d English grammar practice questions covering these grammar rules:\n\n", count)
	for _, r := range in.Rules {
		fmt.Fprintf(&b, "%s: %s - %s\n", r.ID, r.Title, r.Description)
	}

	b.WriteString("\nRequirements:\n")
	fmt.Fprintf(&b, "1. Distribute questions evenly across all %d rules\n", len(in.Rules))
	b.WriteString("2. Mix question types: 40% multiple-choice, 30% fill-blank, 20% error-correction, 10% sentence-construction\n")
	b.WriteString("3. Multiple-choice questions must have exactly 4 options, with the correct answer included among them\n")
	b.WriteString("4. Fill-blank questions use ___ to mark the blank\n")
	b.WriteString("5. Error-correction questions present an incorrect sentence to fix\n")
	b.WriteString("6. Sentence-construction questions give words to arrange into a correct sentence\n")
	b.WriteString("7. Every question needs a concise explanation of the rule being tested\n")
	fmt.Fprintf(&b, "8. Use sequential question IDs starting at %q\n", in.StartID)

	b.WriteString("\nReturn as a JSON object with a single property \"questions\" containing the array of question objects. Each question object has: id, ruleId, type, question, correctAnswer, explanation, and options (multiple-choice only).")

	return b.String()
}
