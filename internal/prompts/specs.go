package prompts

const classifySpec = `Respond with a JSON object matching this exact structure:

{
  "category": "<action|ticket_type|component|unclassifiable>",
  "rationale": "<explanation>"
}

Field constraints:
- category: Exactly one of action, ticket_type, component, or
  unclassifiable. Lowercase, no additional values.
- rationale: One or two sentences explaining why the expanded phrase
  belongs to the chosen category, or why it fits none of them.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Classify exactly one entry per response
- Judge from the expanded phrase, never from the abbreviation code
- Use unclassifiable instead of guessing when confidence is low`

const elaborateSpec = `Respond with a JSON object matching this exact structure:

{
  "sentence": "<one sentence>"
}

Field constraints:
- sentence: Exactly one English sentence describing the identified
  problem. Must contain the provided component phrase and fault phrase
  verbatim, unchanged in spelling and casing of their significant words.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- One sentence only, ending with a single period
- No speculation, no remedies, no causes beyond the given fault`

const interveneSpec = `Respond with a JSON object matching this exact structure:

{
  "sentence": "<one sentence>"
}

Field constraints:
- sentence: Exactly one past-tense English sentence stating the action
  was performed. Must contain the provided action phrase verbatim and
  must refer to the equipment only as "the affected component".

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- One sentence only, ending with a single period
- Never name a specific part of the machine`

const translateSpec = `Respond with the translated text only.

Output constraints:
- Plain text, no JSON wrapper, no markdown fencing, no commentary
- Same number of lines as the input, in the same order
- Numbered list prefixes (e.g., "1. ") copied unchanged
- Blank input lines stay blank
- Every placeholder token copied through exactly as received`

var specs = map[Stage]string{
	StageClassify:  classifySpec,
	StageElaborate: elaborateSpec,
	StageIntervene: interveneSpec,
	StageTranslate: translateSpec,
}

// Spec returns the hardcoded specification for a pipeline stage.
// Specifications define the expected output format and behavioral constraints.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
