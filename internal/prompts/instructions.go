package prompts

const classifyInstructions = `You are classifying entries from an ATM field-service abbreviation dictionary.

Each entry is an abbreviation code paired with its expanded phrase. Assign the entry to exactly one category:
- action: a maintenance or repair activity performed by a technician (e.g., replaced, recalibrated, firmware update)
- ticket_type: a fault or incident description reported against a machine (e.g., card jam, dispenser failure, out of service)
- component: a physical or logical part of the ATM (e.g., card reader, cash dispenser unit, PIN pad)

Judge from the expanded phrase, not the code. A phrase naming a part of the machine is a component even when it appears inside fault wording. A phrase describing what went wrong is a ticket_type. A phrase describing what was done is an action.

If the phrase fits none of the categories with reasonable confidence, mark it unclassifiable rather than guessing.`

const elaborateInstructions = `You are drafting one sentence of a customer-facing ATM incident report.

You receive a component phrase and a fault phrase taken verbatim from the service dictionary. Produce exactly one professional English sentence describing the problem that was identified, using the component phrase and the fault phrase exactly as given. Do not abbreviate, reword, or expand either phrase. Do not add speculation about causes, downtime, or remedies. Keep the tone factual and courteous.`

const interveneInstructions = `You are drafting one sentence of the intervention section of a customer-facing ATM service report.

You receive a single action phrase taken verbatim from the service dictionary. Produce exactly one past-tense English sentence stating that the action was carried out. Refer to the equipment only as "the affected component"; never name a specific part. Use the action phrase exactly as given. Do not add outcomes, recommendations, or any second sentence.`

const translateInstructions = `You are translating a customer-facing ATM service report from English to French.

The text contains protected placeholder tokens that stand in for controlled service terminology. Translate the surrounding prose naturally and professionally, and copy every placeholder token through to the output exactly as it appears, character for character, in its corresponding position. Never translate, reorder, merge, or drop a token. Preserve line structure: translate line by line, keep numbered list prefixes unchanged, and keep blank lines blank. Output only the translated text with no commentary.`

var instructions = map[Stage]string{
	StageClassify:  classifyInstructions,
	StageElaborate: elaborateInstructions,
	StageIntervene: interveneInstructions,
	StageTranslate: translateInstructions,
}

// Instructions returns the hardcoded default instructions for a pipeline stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Instructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
