package classifier

import (
	"encoding/json"
	"fmt"
)

// systemPromptTemplate implements spec.md §6.2's two-slot system prompt:
// a JSON-encoded context[] of {id, text} and a JSON-encoded target {id,
// text}.
const systemPromptTemplate = `You are classifying atoms of a scholarly document into a typed knowledge graph.

Given the target atom and the atoms that precede it in the current paragraph sequence, assign the target a classification and propose any relationships it has to atoms in the context.

Context atoms (earlier in reading order):
%s

Target atom:
%s

Respond with a single JSON object: {"classification": "<class>", "justification": "<string>", "relationships": [{"target_id": "<atom-id>", "type": "<relation-name>", "direction": "outgoing"|"incoming", "justification": "<string>"}, ...]}`

const userPrompt = "Classify the target atom now."

type promptAtom struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func buildSystemPrompt(target Target, contextAtoms []ContextAtom) (string, error) {
	contextPayload := make([]promptAtom, len(contextAtoms))
	for i, c := range contextAtoms {
		contextPayload[i] = promptAtom{ID: c.ID, Text: c.Text}
	}
	contextJSON, err := json.Marshal(contextPayload)
	if err != nil {
		return "", fmt.Errorf("encoding context atoms: %w", err)
	}

	targetJSON, err := json.Marshal(promptAtom{ID: target.ID, Text: target.Text})
	if err != nil {
		return "", fmt.Errorf("encoding target atom: %w", err)
	}

	return fmt.Sprintf(systemPromptTemplate, string(contextJSON), string(targetJSON)), nil
}
