package answer

import (
	"fmt"
	"strings"
)

// SystemPrompt frames every model call.
const SystemPrompt = `You are an expert in all aspects of South African law including military law,
criminal law, constitutional law, police procedures, and correctional services.
Provide accurate, detailed answers with references to specific sections and acts.
For military questions, reference the Defence Act and Military Discipline Act.
For police questions, reference SAPS Act and Criminal Procedure Act.
Always cite exact sections when possible.`

// FallbackText is returned when the model cannot be reached and the
// question is not officer-related.
const FallbackText = "System temporarily unavailable. Please try again later."

// OfficerFallbackText is the richer degraded-mode answer for
// officer-related questions.
const OfficerFallbackText = `Military Officer Procedures:

1. All officers subject to standard arrest procedures
2. Reference:
   - Defence Act Sections 20-29
   - Criminal Procedure Act Section 40

Recent example: 2025 arrests of senior officers`

// arrestEnhancement is appended to officer answers when the question
// mentions arrest.
const arrestEnhancement = `

Arrest Procedures:
- Defence Act Section 104 (Military police powers)
- Criminal Procedure Act Section 40 (Peace officer powers)
- 2025 Example: Crime Intelligence chief arrest`

// casesEnhancement is appended to every officer answer.
const casesEnhancement = `

Recent Cases:
- 2025: Senior SANDF officers disciplined
- 2024: SAPS generals suspended`

// BuildPrompt constructs the user prompt for general legal questions.
func BuildPrompt(question, legalContext string) string {
	return fmt.Sprintf(`Legal Context:
%s

Question: %s

Answer Requirements:
1. Provide specific references to South African law
2. Cite exact sections from relevant Acts
3. For military questions, reference Defence Act and Military Discipline Act
4. Include recent precedents if available
5. Provide step-by-step procedures where applicable`, legalContext, question)
}

// BuildOfficerPrompt constructs the specialized prompt for military
// officer questions.
func BuildOfficerPrompt(question, legalContext string) string {
	return fmt.Sprintf(`Military Officer Question:
%s

Legal Context:
%s

Required Answer Format:
1. Direct answer first
2. Cite sections from:
   - Defence Act (No. 42 of 2002)
   - Military Discipline Supplementary Measures Act
   - Criminal Procedure Act
3. Include 2023-2025 precedents
4. Step-by-step procedures
5. Special considerations for senior officers`, question, legalContext)
}

// EnhanceOfficerAnswer appends the fixed military boilerplate blocks: the
// arrest-procedure block only when the question mentions arrest, the
// recent-cases block always.
func EnhanceOfficerAnswer(answer, question string) string {
	var sb strings.Builder
	sb.WriteString(answer)
	if strings.Contains(strings.ToLower(question), "arrest") {
		sb.WriteString(arrestEnhancement)
	}
	sb.WriteString(casesEnhancement)
	return sb.String()
}

// FormatAnswer applies the section line-break heuristic: every occurrence
// of the literal token "Section" starts on its own line.
func FormatAnswer(answer string) string {
	return strings.TrimSpace(strings.ReplaceAll(answer, "Section", "\nSection"))
}
