package classifier

import (
	"fmt"
	"strings"

	"fieldscope/internal/taxonomy"
)

// SystemPrompt pins the model to machine-parseable output.
const SystemPrompt = "You are a research field classification expert. Return only valid JSON with field codes and percentages."

const promptRules = `## Classification Instructions:
1. Read the title and abstract carefully to understand:
   - Main research objectives and methodology
   - Key technologies, algorithms, or theories used
   - Application domains and target problems
   - Interdisciplinary connections

2. Match paper content to SPECIFIC 4-digit field codes:
   - Identify the primary methodology field first
   - Then the application domain field
   - Then supporting and minor fields, including interdisciplinary aspects

3. Assign confidence percentages (total=100%):
   - Primary field: 25-40%
   - Secondary field: 20-30%
   - Supporting fields: 10-20% each
   - Minor relevant fields: 5-10% each

## Few-Shot Examples:

Example 1:
Title: "Deep Learning for Medical Image Segmentation: A Survey"
Abstract: "This survey reviews deep learning techniques for medical image segmentation, including U-Net, FCN, and attention mechanisms..."
Result: [{"code": 1702, "percentage": 35}, {"code": 2741, "percentage": 25}, {"code": 1707, "percentage": 20}, {"code": 2718, "percentage": 10}, {"code": 1706, "percentage": 6}, {"code": 2730, "percentage": 4}]

Example 2:
Title: "Blockchain-Based Supply Chain Management: Challenges and Solutions"
Abstract: "This paper proposes a blockchain architecture for supply chain traceability using smart contracts and IoT sensors..."
Result: [{"code": 1710, "percentage": 30}, {"code": 1408, "percentage": 25}, {"code": 1705, "percentage": 20}, {"code": 2208, "percentage": 12}, {"code": 1706, "percentage": 8}, {"code": 1712, "percentage": 5}]

## CRITICAL Rules:
- Use ONLY SPECIFIC 4-digit codes (1702, 1705, 2208, etc.)
- NEVER use general 2-digit codes ending in "00" (1700, 2200, 2700)
- Percentages must sum to exactly 100%
- Return ONLY a valid JSON array

## Your Response (JSON only):
`

// BuildPrompt renders the full classification instruction for one paper.
// Deterministic for identical inputs.
func BuildPrompt(title, abstract string, reg *taxonomy.Registry, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this research paper deeply and identify the %d most relevant SPECIFIC Scopus research fields.\n\n", n)
	b.WriteString("## Paper to Classify:\n")
	fmt.Fprintf(&b, "Title: %s\n\n", title)
	fmt.Fprintf(&b, "Abstract: %s\n\n", abstract)
	b.WriteString("## Available Scopus Fields:\n")
	b.WriteString(renderFieldList(reg))
	b.WriteString("\nCRITICAL: Choose ONLY 4-digit specific codes, NEVER general codes ending in \"00\".\n\n")
	b.WriteString(promptRules)
	return b.String()
}

func renderFieldList(reg *taxonomy.Registry) string {
	var b strings.Builder
	for _, g := range reg.Groups() {
		fmt.Fprintf(&b, "\n%s:\n", g.Name)
		parts := make([]string, 0, len(g.Fields))
		for _, f := range g.Fields {
			parts = append(parts, f.Code+"-"+f.Name)
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString("\n")
	}
	return b.String()
}
