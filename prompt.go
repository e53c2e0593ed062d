package pixelgrid

import (
	"fmt"
	"strings"
)

// GridPromptPrefix explains the reference grid to a vision LLM consuming the
// annotated screenshot. Callers are expected to prepend it to their own task
// instructions.
const GridPromptPrefix = `This screenshot has a reference grid overlay (NOT part of the UI).
The grid divides the image into a 9x9 matrix labeled A-I (columns) and 1-9 (rows).
Use coordinates like "B3" or "F7" to reference specific locations.
Ignore the grid and white border when evaluating the UI design.

`

// defaultFocusAreas lists the common UX issues checked when the caller does
// not supply its own focus areas.
var defaultFocusAreas = []string{
	"Misaligned or inconsistently spaced elements",
	"Text truncation, overflow, or label issues",
	"Visual hierarchy problems",
	"Inconsistent padding or margins",
	"Accessibility concerns (contrast, touch target size)",
	"Broken or placeholder content",
}

// UXReviewPrompt generates a complete prompt for a UX screenshot review,
// including the grid explanation. A nil or empty focusAreas falls back to the
// default checklist.
func UXReviewPrompt(focusAreas []string) string {
	if len(focusAreas) == 0 {
		focusAreas = defaultFocusAreas
	}

	checks := make([]string, 0, len(focusAreas))
	for _, area := range focusAreas {
		checks = append(checks, "- "+area)
	}

	return fmt.Sprintf(`%sReview this app screenshot for UX issues. For each issue found:
1. State the grid coordinate (e.g., "C4")
2. Describe the problem
3. Suggest a fix

Check for:
%s

If no issues are found in a category, skip it. Be specific and actionable.`,
		GridPromptPrefix, strings.Join(checks, "\n"))
}
