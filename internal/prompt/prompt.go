// Package prompt renders the fixed grading instruction sent to the model.
package prompt

import "fmt"

const gradingTemplate = `
You are an experienced academic instructor grading student projects.

Student Name: %s
Project File: %s

Project Content:
%s

Please provide detailed feedback on this student project following this structure:

1. **Overall Assessment** (Grade: A/B/C/D/F)
   - Brief summary of the project quality

2. **Strengths**
   - What the student did well
   - Specific examples from their work

3. **Areas for Improvement**
   - Specific areas that need work
   - Constructive suggestions

4. **Technical Quality**
   - Content organization and structure
   - Clarity of presentation

5. **Recommendations**
   - Specific next steps for improvement
   - Resources or techniques to explore

Please be constructive, specific, and encouraging while maintaining academic standards.
`

// Build substitutes the three inputs into the grading template. No length
// validation: oversized content is the provider's problem, not ours.
func Build(content string, studentName string, fileLabel string) string {
	return fmt.Sprintf(gradingTemplate, studentName, fileLabel, content)
}
