package service

import (
	"fmt"

	"study-helper/internal/domain"
)

const promptHeader = `Topic: %s
Context: %s

Generate educational study material in JSON format with the following structure:`

const regularPromptBody = `

{
  "summary": ["bullet point 1", "bullet point 2", "bullet point 3"],
  "quiz": [
    {
      "question": "Question text",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0
    }
  ],
  "studyTip": "A practical study tip"
}

Requirements:
- Summary: 3 concise bullet points covering key concepts
- Quiz: 3 multiple-choice questions with 4 options each
- correctAnswer: index (0-3) of the correct option
- Study Tip: One actionable tip for learning this topic effectively

Return ONLY valid JSON, no additional text.`

const mathPromptBody = `

{
  "summary": ["bullet point 1", "bullet point 2", "bullet point 3"],
  "quiz": [
    {
      "question": "A quantitative or logic problem related to %s",
      "answer": "The correct answer",
      "explanation": "Step-by-step explanation of how to solve it"
    }
  ],
  "studyTip": "A practical study tip for mastering this topic"
}

Requirements:
- Summary: 3 concise bullet points covering key concepts
- Quiz: 1 mathematical/quantitative question with numerical answer and detailed explanation
- Study Tip: One actionable tip for learning this topic effectively

Return ONLY valid JSON, no additional text.`

// BuildPrompt renders the provider instruction for a topic. It is pure.
func BuildPrompt(info domain.TopicInfo, mode domain.StudyMode) string {
	header := fmt.Sprintf(promptHeader, info.Title, info.Extract)
	if mode == domain.ModeMath {
		return header + fmt.Sprintf(mathPromptBody, info.Title)
	}
	return header + regularPromptBody
}
