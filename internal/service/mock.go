package service

import (
	"fmt"

	"study-helper/internal/domain"
)

// MockContent returns fixed study content for a topic title. It needs no
// network access and always satisfies StudyContent.Validate.
func MockContent(title string, mode domain.StudyMode) domain.StudyContent {
	if mode == domain.ModeMath {
		return domain.StudyContent{
			Summary: []string{
				fmt.Sprintf("%s involves mathematical concepts and quantitative reasoning", title),
				"Understanding the fundamental principles is key to solving problems",
				"Practice with varied examples helps build problem-solving skills",
			},
			Quiz: []domain.QuizItem{
				domain.QuizMath{
					Question:    fmt.Sprintf("Solve a problem related to %s: If x + 5 = 12, what is x?", title),
					Answer:      "7",
					Explanation: "Subtract 5 from both sides: x = 12 - 5 = 7",
				},
			},
			StudyTip: fmt.Sprintf("Practice %s problems daily, starting with simple examples and gradually increasing difficulty. Work through each step methodically.", title),
		}
	}

	return domain.StudyContent{
		Summary: []string{
			fmt.Sprintf("%s is an important concept with wide-ranging applications", title),
			"Key principles include understanding the fundamental mechanisms and relationships",
			fmt.Sprintf("Practical applications demonstrate the real-world relevance of %s", title),
		},
		Quiz: []domain.QuizItem{
			domain.QuizMCQ{
				Question: fmt.Sprintf("What is a key characteristic of %s?", title),
				Options: []string{
					"It involves complex interactions",
					"It is completely random",
					"It has no practical use",
					"It cannot be studied",
				},
				CorrectAnswer: 0,
			},
			domain.QuizMCQ{
				Question: fmt.Sprintf("Which field commonly uses %s?", title),
				Options: []string{
					"Unrelated fields",
					"Relevant scientific or practical fields",
					"No fields use it",
					"Only theoretical physics",
				},
				CorrectAnswer: 1,
			},
			domain.QuizMCQ{
				Question: fmt.Sprintf("What is important when studying %s?", title),
				Options: []string{
					"Ignoring the basics",
					"Understanding core concepts first",
					"Memorizing without understanding",
					"Avoiding practice",
				},
				CorrectAnswer: 1,
			},
		},
		StudyTip: fmt.Sprintf("Create a mind map connecting different aspects of %s. Use visual aids and real-world examples to reinforce your understanding.", title),
	}
}
