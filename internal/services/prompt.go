package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildProfileExtractionPrompt asks for the experience level and skills in a CV.
func (pb *PromptBuilder) BuildProfileExtractionPrompt(cvText string) string {
	return fmt.Sprintf(`You are an expert technical recruiter reading an anonymized CV.

CANDIDATE CV:
%s

Identify the candidate's overall experience level and the concrete technical and professional skills they demonstrate.
Do not include names, employers, universities or locations.

Return your response in the following JSON format:
{
  "experience_level": "<Intern | Junior | Mid-Level | Senior | Lead>",
  "skills": ["<skill>", "..."]
}

Return ONLY the JSON object.`, cvText)
}

// BuildAnswerEvaluationPrompt creates the grading prompt for one interview answer.
func (pb *PromptBuilder) BuildAnswerEvaluationPrompt(question, modelAnswer, candidateAnswer, experienceLevel, strictness string) string {
	if experienceLevel == "" {
		experienceLevel = "Mid-Level"
	}
	if strictness == "" {
		strictness = "Moderate"
	}

	return fmt.Sprintf(`You are a fair, bias-aware technical interviewer grading a written answer.

CANDIDATE EXPERIENCE LEVEL: %s
GRADING STRICTNESS: %s

QUESTION:
%s

MODEL ANSWER:
%s

CANDIDATE ANSWER:
%s

Your task:
1. Rewrite the candidate answer with every piece of personally identifiable information (names, organizations, universities, locations, contact details) replaced by a bracketed placeholder such as [Candidate], [Company], [University] or [Location]. Change nothing else.
2. Score the answer from 0 to 10 against the model answer, calibrated to the experience level and strictness.
3. Write 2-4 sentences of constructive feedback addressed to the candidate.

Return your response in the following JSON format:
{
  "redacted_answer": "<candidate answer with PII replaced>",
  "score": <0-10>,
  "feedback": "<feedback>",
  "pii_detected": <true | false>
}

Judge only the technical content. Ignore writing style, accent markers and any personal details.`,
		experienceLevel, strictness, question, modelAnswer, candidateAnswer)
}

// BuildRejectionEmailPrompt creates the prompt for a rejection email body.
func (pb *PromptBuilder) BuildRejectionEmailPrompt(candidateName, jobTitle, feedback string) string {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		feedback = "No specific feedback was recorded."
	}

	return fmt.Sprintf(`You are a considerate hiring manager writing to a candidate who was not selected for the %s position.

CANDIDATE NAME: %s

INTERVIEW FEEDBACK SUMMARY:
%s

Write a short, warm and professional rejection email that:
1. Thanks the candidate by name for their time
2. States clearly that they were not selected
3. Shares one or two constructive points drawn from the feedback
4. Encourages them to apply for future roles

Return ONLY the email body as HTML using <p>, <ul>, <li> and <strong> tags. Do not include a subject line, <html> or <body> tags.`,
		jobTitle, candidateName, feedback)
}
