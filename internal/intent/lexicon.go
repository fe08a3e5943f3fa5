package intent

// Entry maps one intent to the lowercase phrases that suggest it and the base
// confidence assigned when every phrase matches.
type Entry struct {
	Intent         Intent
	Keywords       []string
	BaseConfidence float64
}

// Lexicon is an ordered list of entries. The order is load-bearing: when two
// entries score equally, the earlier one wins. Keyword sets may overlap
// across entries; ambiguity is resolved by scoring, not by exclusivity.
type Lexicon []Entry

// DefaultLexicon returns the built-in intent table. Built once at startup and
// never mutated afterwards, so it is safe to share across request handlers.
func DefaultLexicon() Lexicon {
	return Lexicon{
		{
			Intent:         Greeting,
			Keywords:       []string{"hello", "hi there", "hey", "good morning", "good afternoon", "good evening", "greetings"},
			BaseConfidence: 0.9,
		},
		{
			Intent:         JobSearch,
			Keywords:       []string{"find a job", "find me a job", "search job", "looking for a job", "job opening", "vacancy", "vacancies", "hiring", "open position", "opportunities"},
			BaseConfidence: 0.85,
		},
		{
			Intent:         SalaryInfo,
			Keywords:       []string{"salary", "how much do", "compensation", "wage", "pay range"},
			BaseConfidence: 0.8,
		},
		{
			Intent:         BestSalary,
			Keywords:       []string{"best salary", "highest salary", "top paying job", "best paying job", "highest paid"},
			BaseConfidence: 0.85,
		},
		{
			Intent:         MostPayingField,
			Keywords:       []string{"most paying field", "best field", "highest paying industry", "top industry", "which field pays"},
			BaseConfidence: 0.85,
		},
		{
			Intent:         HowToGetJob,
			Keywords:       []string{"how to get a job", "how do i get hired", "land a job", "get hired", "tips for getting"},
			BaseConfidence: 0.8,
		},
		{
			Intent:         RemoteWork,
			Keywords:       []string{"remote", "work from home", "telecommute", "work from anywhere"},
			BaseConfidence: 0.85,
		},
		{
			Intent:         Companies,
			Keywords:       []string{"company", "companies", "employer", "employers", "who is hiring"},
			BaseConfidence: 0.8,
		},
		{
			Intent:         CareerGuidance,
			Keywords:       []string{"career advice", "career guidance", "career path", "switch careers", "grow professionally"},
			BaseConfidence: 0.75,
		},
		{
			Intent:         InterviewPrep,
			Keywords:       []string{"interview", "prepare for an interview", "interview questions", "interview tips"},
			BaseConfidence: 0.85,
		},
		{
			Intent:         ProfileCompletion,
			Keywords:       []string{"my profile", "complete my profile", "resume", "update my profile", "upload my cv"},
			BaseConfidence: 0.8,
		},
		{
			Intent:         AboutPlatform,
			Keywords:       []string{"about careerlink", "what is careerlink", "about this platform", "how does this work", "who are you"},
			BaseConfidence: 0.8,
		},
		{
			Intent:         Help,
			Keywords:       []string{"help", "what can you do", "assist me", "support"},
			BaseConfidence: 0.75,
		},
	}
}
