package reply

import (
	"math/rand/v2"
	"strings"

	"github.com/careerlink/assistant/internal/intent"
)

// Store holds the per-intent response variants. Built once at startup and
// never mutated afterwards, so it is safe to share across request handlers.
// Variant selection goes through an injectable picker so tests can pin it.
type Store struct {
	variants map[intent.Intent][]string
	pick     func(n int) int
}

// NewStore builds a store over the given variants. A nil picker selects
// uniformly at random; repeated calls for the same intent may legitimately
// return different text.
func NewStore(variants map[intent.Intent][]string, pick func(n int) int) *Store {
	if pick == nil {
		pick = rand.IntN
	}
	return &Store{variants: variants, pick: pick}
}

// Template returns one raw, unfilled variant for the intent. Unknown intents
// fall back to the generic variants.
func (s *Store) Template(in intent.Intent) string {
	variants, ok := s.variants[in]
	if !ok || len(variants) == 0 {
		variants = s.variants[intent.Generic]
	}
	if len(variants) == 0 {
		return ""
	}
	return variants[s.pick(len(variants))]
}

// Assemble selects a template for the intent and interpolates the supplied
// placeholder values. Placeholders without a value are left in place; that
// is a caller error, not validated here.
func (s *Store) Assemble(in intent.Intent, fills map[string]string) string {
	text := s.Template(in)
	for key, value := range fills {
		text = strings.ReplaceAll(text, "{"+key+"}", value)
	}
	return text
}

// DefaultTemplates returns the built-in response variants. Placeholder names
// must match the keys the caller fills from the formatters.
func DefaultTemplates() map[intent.Intent][]string {
	return map[intent.Intent][]string{
		intent.Greeting: {
			"Hello! I'm the CareerLink assistant. Ask me about jobs, companies, or salaries.",
			"Hi! Looking for your next opportunity? I can help with jobs, salaries, and career tips.",
			"Hey there! What can I help you with today?",
		},
		intent.JobSearch: {
			"Here are some openings you might like:\n\n{jobs}",
			"I found these jobs for you:\n\n{jobs}\n\nTell me a skill or city to narrow it down.",
		},
		intent.SalaryInfo: {
			"Here's what salaries look like right now. {stats}",
			"A quick salary overview: {stats}",
		},
		intent.BestSalary: {
			"These are the best-paying openings right now:\n\n{topJobs}",
			"Top of the salary board today:\n\n{topJobs}",
		},
		intent.MostPayingField: {
			"Here's how fields rank by pay:\n\n{fields}",
			"The highest-paying fields on CareerLink:\n\n{fields}",
		},
		intent.HowToGetJob: {
			"Three things that work: complete your profile, tailor your application to each posting, and apply early. Want me to find openings to start with?",
			"Start with a complete profile and a short, specific cover message. Recruiters on CareerLink reply fastest within the first days of a posting.",
		},
		intent.RemoteWork: {
			"Plenty of remote roles here. A few examples:\n\n{exampleJobs}",
			"Remote-friendly openings right now:\n\n{exampleJobs}",
		},
		intent.Companies: {
			"These companies are hiring on CareerLink:\n\n{companies}",
			"Some employers currently active:\n\n{companies}",
		},
		intent.CareerGuidance: {
			"Happy to help with career planning. Tell me where you are today and where you want to be, and I'll suggest a path.",
			"Career moves are easier with data. Tell me your field and experience level and I'll show you what's out there.",
		},
		intent.InterviewPrep: {
			"For interviews: research the company, prepare two stories per skill on the posting, and have questions ready for them. Want openings to practice against?",
			"Interview tip: match your answers to the posting's own wording. Recruiters screen for it.",
		},
		intent.ProfileCompletion: {
			"A complete profile gets noticed. Add your skills, experience, and a short summary, then keep it fresh.",
			"Profiles with skills and a summary filled in get significantly more recruiter views. Yours is a few clicks away from complete.",
		},
		intent.AboutPlatform: {
			"CareerLink connects job seekers with vetted employers. Search openings, track applications, and get salary insight, all in one place.",
			"I'm the CareerLink assistant. The platform lists curated openings with verified employers and transparent salary data.",
		},
		intent.Help: {
			"I can search jobs, show salary data, list hiring companies, and share interview or career tips. Just ask in your own words.",
			"Ask me things like \"find remote go jobs\", \"which field pays best\", or \"how do I prepare for an interview\".",
		},
		intent.Generic: {
			"I'm not sure I caught that. I can help with job search, salaries, companies, and career advice.",
			"Could you rephrase? Try asking about jobs, salaries, or companies.",
		},
		intent.Error: {
			"Something went wrong on my side. Please try that again.",
		},
	}
}
