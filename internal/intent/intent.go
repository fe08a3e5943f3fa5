package intent

// Intent identifies what the user is trying to accomplish with a message.
// The catalog is closed: new intents are added here and nowhere else.
type Intent string

const (
	Greeting          Intent = "greeting"
	JobSearch         Intent = "job_search"
	SalaryInfo        Intent = "salary_info"
	BestSalary        Intent = "best_salary"
	MostPayingField   Intent = "most_paying_field"
	HowToGetJob       Intent = "how_to_get_job"
	RemoteWork        Intent = "remote_work"
	Companies         Intent = "companies"
	CareerGuidance    Intent = "career_guidance"
	InterviewPrep     Intent = "interview_prep"
	ProfileCompletion Intent = "profile_completion"
	AboutPlatform     Intent = "about_platform"
	Help              Intent = "help"
	Generic           Intent = "generic"
	// Error is reserved for callers that need to render a failure reply.
	// Classification never produces it.
	Error Intent = "error"
)

// Classification is the outcome of resolving a single message. Confidence is
// a ranking signal, not a calibrated probability.
type Classification struct {
	Intent     Intent
	Confidence float64
}
