package quiz

// Point values for the three answer grades.
const (
	PointsStrategic    = 2
	PointsIntermediate = 1
	PointsCritical     = 0
)

// Option is one selectable answer.
type Option struct {
	Label  string
	Points int
}

// Question is immutable reference data.
type Question struct {
	ID       int
	Category Category
	Prompt   string
	Options  []Option
}

// OptionFor returns the option worth the given points.
func (q Question) OptionFor(points int) (Option, bool) {
	for _, o := range q.Options {
		if o.Points == points {
			return o, true
		}
	}
	return Option{}, false
}

func opts(strategic, intermediate, critical string) []Option {
	return []Option{
		{Label: strategic, Points: PointsStrategic},
		{Label: intermediate, Points: PointsIntermediate},
		{Label: critical, Points: PointsCritical},
	}
}

var defaultQuestions = []Question{
	{
		ID:       1,
		Category: CategoryLeadership,
		Prompt:   "Do you have clear revenue and margin targets per store and per collection?",
		Options: opts(
			"Yes, I track targets per store and performance per collection",
			"I have overall targets, but not broken down per unit",
			"I don't work with structured targets",
		),
	},
	{
		ID:       2,
		Category: CategoryLeadership,
		Prompt:   "Is there a structured growth plan (new stores, product mix, digital channels)?",
		Options: opts(
			"Yes, with targets, deadlines and defined indicators",
			"I intend to grow, but without a formal plan",
			"I grow as opportunities come up",
		),
	},
	{
		ID:       3,
		Category: CategoryLeadership,
		Prompt:   "Do your stores run well without your constant presence?",
		Options: opts(
			"Yes, managers own results with autonomy",
			"Partly, they still depend on me",
			"Everything depends directly on me",
		),
	},
	{
		ID:       4,
		Category: CategoryCulture,
		Prompt:   "Does each store have clear targets and well-defined responsibilities?",
		Options: opts(
			"Yes, targets and roles are clear and followed up",
			"Partly defined",
			"Responsibilities are confusing",
		),
	},
	{
		ID:       5,
		Category: CategoryCulture,
		Prompt:   "Is the company culture strong enough to sustain decisions and behaviour without leadership stepping in?",
		Options: opts(
			"Yes, there is a clear identity and a consolidated standard",
			"In part, it still varies between stores",
			"No, cultural alignment is missing",
		),
	},
	{
		ID:       6,
		Category: CategoryCulture,
		Prompt:   "Do you track team performance indicators (conversion, average ticket, individual targets)?",
		Options: opts(
			"Yes, with frequent follow-up",
			"Sometimes, without a fixed routine",
			"I don't use clear indicators",
		),
	},
	{
		ID:       7,
		Category: CategoryFinance,
		Prompt:   "Do you know the real profit per store and per collection?",
		Options: opts(
			"Yes, with detailed control",
			"I have a general idea, but not per unit",
			"I don't have that clarity",
		),
	},
	{
		ID:       8,
		Category: CategoryFinance,
		Prompt:   "Are your prices set from margin, turnover and brand positioning?",
		Options: opts(
			"Yes, with a defined strategy",
			"I consider market and competitors, without a full calculation",
			"I mostly price by comparison",
		),
	},
	{
		ID:       9,
		Category: CategoryFinance,
		Prompt:   "Does the company have financial predictability and inventory control (turnover, leftovers, stock-outs)?",
		Options: opts(
			"Yes, with indicators and frequent control",
			"Partly controlled",
			"No structured control",
		),
	},
	{
		ID:       10,
		Category: CategoryOperations,
		Prompt:   "Is the customer experience standardised across all stores (service, visual merchandising, approach)?",
		Options: opts(
			"Yes, there is a clear standard and consistent training",
			"In part, it varies between stores",
			"Each store does it differently",
		),
	},
	{
		ID:       11,
		Category: CategoryOperations,
		Prompt:   "Are there clear processes for purchasing, replenishment and stock control?",
		Options: opts(
			"Yes, with a system and regular follow-up",
			"Partly organised",
			"There is no structured process",
		),
	},
	{
		ID:       12,
		Category: CategoryOperations,
		Prompt:   "Do you measure customer satisfaction and repeat-purchase rate?",
		Options: opts(
			"Yes, with constant follow-up",
			"We collect feedback sometimes",
			"We don't measure it in a structured way",
		),
	},
}

// Answers maps a question ID to the points of the chosen option.
type Answers map[int]int

// Clone returns an independent copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
