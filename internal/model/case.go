package model

const (
	TrendUp   = "up"
	TrendDown = "down"

	DefaultColor = "green"
	DefaultIcon  = "📈"
)

// MetricColors is the palette accepted for metric blocks.
var MetricColors = []string{"green", "blue", "purple", "orange"}

// Metric is a before/after highlight shown on a case card.
type Metric struct {
	Label   string `json:"label"`
	Before  string `json:"before"`
	After   string `json:"after"`
	Dynamic string `json:"dynamic"`
	Trend   string `json:"trend"`
	Color   string `json:"color"`
}

// Case is a single published case study. The slug is assigned at creation
// and only changes when the title's derived base slug changes.
type Case struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Duration      string   `json:"duration"`
	Teaser        string   `json:"teaser"`
	CustomContent string   `json:"custom_content"`
	CoverImage    string   `json:"cover_image"`
	Metric1       Metric   `json:"metric_1"`
	Metric2       Metric   `json:"metric_2"`
	Task          string   `json:"task"`
	Hypothesis    string   `json:"hypothesis"`
	Actions       string   `json:"actions"`
	Result        string   `json:"result"`
	Conclusion    string   `json:"conclusion"`
	Tags          []string `json:"tags"`
	ProjectStages []string `json:"project_stages"`
	Niche         string   `json:"niche"`
	Sources       []string `json:"sources"`
	Icon          string   `json:"icon"`
}

// ApplyDefaults backfills fields that older stored records may lack,
// so schema additions stay readable without a migration.
func (c *Case) ApplyDefaults() {
	c.Metric1.applyDefaults()
	c.Metric2.applyDefaults()
	if c.Icon == "" {
		c.Icon = DefaultIcon
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if c.ProjectStages == nil {
		c.ProjectStages = []string{}
	}
	if c.Sources == nil {
		c.Sources = []string{}
	}
}

func (m *Metric) applyDefaults() {
	if m.Trend == "" {
		m.Trend = TrendUp
	}
	if m.Color == "" {
		m.Color = DefaultColor
	}
}
