package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/slug"
	"github.com/casefolio/casefolio/internal/store"
)

var (
	ErrCaseNotFound  = errors.New("case not found")
	ErrTitleRequired = errors.New("title is required")
)

// CaseInput carries the submitted fields for a create or edit. CoverImage
// is only applied when non-empty; an edit without a new upload keeps the
// stored path.
type CaseInput struct {
	Title         string
	Subtitle      string
	Duration      string
	Teaser        string
	CustomContent string
	CoverImage    string
	Metric1       model.Metric
	Metric2       model.Metric
	Task          string
	Hypothesis    string
	Actions       string
	Result        string
	Conclusion    string
	Tags          []string
	ProjectStages []string
	Niche         string
	Sources       []string
	Icon          string
}

// CaseRepository owns the case collection and its slug uniqueness.
type CaseRepository struct {
	collection *store.Collection[model.Case]
}

func NewCaseRepository(path string) *CaseRepository {
	return &CaseRepository{collection: store.NewCollection[model.Case](path)}
}

func (r *CaseRepository) All() ([]model.Case, error) {
	cases, err := r.collection.Load()
	if err != nil {
		return nil, err
	}
	for i := range cases {
		cases[i].ApplyDefaults()
	}
	return cases, nil
}

func (r *CaseRepository) BySlug(caseSlug string) (*model.Case, error) {
	found, ok, err := r.collection.Find(func(c model.Case) bool {
		return c.Slug == caseSlug
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCaseNotFound
	}

	found.ApplyDefaults()
	return &found, nil
}

func (r *CaseRepository) Create(in CaseInput) (*model.Case, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	cases, err := r.collection.Load()
	if err != nil {
		return nil, err
	}

	newSlug, err := r.uniqueSlug(in.Title, "")
	if err != nil {
		return nil, err
	}

	record := model.Case{Slug: newSlug}
	applyInput(&record, in)
	record.ApplyDefaults()

	cases = append(cases, record)
	err = r.collection.Save(cases)
	if err != nil {
		return nil, fmt.Errorf("failed to save case: %w", err)
	}

	return &record, nil
}

func (r *CaseRepository) Update(caseSlug string, in CaseInput) (*model.Case, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	cases, err := r.collection.Load()
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range cases {
		if cases[i].Slug == caseSlug {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrCaseNotFound
	}

	// Excluding the record's own slug keeps it stable when the title's
	// derived base has not changed.
	newSlug, err := r.uniqueSlug(in.Title, caseSlug)
	if err != nil {
		return nil, err
	}

	record := &cases[index]
	record.Slug = newSlug
	applyInput(record, in)
	record.ApplyDefaults()

	err = r.collection.Save(cases)
	if err != nil {
		return nil, fmt.Errorf("failed to save case: %w", err)
	}

	updated := *record
	return &updated, nil
}

// uniqueSlug derives the base slug for title and suffixes -2, -3, ... until
// it is free in the current collection. The exclude slug is treated as free
// so a record can keep its own.
func (r *CaseRepository) uniqueSlug(title, exclude string) (string, error) {
	cases, err := r.collection.Load()
	if err != nil {
		return "", err
	}

	taken := make(map[string]bool, len(cases))
	for _, c := range cases {
		taken[c.Slug] = true
	}
	if exclude != "" {
		delete(taken, exclude)
	}

	base := slug.Make(title)
	candidate := base
	for counter := 2; taken[candidate]; counter++ {
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}

	return candidate, nil
}

func applyInput(record *model.Case, in CaseInput) {
	record.Title = in.Title
	record.Subtitle = strings.TrimSpace(in.Subtitle)
	record.Duration = strings.TrimSpace(in.Duration)
	record.Teaser = strings.TrimSpace(in.Teaser)
	record.CustomContent = strings.TrimSpace(in.CustomContent)
	record.Metric1 = in.Metric1
	record.Metric2 = in.Metric2
	record.Task = strings.TrimSpace(in.Task)
	record.Hypothesis = strings.TrimSpace(in.Hypothesis)
	record.Actions = strings.TrimSpace(in.Actions)
	record.Result = strings.TrimSpace(in.Result)
	record.Conclusion = strings.TrimSpace(in.Conclusion)
	record.Tags = in.Tags
	record.ProjectStages = in.ProjectStages
	record.Niche = strings.TrimSpace(in.Niche)
	record.Sources = in.Sources
	if in.Icon != "" {
		record.Icon = in.Icon
	}
	if in.CoverImage != "" {
		record.CoverImage = in.CoverImage
	}
}

// ParseTags splits comma-separated input into trimmed tags, dropping empty
// items and preserving order.
func ParseTags(input string) []string {
	tags := []string{}
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// ParseStages trims repeated form values, dropping empty items and
// preserving order.
func ParseStages(values []string) []string {
	stages := []string{}
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value != "" {
			stages = append(stages, value)
		}
	}
	return stages
}
