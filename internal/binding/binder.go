// Package binding projects a localized content record onto an existing
// résumé document. Targets are found by CSS class and, for section
// headings, by matching the current heading text against known titles.
//
// Binding is best effort: a missing value or a missing node skips that
// one field and the pass continues. Nothing is rolled back.
package binding

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/jonathan/cv-online/internal/markdown"
	"github.com/jonathan/cv-online/internal/types"
)

// RenderFunc turns rich text into an HTML fragment
type RenderFunc func(text string) string

// contactIcons maps contact fields to the icon class that marks their row
var contactIcons = []struct {
	field string
	icon  string
	value func(*types.Contact) string
}{
	{"location", "fa-map-marker-alt", func(c *types.Contact) string { return c.Location }},
	{"email", "fa-envelope", func(c *types.Contact) string { return c.Email }},
	{"phone", "fa-phone", func(c *types.Contact) string { return c.Phone }},
	{"website", "fa-globe", func(c *types.Contact) string { return c.Website }},
}

// Binder writes content records into documents
type Binder struct {
	logger *zap.Logger
	render RenderFunc
}

// Option configures a Binder
type Option func(*Binder)

// WithLogger sets the logger used for skipped steps.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Binder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithRenderer replaces the rich text renderer.
func WithRenderer(render RenderFunc) Option {
	return func(b *Binder) {
		if render != nil {
			b.render = render
		}
	}
}

// NewBinder creates a Binder that renders rich text with markdown.Render.
func NewBinder(opts ...Option) *Binder {
	b := &Binder{
		logger: zap.NewNop(),
		render: markdown.Render,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Apply binds record into doc using a default Binder.
func Apply(doc *goquery.Document, record *types.LocalizedContentRecord, lang types.Language) *Report {
	return NewBinder().Apply(doc, record, lang)
}

// Apply runs one binding pass. It never fails; the report lists what was written and what was skipped.
func (b *Binder) Apply(doc *goquery.Document, record *types.LocalizedContentRecord, lang types.Language) *Report {
	p := &pass{
		binder: b,
		doc:    doc,
		lang:   lang,
		report: &Report{Language: lang},
	}
	if record == nil {
		p.skip("record", SkippedMissingField)
		return p.report
	}

	// Headings resolve against the text present before this pass writes anything.
	p.index = Locate(doc)

	p.bindName(record.Basic)
	p.bindContact(record.Contact)
	p.bindProfile(record.Profile)
	p.bindExperience(record.Experience)
	p.bindSkill(record.Skill)
	p.bindEducation(record.Education)
	p.bindProject(record.Project)
	p.bindReference(record.Reference)

	b.logger.Debug("binding pass complete",
		zap.String("lang", lang.String()),
		zap.Int("applied", p.report.Count(Applied)),
		zap.Int("skipped_missing_field", p.report.Count(SkippedMissingField)),
		zap.Int("skipped_missing_target", p.report.Count(SkippedMissingTarget)),
	)
	return p.report
}

type pass struct {
	binder *Binder
	doc    *goquery.Document
	lang   types.Language
	index  *SectionIndex
	report *Report
}

func (p *pass) skip(field string, outcome Outcome) {
	p.report.add(field, outcome)
	p.binder.logger.Debug("binding step skipped",
		zap.String("field", field),
		zap.Stringer("outcome", outcome),
	)
}

// setText writes value as plain text into the first node of target.
func (p *pass) setText(field string, target *goquery.Selection, value string) {
	if value == "" {
		p.skip(field, SkippedMissingField)
		return
	}
	if target.Length() == 0 {
		p.skip(field, SkippedMissingTarget)
		return
	}
	target.First().SetText(value)
	p.report.add(field, Applied)
}

// setRichText renders value and replaces the content of the first node of target.
func (p *pass) setRichText(field string, target *goquery.Selection, value string) {
	if value == "" {
		p.skip(field, SkippedMissingField)
		return
	}
	if target.Length() == 0 {
		p.skip(field, SkippedMissingTarget)
		return
	}
	target.First().SetHtml(p.binder.render(value))
	p.report.add(field, Applied)
}

func (p *pass) bindName(basic *types.Basic) {
	if basic == nil {
		p.skip("basic.name", SkippedMissingField)
		return
	}
	p.setText("basic.name", p.doc.Find(".cv-name"), basic.Name)
}

func (p *pass) bindContact(contact *types.Contact) {
	if contact == nil {
		p.skip("contact", SkippedMissingField)
		return
	}
	for _, kind := range contactIcons {
		field := "contact." + kind.field
		value := kind.value(contact)
		if value == "" {
			p.skip(field, SkippedMissingField)
			continue
		}
		row := p.doc.Find(".cv-contact-item:has(i." + kind.icon + ")").First()
		p.setText(field, row.Find("span, a"), value)
	}
}

func (p *pass) bindProfile(profile *types.ProfileSection) {
	if profile == nil {
		p.skip("profile", SkippedMissingField)
		return
	}
	headings := p.index.Headings(Profile)
	if len(headings) == 0 {
		p.skip("profile.title", SkippedMissingTarget)
		p.skip("profile.description", SkippedMissingTarget)
		return
	}
	for _, h := range headings {
		p.setText("profile.title", h.Title, profile.Title)
		p.setRichText("profile.description", h.Section.Find(".cv-description"), profile.Description)
	}
}

// bindSectionTitles writes title to every heading of key, adding the
// language's continued suffix on overflow headings.
func (p *pass) bindSectionTitles(key SectionKey, title string) {
	field := key.String() + ".title"
	headings := p.index.Headings(key)
	if title == "" {
		p.skip(field, SkippedMissingField)
		return
	}
	if len(headings) == 0 {
		p.skip(field, SkippedMissingTarget)
		return
	}
	for _, h := range headings {
		if h.Continued {
			p.setText(field, h.Title, title+" "+p.lang.ContinuedSuffix())
			continue
		}
		p.setText(field, h.Title, title)
	}
}

// zip calls bind for each index covered by both the DOM nodes and the record
// items. Surplus record items are reported as missing targets; surplus nodes are left alone.
func (p *pass) zip(prefix string, nodes *goquery.Selection, count int, bind func(field string, node *goquery.Selection, i int)) {
	n := min(nodes.Length(), count)
	for i := 0; i < n; i++ {
		bind(fmt.Sprintf("%s[%d]", prefix, i), nodes.Eq(i), i)
	}
	for i := n; i < count; i++ {
		p.skip(fmt.Sprintf("%s[%d]", prefix, i), SkippedMissingTarget)
	}
}

func (p *pass) bindExperience(experience *types.ExperienceSection) {
	if experience == nil {
		p.skip("experience", SkippedMissingField)
		return
	}
	p.bindSectionTitles(Experience, experience.Title)

	nodes := p.doc.Find(".cv-experience-item")
	p.zip("experience.items", nodes, len(experience.Items), func(field string, node *goquery.Selection, i int) {
		item := experience.Items[i]
		p.setText(field+".role", node.Find(".cv-experience-role"), item.Role)
		p.setText(field+".date", node.Find(".cv-experience-date"), item.Date)
		p.setText(field+".company", node.Find(".cv-experience-company"), item.Company)
		p.setText(field+".location", node.Find(".cv-experience-location"), item.Location)
		p.setRichText(field+".description", node.Find(".cv-experience-description"), item.Description)
	})
}

func (p *pass) bindSkill(skill *types.SkillSection) {
	if skill == nil {
		p.skip("skill", SkippedMissingField)
		return
	}
	p.bindSectionTitles(Skill, skill.Title)

	items := skill.FirstGroupItems()
	nodes := p.doc.Find(".cv-skill-item")
	p.zip("skill.groups[0].item", nodes, len(items), func(field string, node *goquery.Selection, i int) {
		p.setText(field, node, items[i])
	})
}

func (p *pass) bindEducation(education *types.EducationSection) {
	if education == nil {
		p.skip("education", SkippedMissingField)
		return
	}
	p.bindSectionTitles(Education, education.Title)

	nodes := p.doc.Find(".cv-education-sidebar-item")
	p.zip("education.items", nodes, len(education.Items), func(field string, node *goquery.Selection, i int) {
		item := education.Items[i]
		p.setText(field+".institution", node.Find(".cv-education-institution"), item.Institution)
		p.setText(field+".degree", node.Find(".cv-education-degree"), item.DegreeText())
		p.setText(field+".date", node.Find(".cv-education-date"), item.Date)
	})
}

func (p *pass) bindProject(project *types.ProjectSection) {
	if project == nil {
		p.skip("project", SkippedMissingField)
		return
	}
	p.bindSectionTitles(Project, project.Title)

	if len(project.Items) == 0 {
		p.skip("project.items[0]", SkippedMissingField)
		return
	}
	item := project.Items[0]
	node := p.doc.Find(".cv-project-sidebar-item").First()
	if node.Length() == 0 {
		p.skip("project.items[0]", SkippedMissingTarget)
		return
	}
	p.setText("project.items[0].name", node.Find(".cv-project-name"), item.Name)
	p.setText("project.items[0].date", node.Find(".cv-project-date"), item.Date)
	p.setRichText("project.items[0].description", node.Find(".cv-project-description"), item.Description)
}

func (p *pass) bindReference(reference *types.ReferenceSection) {
	if reference == nil {
		p.skip("reference", SkippedMissingField)
		return
	}
	p.bindSectionTitles(Reference, reference.Title)

	if len(reference.Items) == 0 {
		p.skip("reference.items[0]", SkippedMissingField)
		return
	}
	node := p.doc.Find(".cv-reference-item").First()
	if node.Length() == 0 {
		p.skip("reference.items[0]", SkippedMissingTarget)
		return
	}
	p.setText("reference.items[0].name", node.Find(".cv-reference-name"), reference.Items[0].Name)
}
