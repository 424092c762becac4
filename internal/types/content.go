// Package types provides type definitions for structured data used throughout the cv-online system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// LocalizedContentRecord is the content payload for one language.
// Every field is optional; a nil section or an empty string means
// "leave the current document content unchanged".
type LocalizedContentRecord struct {
	Basic      *Basic             `json:"basic,omitempty"`
	Contact    *Contact           `json:"contact,omitempty"`
	Profile    *ProfileSection    `json:"profile,omitempty"`
	Experience *ExperienceSection `json:"experience,omitempty"`
	Education  *EducationSection  `json:"education,omitempty"`
	Skill      *SkillSection      `json:"skill,omitempty"`
	Project    *ProjectSection    `json:"project,omitempty"`
	Reference  *ReferenceSection  `json:"reference,omitempty"`
}

// Basic holds the header fields of the document
type Basic struct {
	Name string `json:"name,omitempty"`
}

// Contact holds the display strings of the contact rows
type Contact struct {
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ProfileSection is the professional profile block. Description is rich text.
type ProfileSection struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExperienceSection is the career summary block
type ExperienceSection struct {
	Title string           `json:"title,omitempty"`
	Items []ExperienceItem `json:"items,omitempty"`
}

// ExperienceItem represents a single position. Description is rich text.
type ExperienceItem struct {
	Role        string `json:"role,omitempty"`
	Date        string `json:"date,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationSection is the sidebar education block
type EducationSection struct {
	Title string          `json:"title,omitempty"`
	Items []EducationItem `json:"items,omitempty"`
}

// EducationItem represents a single degree or training entry
type EducationItem struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Major       string `json:"major,omitempty"`
	Date        string `json:"date,omitempty"`
}

// DegreeText returns the degree line, "degree in major" when a major is set.
func (e EducationItem) DegreeText() string {
	if e.Degree == "" {
		return ""
	}
	if e.Major != "" {
		return e.Degree + " in " + e.Major
	}
	return e.Degree
}

// SkillSection is the skill block. Only the first group is rendered.
type SkillSection struct {
	Title  string       `json:"title,omitempty"`
	Groups []SkillGroup `json:"groups,omitempty"`
}

// SkillGroup is an ordered list of skill labels
type SkillGroup struct {
	Item []string `json:"item,omitempty"`
}

// FirstGroupItems returns the items of the first skill group, or nil when there are none.
func (s *SkillSection) FirstGroupItems() []string {
	if s == nil || len(s.Groups) == 0 {
		return nil
	}
	return s.Groups[0].Item
}

// ProjectSection is the side project block. Only the first item is rendered.
type ProjectSection struct {
	Title string        `json:"title,omitempty"`
	Items []ProjectItem `json:"items,omitempty"`
}

// ProjectItem represents a side project. Description is rich text.
type ProjectItem struct {
	Name        string `json:"name,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// ReferenceSection is the references block. Only the first item is rendered.
type ReferenceSection struct {
	Title string          `json:"title,omitempty"`
	Items []ReferenceItem `json:"items,omitempty"`
}

// ReferenceItem represents a reference contact
type ReferenceItem struct {
	Name string `json:"name,omitempty"`
}
