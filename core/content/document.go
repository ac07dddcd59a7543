package content

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is the localized CV content rendered by the site.
// Documents returned by a Library are shared and must be treated as read-only.
type Document struct {
	Personal       Personal        `json:"personal"`
	Summary        string          `json:"summary"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Skills         Skills          `json:"skills"`
	Languages      []Language      `json:"languages"`
	SoftSkills     []string        `json:"softSkills,omitempty"`
}

// Personal holds contact details and links.
type Personal struct {
	Name           string `json:"name"`
	Title          string `json:"title"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Portfolio      string `json:"portfolio"`
	LinkedIn       string `json:"linkedin"`
	GitHub         string `json:"github"`
	ProfilePicture string `json:"profilePicture"`
}

type Education struct {
	Degree          string   `json:"degree"`
	Institution     string   `json:"institution"`
	InstitutionLogo string   `json:"institutionLogo"`
	Period          string   `json:"period"`
	Location        string   `json:"location,omitempty"`
	Website         string   `json:"website,omitempty"`
	Status          string   `json:"status,omitempty"`
	Grade           string   `json:"grade,omitempty"`
	Projects        []string `json:"projects,omitempty"`
}

type Experience struct {
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	CompanyLogo  string   `json:"companyLogo,omitempty"`
	Website      string   `json:"website,omitempty"`
	Location     string   `json:"location,omitempty"`
	Period       string   `json:"period"`
	Duration     string   `json:"duration,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Images       []string `json:"images,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	RoleType     string   `json:"roleType,omitempty"`
}

type Project struct {
	Title        string   `json:"title"`
	Period       string   `json:"period"`
	Duration     string   `json:"duration,omitempty"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	Images       []string `json:"images,omitempty"`
	ProjectLink  string   `json:"projectLink,omitempty"`
	GitHubLink   string   `json:"githubLink,omitempty"`
}

type Certification struct {
	Name           string   `json:"name"`
	Issuer         string   `json:"issuer"`
	Year           string   `json:"year,omitempty"`
	Link           string   `json:"link,omitempty"`
	Image          string   `json:"image"`
	Category       string   `json:"category,omitempty"`
	SkillsAcquired []string `json:"skillsAcquired,omitempty"`
}

// Language is a spoken language and proficiency level.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// SkillCategory is one named group of skills.
type SkillCategory struct {
	Key   string
	Items []string
}

// Skills keeps skill categories in the order they appear in the source document.
type Skills []SkillCategory

// UnmarshalJSON decodes a {"category": ["skill", ...]} object preserving key order.
func (s *Skills) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("skills: expected object, got %v", tok)
	}

	var out Skills
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: expected category name, got %v", keyTok)
		}

		var items []string
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("skills: category %q: %w", key, err)
		}
		out = append(out, SkillCategory{Key: key, Items: items})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

// MarshalJSON encodes categories as an object in their stored order.
func (s Skills) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category.Key)
		if err != nil {
			return nil, err
		}
		items := category.Items
		if items == nil {
			items = []string{}
		}
		value, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Category returns the named category, if present.
func (s Skills) Category(key string) (SkillCategory, bool) {
	for _, category := range s {
		if category.Key == key {
			return category, true
		}
	}
	return SkillCategory{}, false
}

// Keys returns category names in document order.
func (s Skills) Keys() []string {
	keys := make([]string, len(s))
	for i, category := range s {
		keys[i] = category.Key
	}
	return keys
}

// ordered returns the categories rearranged to follow keys; unknown categories keep
// their relative order at the end.
func (s Skills) ordered(keys []string) Skills {
	out := make(Skills, 0, len(s))
	used := make(map[string]bool, len(s))
	for _, key := range keys {
		if category, ok := s.Category(key); ok && !used[key] {
			out = append(out, category)
			used[key] = true
		}
	}
	for _, category := range s {
		if !used[category.Key] {
			out = append(out, category)
		}
	}
	return out
}
