package sections

// registry lists every section descriptor in the document's natural order.
// The header comes first; the assembler pulls it out and emits it before the
// body regardless of the requested order.
var registry = []Descriptor{
	{
		Name:      HeaderName,
		DataKey:   "header",
		Singleton: true,
		Schema:    headerSchema,
		Render:    renderHeader,
	},
	{
		Name:    "skills",
		DataKey: "skills",
		Title:   "SKILLS",
		Schema:  skillsSchema,
		Render:  renderSkills,
	},
	{
		Name:       "experience",
		DataKey:    "professional_experience",
		Title:      "PROFESSIONAL EXPERIENCE",
		Selectable: true,
		Schema:     experienceSchema,
		Render:     renderExperience,
	},
	{
		Name:       "education",
		DataKey:    "education",
		Title:      "EDUCATION",
		Selectable: true,
		Schema:     educationSchema,
		Render:     renderEducation,
	},
	{
		Name:       "projects",
		DataKey:    "projects",
		Title:      "PROJECTS",
		Selectable: true,
		Schema:     portfolioSchema,
		Render:     renderProjects,
	},
	{
		Name:       "certificates",
		DataKey:    "certificates",
		Title:      "CERTIFICATIONS",
		Selectable: true,
		Schema:     portfolioSchema,
		Render:     renderCertificates,
	},
	{
		Name:    "interests",
		DataKey: "interests",
		Title:   "INTERESTS",
		Schema:  interestsSchema,
		Render:  renderInterests,
	},
}

var byName = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(registry))
	for _, d := range registry {
		m[d.Name] = d
	}
	return m
}()

// Lookup returns the descriptor registered under name.
func Lookup(name string) (Descriptor, bool) {
	d, ok := byName[name]
	return d, ok
}

// NaturalOrder returns every registered section name in document order,
// header first.
func NaturalOrder() []string {
	names := make([]string, len(registry))
	for i, d := range registry {
		names[i] = d.Name
	}
	return names
}

// Descriptors returns all registered descriptors in natural order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}
