package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-typesetter/internal/latex"
	"github.com/jonathan/resume-typesetter/internal/schema"
)

func headerRecord() schema.Record {
	return schema.Record{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"phone":      "555-0100",
		"location":   "London, UK",
		"linkedin":   "https://linkedin.com/in/ada",
	}
}

func TestRenderHeader_FullContactBlock(t *testing.T) {
	buf := latex.NewBuffer()
	renderHeader(buf, []schema.Record{headerRecord()})

	frags := buf.Fragments()
	require.Len(t, frags, 3)
	assert.Equal(t, `\name{Ada Lovelace}`, frags[0])
	assert.Equal(t, `\address{555-0100 \\ London, UK}`, frags[1])
	assert.Equal(t, `\address{\href{mailto:ada@example.com}{ada@example.com} \\ \href{https://linkedin.com/in/ada}{https://linkedin.com/in/ada}}`, frags[2])
}

func TestRenderHeader_WithoutLinkedIn(t *testing.T) {
	rec := headerRecord()
	delete(rec, "linkedin")

	buf := latex.NewBuffer()
	renderHeader(buf, []schema.Record{rec})

	frags := buf.Fragments()
	require.Len(t, frags, 3)
	assert.Equal(t, `\address{\href{mailto:ada@example.com}{ada@example.com}}`, frags[2])
	assert.NotContains(t, buf.String(), "linkedin")
}

func TestRenderHeader_NullLinkedInOmitted(t *testing.T) {
	rec := headerRecord()
	rec["linkedin"] = nil

	require.NoError(t, headerSchema.Validate(rec, HeaderName))

	buf := latex.NewBuffer()
	renderHeader(buf, []schema.Record{rec})

	frags := buf.Fragments()
	require.Len(t, frags, 3)
	assert.Equal(t, `\address{\href{mailto:ada@example.com}{ada@example.com}}`, frags[2])
	assert.NotContains(t, buf.String(), "linkedin")
}

func TestRenderHeader_EscapesNames(t *testing.T) {
	rec := headerRecord()
	rec["last_name"] = "Smith & Jones"

	buf := latex.NewBuffer()
	renderHeader(buf, []schema.Record{rec})

	assert.Contains(t, buf.Fragments()[0], `Smith \& Jones`)
}

func experienceRecord() schema.Record {
	return schema.Record{
		"company":    "Acme Corp",
		"role":       "Staff Engineer",
		"start_date": "Jan 2020",
		"end_date":   "Mar 2023",
		"location":   "Remote",
		"bullets":    []any{"Led the platform rewrite", "Cut costs 30%"},
	}
}

func TestRenderExperience_EntryBlock(t *testing.T) {
	buf := latex.NewBuffer()
	renderExperience(buf, []schema.Record{experienceRecord()})

	frags := buf.Fragments()
	require.Equal(t, `\begin{rSection}{PROFESSIONAL EXPERIENCE}`, frags[0])
	assert.Equal(t, `\textbf{Staff Engineer} \hfill Jan 2020 - Mar 2023\\`, frags[1])
	assert.Equal(t, `Acme Corp \hfill \textit{Remote}`, frags[2])
	assert.Equal(t, `\vspace{-0.5em}`, frags[3])
	assert.Equal(t, `\begin{itemize} \itemsep -6pt {}`, frags[4])
	assert.Equal(t, `\item Led the platform rewrite`, frags[5])
	assert.Equal(t, `\item Cut costs 30\%`, frags[6])
	assert.Equal(t, `\end{itemize}`, frags[7])
	assert.Equal(t, `\end{rSection}`, frags[8])
}

func TestRenderExperience_NullEndDateRendersOngoing(t *testing.T) {
	rec := experienceRecord()
	rec["end_date"] = nil

	buf := latex.NewBuffer()
	renderExperience(buf, []schema.Record{rec})

	assert.Contains(t, buf.Fragments()[1], "Jan 2020 - Present")
}

func TestRenderExperience_NoBulletsNoItemize(t *testing.T) {
	rec := experienceRecord()
	rec["bullets"] = []any{}

	buf := latex.NewBuffer()
	renderExperience(buf, []schema.Record{rec})

	assert.NotContains(t, buf.String(), `\begin{itemize}`)
	assert.NotContains(t, buf.String(), `\end{itemize}`)
}

func TestRenderExperience_EmptySubsetRendersNothing(t *testing.T) {
	buf := latex.NewBuffer()
	renderExperience(buf, nil)

	assert.Zero(t, buf.Len())
}

func TestRenderEducation_EntryBlock(t *testing.T) {
	rec := schema.Record{
		"school":     "State University",
		"degree":     "BSc",
		"subject":    "Computer Science",
		"start_year": float64(2018),
		"end_year":   float64(2022),
		"location":   "Springfield",
		"bullets":    []any{"Graduated with honors"},
	}

	buf := latex.NewBuffer()
	renderEducation(buf, []schema.Record{rec})

	frags := buf.Fragments()
	require.Equal(t, `\begin{rSection}{EDUCATION}`, frags[0])
	assert.Equal(t, `\textbf{BSc Computer Science} \hfill 2018 - 2022\\`, frags[1])
	assert.Equal(t, `State University \hfill \textit{Springfield}`, frags[2])
}

func TestRenderEducation_NullEndYearRendersOngoing(t *testing.T) {
	rec := schema.Record{
		"school":     "State University",
		"degree":     "MSc",
		"subject":    "Mathematics",
		"start_year": float64(2024),
		"end_year":   nil,
		"location":   "Springfield",
		"bullets":    []any{},
	}

	buf := latex.NewBuffer()
	renderEducation(buf, []schema.Record{rec})

	assert.Contains(t, buf.Fragments()[1], "2024 - Present")
}

func TestRenderProjects_WithAndWithoutLink(t *testing.T) {
	records := []schema.Record{
		{"name": "P1", "bullets": []any{"x"}, "link": "http://a"},
		{"name": "P2", "bullets": []any{"y"}},
	}

	buf := latex.NewBuffer()
	renderProjects(buf, records)

	frags := buf.Fragments()
	require.Equal(t, `\begin{rSection}{PROJECTS}`, frags[0])
	assert.Equal(t, `\vspace{-1.75em}`, frags[1])
	assert.Equal(t, `\begin{itemize} \itemsep -6pt {}`, frags[2])
	assert.Equal(t, `\item \textbf{P1} {x \href{http://a}{(See more here)}}`, frags[3])
	assert.Equal(t, `\item \textbf{P2} {y}`, frags[4])
	assert.Equal(t, `\end{itemize}`, frags[5])
	assert.Equal(t, `\end{rSection}`, frags[6])
}

func TestRenderProjects_NullLinkOmitted(t *testing.T) {
	rec := schema.Record{"name": "P1", "bullets": []any{"x"}, "link": nil}

	require.NoError(t, portfolioSchema.Validate(rec, "projects"))

	buf := latex.NewBuffer()
	renderProjects(buf, []schema.Record{rec})

	assert.Contains(t, buf.Fragments(), `\item \textbf{P1} {x}`)
	assert.NotContains(t, buf.String(), `\href`)
}

func TestRenderProjects_EmptyBulletsStillNamesItem(t *testing.T) {
	buf := latex.NewBuffer()
	renderProjects(buf, []schema.Record{{"name": "Bare", "bullets": []any{}}})

	assert.Contains(t, buf.Fragments(), `\item \textbf{Bare}`)
}

func TestRenderCertificates_UsesCertificationsTitle(t *testing.T) {
	buf := latex.NewBuffer()
	renderCertificates(buf, []schema.Record{
		{"name": "Cloud Cert", "bullets": []any{"Issued 2024"}, "link": "http://cert"},
	})

	assert.Equal(t, `\begin{rSection}{CERTIFICATIONS}`, buf.Fragments()[0])
	assert.Contains(t, buf.String(), `\textbf{Cloud Cert}`)
}

func TestRenderSkills_TwoColumnTable(t *testing.T) {
	records := []schema.Record{
		{"category": "Languages", "items": []any{"Go", "Python"}},
		{"category": "Tools", "items": []any{"Docker"}},
	}

	buf := latex.NewBuffer()
	renderSkills(buf, records)

	frags := buf.Fragments()
	require.Equal(t, `\begin{rSection}{SKILLS}`, frags[0])
	assert.Equal(t, `\begin{tabular}{ @{} >{\bfseries}l @{\hspace{6ex}} p{0.8\textwidth} }`, frags[1])
	assert.Equal(t, `Languages & Go, Python\\`, frags[2])
	assert.Equal(t, `Tools & Docker\\`, frags[3])
	assert.Equal(t, `\end{tabular}`, frags[4])
	assert.Equal(t, `\end{rSection}`, frags[5])
}

func TestRenderSkills_EmptyRendersNothing(t *testing.T) {
	buf := latex.NewBuffer()
	renderSkills(buf, nil)

	assert.Zero(t, buf.Len(), "no heading for an empty skills list")
}

func TestRenderSkills_EscapesItems(t *testing.T) {
	buf := latex.NewBuffer()
	renderSkills(buf, []schema.Record{
		{"category": "Data", "items": []any{"C#", "F#"}},
	})

	assert.Contains(t, buf.String(), `C\#, F\#`)
}

func TestRenderInterests_GroupsSeparatedByBlankLine(t *testing.T) {
	records := []schema.Record{
		{"items": []any{"Chess", "Climbing"}},
		{"items": []any{"Baking"}},
	}

	buf := latex.NewBuffer()
	renderInterests(buf, records)

	frags := buf.Fragments()
	require.Equal(t, `\begin{rSection}{INTERESTS}`, frags[0])
	assert.Equal(t, "Chess, Climbing", frags[1])
	assert.Equal(t, "", frags[2])
	assert.Equal(t, "Baking", frags[3])
	assert.Equal(t, `\end{rSection}`, frags[4])

	assert.True(t, strings.Contains(buf.String(), "Chess, Climbing\n\nBaking"))
}

func TestRenderInterests_EmptyRendersNothing(t *testing.T) {
	buf := latex.NewBuffer()
	renderInterests(buf, []schema.Record{})

	assert.Zero(t, buf.Len())
}
