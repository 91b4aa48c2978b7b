package service

import (
	"bytes"
	"html/template"

	portfoliomodel "portfolio-backend/internal/domains/portfolio/model"
)

// resumeTemplate lays the portfolio document out as a printable A4
// page. It is rendered to HTML first, then printed to PDF by the
// renderer, so any styling lives in the embedded stylesheet.
var resumeTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 14mm 18mm; }
  body { font-family: Helvetica, Arial, sans-serif; font-size: 10pt; color: #1f2937; }
  h1 { font-size: 24pt; text-align: center; margin: 0 0 2pt 0; }
  .subtitle { font-size: 12pt; text-align: center; color: #6b7280; margin-bottom: 12pt; }
  .contact { text-align: center; margin-bottom: 16pt; }
  h2 { font-size: 14pt; margin: 12pt 0 4pt 0; border-bottom: 1pt solid #ef4444; text-transform: uppercase; }
  .job-header { margin: 6pt 0 2pt 0; }
  ul { margin: 2pt 0 6pt 0; padding-left: 14pt; }
  li { margin-bottom: 2pt; }
  table.skills { width: 100%; font-size: 9pt; border-collapse: collapse; }
  table.skills td { vertical-align: top; width: 50%; padding: 1pt 4pt; }
  .project-title { font-weight: bold; margin-top: 4pt; }
</style>
</head>
<body>
  <h1>{{.Personal.Name}}</h1>
  <div class="subtitle">{{.Personal.Title}}</div>
  <div class="contact">
    {{.Personal.Location}}<br>
    Email: {{.Personal.Email}}{{if .Personal.Phone}} | Phone: {{.Personal.Phone}}{{end}}<br>
    {{if .Personal.LinkedIn}}LinkedIn: {{.Personal.LinkedIn}}{{end}}
  </div>

  <h2>Professional Summary</h2>
  <p>{{.About.Description}}</p>

  <h2>Core Competencies</h2>
  <table class="skills">
    {{range .SkillRows}}
    <tr>
      {{range .}}
      <td>
        {{if .Category}}<b>{{.Category}}</b>
        <ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>{{end}}
      </td>
      {{end}}
    </tr>
    {{end}}
  </table>

  <h2>Professional Experience</h2>
  {{range .Experience}}
  <div class="job-header"><b>{{.Title}}</b> | {{.Company}} | {{.Period}} | {{.Location}}</div>
  <ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul>
  {{end}}

  <h2>Key Projects</h2>
  {{range .Projects}}
  <div class="project-title">{{.Title}}</div>
  <ul><li>{{.Impact}}</li></ul>
  {{end}}
</body>
</html>
`))

type resumeView struct {
	Personal   portfoliomodel.PersonalInfo
	About      portfoliomodel.AboutInfo
	SkillRows  [][]portfoliomodel.SkillCategory
	Experience []portfoliomodel.Experience
	Projects   []portfoliomodel.Project
}

// buildResumeHTML renders the portfolio document into the resume page.
func buildResumeHTML(data *portfoliomodel.PortfolioData) (string, error) {
	view := resumeView{
		Personal:   data.Personal,
		About:      data.About,
		SkillRows:  pairSkills(data.Skills),
		Experience: data.Experience,
		Projects:   data.Projects,
	}

	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// pairSkills arranges skill categories two per table row.
func pairSkills(skills []portfoliomodel.SkillCategory) [][]portfoliomodel.SkillCategory {
	rows := make([][]portfoliomodel.SkillCategory, 0, (len(skills)+1)/2)
	for i := 0; i < len(skills); i += 2 {
		row := []portfoliomodel.SkillCategory{skills[i]}
		if i+1 < len(skills) {
			row = append(row, skills[i+1])
		} else {
			row = append(row, portfoliomodel.SkillCategory{})
		}
		rows = append(rows, row)
	}
	return rows
}
