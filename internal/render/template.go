package render

// portfolioHTML is the single self-contained portfolio document. Each
// section renders only when its backing data is present; empty sections
// are omitted entirely rather than rendered with placeholders.
const portfolioHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Data.Name}} - Portfolio</title>
    <meta name="description" content="{{.Data.Summary}}">
    <link href="{{.FontHref}}" rel="stylesheet">
    <style>
        {{.CSS}}
    </style>
</head>
<body class="{{.Layout}}">
    <div class="portfolio-container">
        <header class="portfolio-header">
            <div class="header-content">
                {{- if .Theme.Image}}
                <img src="{{.Theme.Image}}" alt="{{.Data.Name}}" class="profile-image">
                {{- end}}
                <div class="header-text">
                    <h1 class="name">{{.Data.Name}}</h1>
                    <div class="contact-info">
                        {{- if .Data.Email}}
                        <a href="mailto:{{.Data.Email}}" class="contact-link">{{.Data.Email}}</a>
                        {{- end}}
                        {{- if .Data.Phone}}
                        <span class="contact-link">{{.Data.Phone}}</span>
                        {{- end}}
                    </div>
                </div>
            </div>
        </header>
        {{- if .Data.Summary}}
        <section class="portfolio-section summary-section">
            <h2 class="section-title">About Me</h2>
            <p class="summary-text">{{.Data.Summary}}</p>
        </section>
        {{- end}}
        {{- if .Data.Skills}}
        <section class="portfolio-section skills-section">
            <h2 class="section-title">Skills</h2>
            <div class="skills-grid">
                {{- range .Data.Skills}}
                <span class="skill-tag">{{.}}</span>
                {{- end}}
            </div>
        </section>
        {{- end}}
        {{- if .Data.Experience}}
        <section class="portfolio-section experience-section">
            <h2 class="section-title">Experience</h2>
            <div class="timeline">
                {{- range .Data.Experience}}
                <div class="timeline-item">
                    <div class="timeline-content">
                        <h3 class="job-title">{{.Title}}</h3>
                        <p class="company">{{.Company}}</p>
                        <p class="date-range">{{.StartDate}} - {{.EndDate}}</p>
                        <p class="job-description">{{.Description}}</p>
                    </div>
                </div>
                {{- end}}
            </div>
        </section>
        {{- end}}
        {{- if .Data.Education}}
        <section class="portfolio-section education-section">
            <h2 class="section-title">Education</h2>
            <div class="education-list">
                {{- range .Data.Education}}
                <div class="education-item">
                    <h3 class="degree">{{.Degree}}</h3>
                    <p class="school">{{.School}}</p>
                    <p class="year">{{.Year}}</p>
                </div>
                {{- end}}
            </div>
        </section>
        {{- end}}
        {{- if .Data.Projects}}
        <section class="portfolio-section projects-section">
            <h2 class="section-title">Projects</h2>
            <div class="projects-grid">
                {{- range .Data.Projects}}
                <div class="project-card">
                    <h3 class="project-title">{{.Title}}</h3>
                    <p class="project-description">{{.Description}}</p>
                    <div class="project-tech">
                        {{- range .Technologies}}
                        <span class="tech-tag">{{.}}</span>
                        {{- end}}
                    </div>
                    <div class="project-links">
                        {{- if .GithubURL}}
                        <a href="{{.GithubURL}}" target="_blank" class="project-link">GitHub</a>
                        {{- end}}
                        {{- if .LiveURL}}
                        <a href="{{.LiveURL}}" target="_blank" class="project-link">Live Demo</a>
                        {{- end}}
                    </div>
                </div>
                {{- end}}
            </div>
        </section>
        {{- end}}
    </div>
</body>
</html>`
