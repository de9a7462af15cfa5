package render

import (
	"fmt"

	"github.com/jonathan/portfolio-builder/internal/types"
)

// mobileBreakpoint collapses multi-column layouts to single-column below
// this viewport width
const mobileBreakpoint = 768

// buildCSS emits the custom-property-driven stylesheet for the resolved
// palette and font family. Output is deterministic for identical inputs.
func buildCSS(theme types.ThemeSettings) string {
	p := resolvePalette(theme.Color)
	font := theme.Font
	if font == "" {
		font = "Inter"
	}

	return fmt.Sprintf(`:root {
    %s
    --font-family: '%s', sans-serif;
}

* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: var(--font-family);
    line-height: 1.6;
    color: var(--text-color);
    background-color: var(--bg-color);
}

.portfolio-container {
    max-width: 1200px;
    margin: 0 auto;
    padding: 2rem;
}

.portfolio-header {
    text-align: center;
    padding: 3rem 0;
    border-bottom: 2px solid var(--primary-color);
    margin-bottom: 3rem;
}

.header-content {
    display: flex;
    flex-direction: column;
    align-items: center;
    gap: 1.5rem;
}

.profile-image {
    width: 150px;
    height: 150px;
    border-radius: 50%%;
    object-fit: cover;
    border: 4px solid var(--primary-color);
}

.name {
    font-size: 3rem;
    font-weight: 700;
    color: var(--primary-color);
    margin-bottom: 0.5rem;
}

.contact-info {
    display: flex;
    gap: 2rem;
    flex-wrap: wrap;
    justify-content: center;
}

.contact-link {
    color: var(--text-muted);
    text-decoration: none;
    font-size: 1.1rem;
}

.contact-link:hover {
    color: var(--primary-color);
}

.portfolio-section {
    margin-bottom: 3rem;
}

.section-title {
    font-size: 2rem;
    font-weight: 600;
    color: var(--primary-color);
    margin-bottom: 1.5rem;
    padding-bottom: 0.5rem;
    border-bottom: 2px solid var(--primary-color);
}

.summary-text {
    font-size: 1.2rem;
    line-height: 1.8;
    color: var(--text-color);
}

.skills-grid {
    display: flex;
    flex-wrap: wrap;
    gap: 0.5rem;
}

.skill-tag {
    background-color: var(--primary-color);
    color: white;
    padding: 0.5rem 1rem;
    border-radius: 2rem;
    font-size: 0.9rem;
    font-weight: 500;
}

.timeline {
    position: relative;
    padding-left: 2rem;
}

.timeline::before {
    content: '';
    position: absolute;
    left: 0;
    top: 0;
    bottom: 0;
    width: 2px;
    background-color: var(--primary-color);
}

.timeline-item {
    position: relative;
    margin-bottom: 2rem;
    padding-left: 2rem;
}

.timeline-item::before {
    content: '';
    position: absolute;
    left: -6px;
    top: 0;
    width: 12px;
    height: 12px;
    border-radius: 50%%;
    background-color: var(--primary-color);
}

.job-title {
    font-size: 1.5rem;
    font-weight: 600;
    margin-bottom: 0.5rem;
}

.company {
    font-size: 1.2rem;
    color: var(--primary-color);
    font-weight: 500;
    margin-bottom: 0.5rem;
}

.date-range {
    color: var(--text-muted);
    margin-bottom: 1rem;
}

.job-description {
    line-height: 1.7;
}

.education-list {
    display: grid;
    gap: 1.5rem;
}

.education-item {
    padding: 1.5rem;
    border-left: 4px solid var(--primary-color);
    background-color: var(--bg-secondary);
    border-radius: 0 8px 8px 0;
}

.degree {
    font-size: 1.3rem;
    font-weight: 600;
    margin-bottom: 0.5rem;
}

.school {
    font-size: 1.1rem;
    color: var(--primary-color);
    font-weight: 500;
    margin-bottom: 0.5rem;
}

.year {
    color: var(--text-muted);
}

.projects-grid {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
    gap: 2rem;
}

.project-card {
    padding: 2rem;
    border: 1px solid var(--border-color);
    border-radius: 12px;
    background-color: var(--bg-secondary);
    transition: transform 0.3s ease, box-shadow 0.3s ease;
}

.project-card:hover {
    transform: translateY(-4px);
    box-shadow: 0 8px 25px rgba(0, 0, 0, 0.1);
}

.project-title {
    font-size: 1.4rem;
    font-weight: 600;
    margin-bottom: 1rem;
    color: var(--primary-color);
}

.project-description {
    margin-bottom: 1.5rem;
    line-height: 1.6;
}

.project-tech {
    display: flex;
    flex-wrap: wrap;
    gap: 0.5rem;
    margin-bottom: 1.5rem;
}

.tech-tag {
    background-color: var(--primary-color);
    color: white;
    padding: 0.3rem 0.8rem;
    border-radius: 1rem;
    font-size: 0.8rem;
    opacity: 0.9;
}

.project-links {
    display: flex;
    gap: 1rem;
}

.project-link {
    color: var(--primary-color);
    text-decoration: none;
    font-weight: 500;
    padding: 0.5rem 1rem;
    border: 1px solid var(--primary-color);
    border-radius: 6px;
    transition: all 0.3s ease;
}

.project-link:hover {
    background-color: var(--primary-color);
    color: white;
}

@media (max-width: %dpx) {
    .portfolio-container {
        padding: 1rem;
    }

    .name {
        font-size: 2rem;
    }

    .contact-info {
        flex-direction: column;
        gap: 0.5rem;
    }

    .timeline {
        padding-left: 1rem;
    }

    .timeline-item {
        padding-left: 1rem;
    }

    .projects-grid {
        grid-template-columns: 1fr;
    }
}`, p.cssVariables(), font, mobileBreakpoint)
}
