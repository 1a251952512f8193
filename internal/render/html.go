package render

import (
	"html/template"
	"strings"

	"github.com/shinobirpg/shinobi-bot-discord/internal/generator"
)

// HTML renders the sheet as a standalone cyberpunk-styled document.
// html/template escapes every interpolated value, so catalog text can never
// break out of the markup.
func HTML(sheet *generator.CharacterSheet) string {
	data := htmlData{
		InfoRows: InfoRows(sheet),
		Sections: BuildSections(sheet),
	}

	var builder strings.Builder
	if err := htmlTemplate.Execute(&builder, data); err != nil {
		// The template is static and the data is plain strings; an error
		// here is a programming bug.
		panic(err)
	}
	return builder.String()
}

type htmlData struct {
	InfoRows []InfoRow
	Sections []Section
}

var htmlTemplate = template.Must(template.New("dossier").Parse(htmlDocument))

const htmlDocument = `<!DOCTYPE html>
<html lang="ru">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Shinobi Dossier</title>
    <style>
      :root {
        color-scheme: dark;
        --bg: #04020c;
        --panel: rgba(25, 17, 48, 0.85);
        --accent: #7df9ff;
        --accent-2: #ff00ff;
        --text: #e4f1ff;
        --muted: #8ca1c1;
        --shadow: 0 0 30px rgba(125, 249, 255, 0.25);
      }
      * {
        box-sizing: border-box;
      }
      body {
        margin: 0;
        padding: 24px 12px 48px;
        font-family: "Orbitron", "Russo One", "Segoe UI", sans-serif;
        background: radial-gradient(circle at top, #120a28, #03010a 55%, #010006);
        color: var(--text);
      }
      .dossier {
        max-width: 720px;
        margin: 0 auto;
        background: var(--panel);
        border: 2px solid var(--accent);
        border-radius: 18px;
        padding: 24px 20px;
        box-shadow: var(--shadow);
        backdrop-filter: blur(6px);
      }
      header {
        text-align: center;
        margin-bottom: 24px;
      }
      header h1 {
        font-size: clamp(1.6rem, 3vw, 2.6rem);
        letter-spacing: 0.28em;
        margin: 0 0 6px;
        text-transform: uppercase;
        color: var(--accent);
        text-shadow: 0 0 16px rgba(125, 249, 255, 0.6);
      }
      header p {
        margin: 0;
        font-size: 0.95rem;
        color: var(--muted);
        letter-spacing: 0.16em;
        text-transform: uppercase;
      }
      .info-grid {
        display: grid;
        grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
        gap: 12px;
        margin-bottom: 24px;
      }
      .info-row {
        background: rgba(12, 9, 26, 0.9);
        border: 1px solid rgba(125, 249, 255, 0.35);
        border-radius: 12px;
        padding: 12px;
        display: flex;
        flex-direction: column;
        gap: 6px;
        box-shadow: 0 0 12px rgba(255, 0, 255, 0.18);
      }
      .label {
        font-size: 0.7rem;
        text-transform: uppercase;
        letter-spacing: 0.22em;
        color: var(--muted);
      }
      .value {
        font-size: 1.05rem;
        letter-spacing: 0.02em;
      }
      .block {
        margin-bottom: 22px;
        padding: 16px 14px;
        border: 1px solid rgba(255, 0, 255, 0.25);
        border-radius: 12px;
        background: rgba(10, 6, 24, 0.9);
        position: relative;
        overflow: hidden;
      }
      .block::before {
        content: "";
        position: absolute;
        inset: 0;
        border: 1px solid rgba(125, 249, 255, 0.15);
        border-radius: 12px;
        pointer-events: none;
      }
      .block h2 {
        margin: 0 0 12px;
        font-size: 1rem;
        letter-spacing: 0.32em;
        text-transform: uppercase;
        color: var(--accent-2);
      }
      .block ul {
        list-style: none;
        margin: 0;
        padding: 0;
        display: flex;
        flex-direction: column;
        gap: 10px;
      }
      .block li {
        display: flex;
        gap: 10px;
        align-items: flex-start;
        font-size: 0.95rem;
        line-height: 1.45;
      }
      .bullet {
        width: 8px;
        height: 8px;
        border-radius: 50%;
        margin-top: 6px;
        background: linear-gradient(135deg, var(--accent), var(--accent-2));
        box-shadow: 0 0 10px rgba(125, 249, 255, 0.9);
        flex-shrink: 0;
      }
      @media (prefers-reduced-motion: reduce) {
        * {
          transition: none !important;
        }
      }
    </style>
  </head>
  <body>
    <main class="dossier">
      <header>
        <h1>SHINOBI DOSSIER</h1>
        <p>Cyberpunk операционный файл</p>
      </header>
      <section class="info-grid">{{range .InfoRows}}<div class="info-row"><span class="label">{{.Label}}</span><span class="value">{{.Value}}</span></div>{{end}}</section>
      {{range .Sections}}<section class="block"><h2>{{.Title}}</h2><ul>{{range .Lines}}<li><span class="bullet"></span><span>{{.}}</span></li>{{end}}</ul></section>
      {{end}}
    </main>
  </body>
</html>
`
